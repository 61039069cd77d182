package config

import (
	"os"
	"path/filepath"
	"strings"
)

// The client echoes the last logged-in student id to a file under the user
// config dir, the way the browser original echoed it to local storage. It is
// a convenience for prefilling the login form and is never treated as an
// authenticated session.

const rememberFile = "student_id"

func rememberPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "shuttle-booking", rememberFile), nil
}

// RememberStudentID records the student id locally.
func RememberStudentID(id string) error {
	path, err := rememberPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(id+"\n"), 0o600)
}

// RememberedStudentID returns the locally recorded student id, or an empty
// string when none is recorded or it cannot be read.
func RememberedStudentID() string {
	path, err := rememberPath()
	if err != nil {
		return ""
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}
