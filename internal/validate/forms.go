// Package validate checks user-entered form data before any network call is
// made. Validation failures are plain errors whose message is meant to be
// shown to the user verbatim.
package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// LoginForm holds the credentials the user typed on the login surface.
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Validate reports whether both credential fields are present.
func (f LoginForm) Validate() error {
	if err := v.Struct(f); err != nil {
		return errors.New("please enter your student id and password")
	}
	return nil
}

// RegisterForm holds the registration fields. ConfirmPassword must repeat
// Password exactly; the mismatch is caught here, before the backend sees the
// request.
type RegisterForm struct {
	StudentID       string `validate:"required"`
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// Validate checks the form and returns a single user-facing message for the
// first problem found.
func (f RegisterForm) Validate() error {
	err := v.Struct(f)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) {
		for _, fe := range fields {
			switch {
			case fe.Field() == "ConfirmPassword" && fe.Tag() == "eqfield":
				return errors.New("password and confirmation do not match")
			case fe.Field() == "Email" && fe.Tag() == "email":
				return errors.New("please enter a valid email address")
			}
		}
	}
	return errors.New("please fill in all registration fields")
}
