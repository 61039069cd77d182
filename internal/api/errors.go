package api

import "errors"

// RemoteError is a business failure reported by the backend: a
// success:false flag, an {error} payload or a booking response without an
// id. It is distinct from transport and decoding failures, which surface as
// ordinary errors. The backend signals failure in three different shapes
// depending on the endpoint; the client folds all of them into this one
// type so callers only ever branch on IsRemote.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return "backend rejected the request"
	}
	return e.Message
}

// IsRemote reports whether err is a backend-reported business failure.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// RemoteMessage extracts the backend's message from err, or returns the
// fallback for transport-level failures.
func RemoteMessage(err error, fallback string) string {
	var re *RemoteError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}
