package service

import "errors"

// ErrInvalidCredentials is returned for any login failure, wrong email
// or wrong password alike, so responses never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError marks a request that failed a domain check. Handlers
// map it to 400; it never mutates state.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
