// ABOUTME: Error types returned by the API client
// ABOUTME: Separates expired sessions, transport failures and pre-send validation

package client

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned after the backend answered 401. By the time a
// caller sees it the session has already been cleared and the navigator
// has been sent to the login entry point.
var ErrUnauthorized = errors.New("session expired, please log in again")

// TransportError reports a request that never produced a usable response
type TransportError struct {
	Method  string
	URL     string
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when input is rejected before any request is sent
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsTransport reports whether err is, or wraps, a *TransportError
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsValidation reports whether err is, or wraps, a *ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
