package errors

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the interactive login flow
var (
	// Configuration errors
	ErrConfiguration = errors.New("unknown environment")

	// Flow errors
	ErrTimeout             = errors.New("timed out waiting for the login callback")
	ErrCorrelationMismatch = errors.New("callback did not match the login session")
	ErrMalformedCredential = errors.New("malformed credential payload")

	// Server errors
	ErrNetworkBind = errors.New("failed to bind the callback listener")
)

// CorrelationError reports a callback whose state did not correlate with the
// pending login session. It carries the received code value for diagnosis.
type CorrelationError struct {
	Code string
}

func (e *CorrelationError) Error() string {
	if e.Code == "" {
		return "callback did not match the login session: no code received"
	}
	return fmt.Sprintf("callback did not match the login session: received code %q", e.Code)
}

func (e *CorrelationError) Unwrap() error {
	return ErrCorrelationMismatch
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
