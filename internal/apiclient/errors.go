package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Sentinel classes for transient failures. Non-2xx responses get a
// *StatusError instead and are never retried.
var (
	ErrTimeout = errors.New("request timed out")
	ErrNetwork = errors.New("network unreachable")
)

// StatusError is a non-2xx response from the remote API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d", e.Code)
}

// classify folds transport-level failures into the two transient classes.
// Anything it does not recognize passes through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var se *StatusError
	if errors.As(err, &se) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var ne net.Error
	if errors.As(err, &ne) {
		if ne.Timeout() {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return err
}

// transient reports whether the failure is worth retrying.
func transient(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrNetwork)
}

// Message maps a failure to the message shown to the user. Every class maps
// to a distinct message but is handled identically by callers.
func Message(err error) string {
	var se *StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "Request timed out. Please try again."
	case errors.Is(err, ErrNetwork):
		return "Cannot reach the server. Check your connection."
	case errors.As(err, &se):
		return fmt.Sprintf("Server error (%d). Please try again later.", se.Code)
	default:
		return "Something went wrong. Please try again."
	}
}
