package anilist

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is wrapped by a TransportError when the response body is not UTF-8.
var ErrInvalidUTF8 = errors.New("response body is not valid UTF-8")

// TransportError reports that the request itself could not be completed.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not a GraphQL envelope.
type DecodeError struct {
	// Excerpt is the beginning of the offending body.
	Excerpt string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Excerpt == "" {
		return fmt.Sprintf("malformed response: %v", e.Err)
	}
	return fmt.Sprintf("malformed response: %v (body: %q)", e.Err, e.Excerpt)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is or wraps a *TransportError.
func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsDecode reports whether err is or wraps a *DecodeError.
func IsDecode(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}
