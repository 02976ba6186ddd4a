package pokeapi

import (
	"errors"
	"fmt"
)

// ErrNotFound means the remote service answered 404: the resource does not exist.
var ErrNotFound = errors.New("resource not found")

// TransportError means the existence of a resource could not be checked.
type TransportError struct {
	Endpoint string
	// Status is 0 when no response was received.
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil && e.Status != 0:
		return fmt.Sprintf("fetching %q (status %d): %v", e.Endpoint, e.Status, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("fetching %q: %v", e.Endpoint, e.Err)
	default:
		return fmt.Sprintf("fetching %q: unexpected status %d", e.Endpoint, e.Status)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
