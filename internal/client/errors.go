package client

import (
	"errors"
	"fmt"
)

// The three failure classes a call can end in. Callers that only need to stop
// a spinner can treat them uniformly; the client has already raised the
// user-visible notification by the time one of these is returned.

// TransportError covers network failures and timeouts. Never retried
// automatically.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AuthExpiredError means the backend rejected the credential. The client has
// already cleared the session and forced navigation to the login screen.
type AuthExpiredError struct{}

func (e *AuthExpiredError) Error() string { return "login expired" }

// ApplicationError is a backend-reported business failure; Message is shown
// to the user verbatim.
type ApplicationError struct {
	Message string
}

func (e *ApplicationError) Error() string { return e.Message }

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func IsAuthExpired(err error) bool {
	var ae *AuthExpiredError
	return errors.As(err, &ae)
}

func IsApplication(err error) bool {
	var ape *ApplicationError
	return errors.As(err, &ape)
}
