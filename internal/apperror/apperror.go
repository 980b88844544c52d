// Package apperror classifies failures that reach a view-state holder and
// turns them into the message shown to the user.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the category of a failure.
type Kind int

const (
	// Unknown is any error that was not classified.
	Unknown Kind = iota
	// Transport is a failure before a response was received.
	Transport
	// Server is a non-2xx response.
	Server
	// Validation is a client-side check that failed before any request.
	Validation
	// Unauthorized is a 401 response.
	Unauthorized
)

func (k Kind) String() string {
	switch k {
	case Transport:
		return "transport"
	case Server:
		return "server"
	case Validation:
		return "validation"
	case Unauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Error carries a user-facing Message plus the classification and, for
// server errors, the HTTP status.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewTransport wraps a failure that happened before a response arrived.
// The underlying message is passed through as-is.
func NewTransport(err error) *Error {
	return &Error{Kind: Transport, Message: err.Error(), Err: err}
}

// NewServer classifies a non-2xx response. An empty message falls back to
// StatusMessage(status).
func NewServer(status int, message string) *Error {
	kind := Server
	if status == http.StatusUnauthorized {
		kind = Unauthorized
	}
	if message == "" {
		message = StatusMessage(status)
	}
	return &Error{Kind: kind, StatusCode: status, Message: message}
}

// NewValidation reports a client-side check failure.
func NewValidation(message string, err error) *Error {
	return &Error{Kind: Validation, Message: message, Err: err}
}

// StatusMessage is the generic message used when the response body carries
// no readable error field.
func StatusMessage(status int) string {
	return fmt.Sprintf("request failed with status %d", status)
}

// KindOf returns the Kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Unknown
}

// Message returns the text to show the user for err. Classified errors
// yield their Message; anything else its Error() string.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
