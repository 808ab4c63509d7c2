// Package errs classifies request failures so they can be turned into an
// HTTP status and a {message, error} body in one place.
package errs

import (
	"errors"
	"net/http"
)

type Kind int

const (
	// KindStore covers every document store failure, malformed ids included.
	KindStore Kind = iota
	KindValidation
	KindNotFound
)

// Error pairs a client-facing summary with the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(message string, err error) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: err}
}

func NotFound(message string, err error) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: err}
}

func Store(message string, err error) *Error {
	return &Error{Kind: KindStore, Message: message, Err: err}
}

// Response is the JSON body of every failed request.
type Response struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ResponseOf returns the status code and body for err. Errors outside the
// taxonomy become a generic 500.
func ResponseOf(err error) (int, Response) {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, Response{
			Message: "Internal server error",
			Error:   err.Error(),
		}
	}

	resp := Response{Message: e.Message}
	if e.Err != nil {
		resp.Error = e.Err.Error()
	} else {
		resp.Error = http.StatusText(e.Status())
	}
	return e.Status(), resp
}
