// Package errors defines the typed failures shared by the API client,
// the view-models, and the HTTP handlers.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure for consistent handling and HTTP mapping.
type Kind string

const (
	// KindUnknown marks errors that carry no application kind.
	KindUnknown Kind = "unknown"
	// KindFetch is a failed network call or a non-success upstream status.
	KindFetch Kind = "fetch"
	// KindValidation is a malformed identifier or payload.
	KindValidation Kind = "validation"
	// KindNotFound is an absent entity.
	KindNotFound Kind = "not_found"
)

// Error is a typed application failure.
type Error struct {
	Kind Kind
	// Op names the operation that failed, e.g. "list projects".
	Op      string
	Message string
	// StatusCode is the upstream HTTP status when one was received.
	StatusCode int
	Err        error
}

// Error renders the human-readable message.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Fetch builds a FetchError: the network call failed or the server answered
// with a non-success status.
func Fetch(op string, statusCode int, err error) error {
	msg := "request failed"
	if statusCode > 0 {
		msg = fmt.Sprintf("unexpected status %d %s", statusCode, http.StatusText(statusCode))
	}
	return &Error{Kind: KindFetch, Op: op, Message: msg, StatusCode: statusCode, Err: err}
}

// Validation builds a ValidationError for malformed input or payloads.
func Validation(op, message string, err error) error {
	return &Error{Kind: KindValidation, Op: op, Message: message, Err: err}
}

// NotFound builds a NotFoundError for an absent entity.
func NotFound(op, message string) error {
	return &Error{Kind: KindNotFound, Op: op, Message: message, StatusCode: http.StatusNotFound}
}

// KindOf returns the kind of the first typed error in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr *Error
	if !stderrors.As(err, &appErr) {
		return KindUnknown
	}
	return appErr.Kind
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps an error to the status a handler should answer with.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindFetch:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
