package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// FailureClass buckets catalog failures by how the dashboard surfaces them.
type FailureClass string

const (
	FailureNotFound   FailureClass = "not_found"
	FailureValidation FailureClass = "validation"
	FailureServer     FailureClass = "server"
	FailureUnknown    FailureClass = "unknown"
)

// RequestError is a failed catalog request. StatusCode is the upstream HTTP
// status and Message the server-supplied body, which may be empty.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("catalog request failed with status %d: %s", e.StatusCode, e.Message)
}

// Class maps the upstream status code onto the failure taxonomy.
func (e *RequestError) Class() FailureClass {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return FailureNotFound
	case e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity:
		return FailureValidation
	case e.StatusCode >= http.StatusInternalServerError:
		return FailureServer
	default:
		return FailureUnknown
	}
}

// IsNotFound reports whether err is a catalog NotFound failure. The
// add-inventory workflow relies on this as its find-or-create signal.
func IsNotFound(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Class() == FailureNotFound
}

// ClassOf classifies any error; non-catalog errors fall into FailureUnknown.
func ClassOf(err error) FailureClass {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Class()
	}
	return FailureUnknown
}

// ServerMessage returns the upstream-supplied message body, if any.
func ServerMessage(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return ""
}
