package cerr

import (
	"fmt"
	"net/http"
)

// Error wraps a cause error with the HTTP status code which should be
// reported for it at the REST boundary. Inner layers return typed
// conditions (not found, conflict, bad request) without importing any
// web framework; the serdser package translates them by errors.As.
type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}

func Internal(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusInternalServerError}
}
