// Package failure carries the HTTP status of an error from the service layer to the response writer.
package failure

import (
	"errors"
	"net/http"
)

// Failure is an error with the status code it maps to and, for validation errors, the offending fields.
type Failure struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

var (
	ErrSessionRequired    = New(http.StatusUnauthorized, "authentication required")
	ErrInvalidCredentials = New(http.StatusUnauthorized, "invalid username or password")
)

func New(code int, msg string, fields ...string) *Failure {
	return &Failure{Code: code, Message: msg, Fields: fields}
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest keeps the message of err. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

// Validation is a bad request naming every field that broke a rule.
func Validation(msg string, fields ...string) error {
	return New(http.StatusBadRequest, msg, fields...)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

// Generation reports a document that could not be produced.
func Generation(msg string) error {
	return New(http.StatusBadGateway, msg)
}

// GetCode returns the status of the first Failure in the chain of err, 500 when there is none.
func GetCode(err error) int {
	if fail, ok := as(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func GetFields(err error) []string {
	if fail, ok := as(err); ok {
		return fail.Fields
	}

	return nil
}

func as(err error) (*Failure, bool) {
	var fail *Failure
	ok := errors.As(err, &fail)

	return fail, ok
}
