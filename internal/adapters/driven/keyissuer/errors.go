package keyissuer

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a non-2xx answer from the key-issuance webhook.
type StatusError struct {
	StatusCode int
	RequestID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("keyissuer: unexpected status %d (request %s)", e.StatusCode, e.RequestID)
}

// HTTPStatus returns the response status code.
func (e *StatusError) HTTPStatus() int {
	return e.StatusCode
}

// IsNotFound reports whether the webhook did not know the session.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}
