package jules

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is a non-2xx response from the Jules API. Reason carries the
// HTTP status text so user-facing messages can show "401 Unauthorized"
// style detail without exposing the response body.
type HTTPError struct {
	StatusCode int
	Reason     string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("jules API error: %d %s", e.StatusCode, e.Reason)
}

// RequestError is a transport-level failure: the request never produced an
// HTTP response (DNS failure, refused connection, per-call timeout).
type RequestError struct {
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying transport error.
func (e *RequestError) Unwrap() error {
	return e.Cause
}

// IsUnauthorized reports whether err is an HTTP 401 from the API.
func IsUnauthorized(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusUnauthorized
}
