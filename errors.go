package xlautomaten

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is() checking.
var (
	// ErrNotFound matches API errors with a 404 status.
	ErrNotFound = errors.New("not found")
)

// APIError is returned when the server answers with a non-2xx status.
// Message carries the human-readable text extracted from the response
// body's "error" or "message" field, falling back to the raw body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
}

// Is reports 404 responses as ErrNotFound so callers can use
// errors.Is(err, ErrNotFound) instead of matching message text.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// DecodeError is returned when a response body is not valid JSON.
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("request failed (%d): response is not JSON", e.StatusCode)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// SchemaError is returned when a 2xx response decodes as JSON but does
// not match the expected shape for the endpoint that produced it.
type SchemaError struct {
	Endpoint string
	Err      error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unexpected response from %q: %v", e.Endpoint, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// InvariantError is returned when a response is well-formed but violates
// an expectation the API contract guarantees, e.g. a created mapping
// missing from the mapping list the server returned for it.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string { return e.Message }
