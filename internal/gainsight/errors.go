package gainsight

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse is returned when a 200 response body is not the
	// expected JSON envelope.
	ErrMalformedResponse = errors.New("malformed response body")

	// ErrUnexpectedFormat is returned when the envelope's data is neither a
	// list of records nor an object holding one.
	ErrUnexpectedFormat = errors.New("unexpected data format")
)

// snippetLimit caps how much of an error body is kept for display.
const snippetLimit = 300

// HTTPError is returned for any response status other than 200.
type HTTPError struct {
	StatusCode int
	Snippet    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Snippet)
}

// APIError is returned when the envelope reports result=false.
type APIError struct {
	Description string
}

func (e *APIError) Error() string {
	return "API error: " + e.Description
}

// TransportError wraps network failures and timeouts.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func snippet(body []byte, limit int) string {
	r := []rune(string(body))
	if len(r) > limit {
		r = r[:limit]
	}
	return string(r)
}
