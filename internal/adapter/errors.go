package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is wrapped by [TransportError].
	ErrTransport = errors.New("network request failed before reaching API")
	// ErrHTTP is wrapped by [HTTPError].
	ErrHTTP = errors.New("unsuccessful http status")
	// ErrAPI is wrapped by [APIError].
	ErrAPI = errors.New("api reported failure")
)

const fileOriginHint = "The API address uses file://, which cannot serve requests. Point --address at an http(s) endpoint, e.g. http://localhost:8080."

// TransportError means the request never produced an HTTP response: DNS or
// connection failure, timeout, unsupported scheme and the like.
type TransportError struct {
	URL  string
	Hint string
	Err  error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("Network request failed before reaching API. URL: %s. Possible API URL/network issue.", e.URL)
	if e.Hint != "" {
		msg += " " + e.Hint
	}
	if e.Err != nil {
		msg += " Original error: " + e.Err.Error()
	}
	return msg
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// HTTPError is returned for a non-2xx status when the caller asked to throw.
type HTTPError struct {
	Status int
	URL    string
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d from %s. Response: %s", e.Status, e.URL, orEmpty(e.Body))
}

func (e *HTTPError) Unwrap() error {
	return ErrHTTP
}

// APIError is returned when the body has "ok": false and the caller asked to
// throw.
type APIError struct {
	Status  int
	URL     string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error from %s. HTTP %d. Message: %s", e.URL, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return ErrAPI
}

func orEmpty(body string) string {
	if body == "" {
		return "<empty>"
	}
	return body
}
