// Package errs defines the error taxonomy shared by the fetcher, the mapper
// and the HTTP layer, and the JSON error body returned to API clients.
package errs

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrConfig is returned when required configuration is missing or invalid.
	ErrConfig = errors.New("configuration error")

	// ErrUpstream is returned when the upstream API is unreachable or answers
	// with a non-success status.
	ErrUpstream = errors.New("upstream request failed")

	// ErrNotFound is returned when the upstream reports that the requested
	// resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrMalformedUpstream is returned when an upstream payload does not match
	// the shape the mapper expects.
	ErrMalformedUpstream = errors.New("malformed upstream payload")

	// ErrBadRequest is returned when inbound request parameters are invalid.
	ErrBadRequest = errors.New("bad request")

	// ErrTooManyRequests is returned when a client exceeds its rate limit.
	ErrTooManyRequests = errors.New("too many requests")
)

// HTTPError is the JSON body written for every failed request.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 HTTPError with the given message.
func NewBadRequestError(message string) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message)
}

// FromError classifies err against the sentinels above. Messages are fixed
// per class so upstream details never reach the client.
func FromError(err error) *HTTPError {
	var httpErr *HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, ErrBadRequest):
		return newHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTooManyRequests):
		return newHTTPError(http.StatusTooManyRequests, "Rate limit exceeded")
	case errors.Is(err, ErrNotFound):
		return newHTTPError(http.StatusNotFound, "Pokemon not found")
	case errors.Is(err, ErrUpstream):
		return newHTTPError(http.StatusBadGateway, "Upstream Pokemon API request failed")
	case errors.Is(err, ErrMalformedUpstream):
		return newHTTPError(http.StatusInternalServerError, "Failed to map upstream Pokemon data")
	default:
		return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

// MakeUpperCaseWithUnderscores turns "Bad Gateway" into "BAD_GATEWAY".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
