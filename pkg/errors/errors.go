package errors

import "net/http"

// HTTPError carries a status code alongside a client-safe message.
// Delivery layers translate domain errors into HTTPError; anything that is
// not an HTTPError renders as a generic 500.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// Common HTTP errors shared across delivery layers.
var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "invalid request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "something went wrong")
	ErrBadGateway          = NewHTTPError(http.StatusBadGateway, "upstream provider unavailable")
)
