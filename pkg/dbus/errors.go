package dbus

import (
	"fmt"
)

// APIError is returned for any non-2xx response that doesn't map to a more
// specific type. It always carries the upstream status code and the raw body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dbus: api error (status code %d)", e.StatusCode)
}

// BadRequestError is returned on HTTP 400.
type BadRequestError struct {
	APIError
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("dbus: bad request (status code %d)", e.StatusCode)
}

// UnauthorizedError is returned on HTTP 401.
type UnauthorizedError struct {
	APIError
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("dbus: unauthorized (status code %d)", e.StatusCode)
}

// NotFoundError is returned on HTTP 404.
type NotFoundError struct {
	APIError
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dbus: not found (status code %d)", e.StatusCode)
}

// ServerError is returned on HTTP 500.
type ServerError struct {
	APIError
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("dbus: internal server error (status code %d)", e.StatusCode)
}

// ConnectionError wraps a transport level failure. It carries no status code
// as no response was received.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("dbus: connection error: %s", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a 2xx response body is empty or not valid JSON.
// Body holds the raw response text when one was received.
type ParseError struct {
	Body string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "dbus: empty response body"
	}

	return fmt.Sprintf("dbus: failed to parse response: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidLanguageError is returned before any network call is made when a
// language code outside the supported set is supplied.
type InvalidLanguageError struct {
	Language string
}

func (e *InvalidLanguageError) Error() string {
	return fmt.Sprintf("dbus: invalid language %q, must be one of es, eu, en, fr", e.Language)
}

func statusError(statusCode int, body string) error {
	apiError := APIError{StatusCode: statusCode, Body: body}

	switch statusCode {
	case 400:
		return &BadRequestError{apiError}
	case 401:
		return &UnauthorizedError{apiError}
	case 404:
		return &NotFoundError{apiError}
	case 500:
		return &ServerError{apiError}
	default:
		return &APIError{StatusCode: statusCode, Body: body}
	}
}
