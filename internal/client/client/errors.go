package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNoToken         = errors.New("no token received from server")
	ErrInvalidResponse = errors.New("invalid response from server")
)

// APIError is a non-2xx answer that maps to no sentinel.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d: %s", e.StatusCode, e.Message)
}

// errorBody is the shape of the server's error answers.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
