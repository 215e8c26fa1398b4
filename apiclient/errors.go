package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a rejection returned by the upstream API.
type Error struct {
	Status  int
	Message string
	Errors  map[string]string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

// ErrUnavailable wraps transport failures where no response arrived.
var ErrUnavailable = errors.New("api unavailable")

// StatusOf returns the HTTP status carried by err, 0 if none.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsStatus reports whether err is an API rejection with the given status.
func IsStatus(err error, status int) bool {
	return StatusOf(err) == status
}

// MessageOf returns the API message carried by err, or err.Error() for other errors.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// IsJWTExpired reports whether the API rejected the call because the access token expired.
func IsJWTExpired(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(MessageOf(err)), "jwt expired")
}

// HTTPStatus picks the status the storefront should answer with for err.
func HTTPStatus(err error) int {
	if s := StatusOf(err); s >= 400 {
		return s
	}
	if errors.Is(err, ErrUnavailable) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
