package api

import (
	"fmt"
	"net/http"

	"skillmarket/internal/common"
)

// Error is a non-2xx response from the server, carrying the
// server-provided message when one could be parsed and a generic fallback
// otherwise.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Unwrap maps auth rejections onto the shared sentinel so callers can use
// errors.Is(err, common.ErrUnauthorized).
func (e *Error) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return common.ErrUnauthorized
	}
	if e.StatusCode == http.StatusNotFound {
		return common.ErrNotFound
	}
	return nil
}
