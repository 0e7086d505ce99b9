// Package common defines constants and sentinel errors shared across the
// client layers. Callers should match the errors with errors.Is.
package common

import "errors"

var (
	// ErrUnavailable indicates a transport-level failure: the server could
	// not be reached or did not produce an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized indicates the server rejected the credentials or token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
