// Package session persists the client session between runs: two entries,
// token and user, always written together and cleared together.
package session

import "context"

// Keys used in the session table. Nothing else is stored there.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Repository is a small KV store scoped to the session table.
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
}
