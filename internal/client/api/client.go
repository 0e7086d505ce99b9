package api

import (
	"context"

	"skillmarket/internal/client/models"
)

// Credentials is the token+user pair the server returns on successful
// login or registration.
type Credentials struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Client is the remote marketplace API. One method per endpoint, one
// network call per method: no retries, no caching, no background work.
// The bearer token is passed explicitly so the transport holds no session
// state of its own.
type Client interface {
	// Register creates an account; POST /api/auth/register.
	Register(ctx context.Context, draft models.RegistrationDraft) (Credentials, error)

	// Login authenticates; POST /api/auth/login.
	Login(ctx context.Context, email, password string) (Credentials, error)

	// Validate asks whether token is still accepted; GET /api/auth/validate.
	// A definitive server-side rejection yields (false, nil); transport
	// failures yield (false, err).
	Validate(ctx context.Context, token string) (bool, error)

	// Providers lists all provider profiles; GET /api/providers.
	// A non-list response body is coerced to an empty list.
	Providers(ctx context.Context, token string) ([]models.ProviderProfile, error)

	// CreateProvider creates the caller's profile; POST /api/providers.
	CreateProvider(ctx context.Context, token string, draft models.ProfileDraft) (models.ProviderProfile, error)

	// UpdateProvider replaces profile id with the given representation and
	// returns the server's canonical result; PUT /api/providers/{id}.
	UpdateProvider(ctx context.Context, token string, id int64, profile models.ProviderProfile) (models.ProviderProfile, error)

	// MatchProviders lists ranked providers for the seeker dashboard;
	// GET /api/match/providers. A non-list response body is coerced to an
	// empty list.
	MatchProviders(ctx context.Context, token string) ([]models.ProviderListing, error)
}
