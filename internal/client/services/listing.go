package services

import (
	"context"
	"fmt"

	"skillmarket/internal/client/api"
	"skillmarket/internal/client/models"
	"skillmarket/internal/logging"
)

// ListingService loads the seeker dashboard data: the ranked provider
// listing computed by the server. Filtering happens locally, in the
// matching package, over whatever this service fetched last.
type ListingService struct {
	api     api.Client
	session *SessionService
	log     logging.Logger
}

func NewListingService(apiClient api.Client, session *SessionService, log logging.Logger) *ListingService {
	return &ListingService{api: apiClient, session: session, log: log}
}

// Providers fetches the ranked listing in one round trip. Any failure is
// reported as a single load error; the caller keeps an empty listing.
func (s *ListingService) Providers(ctx context.Context) ([]models.ProviderListing, error) {
	if !s.session.Active() {
		return nil, ErrNotAuthenticated
	}

	listings, err := s.api.MatchProviders(ctx, s.session.Token())
	if err != nil {
		s.log.Warn(ctx, "provider listing fetch failed", "error", err)
		return nil, fmt.Errorf("failed to load providers: %w", err)
	}
	return listings, nil
}
