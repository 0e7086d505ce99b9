package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"skillmarket/internal/client/api"
	"skillmarket/internal/client/models"
	"skillmarket/internal/logging"
)

// ProfileService manages the provider dashboard state: the canonical
// profile fetched from the server and the transient edit draft. The draft
// is a snapshot; it never shares storage with the canonical profile and is
// promoted only by a successful save.
type ProfileService struct {
	api     api.Client
	session *SessionService
	log     logging.Logger

	mu      sync.Mutex
	profile *models.ProviderProfile
	draft   *models.ProviderProfile
	saving  bool
}

func NewProfileService(apiClient api.Client, session *SessionService, log logging.Logger) *ProfileService {
	return &ProfileService{api: apiClient, session: session, log: log}
}

// Load fetches the caller's own profile. The API has no single-entity GET,
// so the full provider list is scanned for the session user's id; a known
// inefficiency inherited from the API surface, not a pattern to copy.
func (s *ProfileService) Load(ctx context.Context) (*models.ProviderProfile, error) {
	sess := s.session.Current()
	if !sess.Active() {
		return nil, ErrNotAuthenticated
	}

	profiles, err := s.api.Providers(ctx, sess.Token)
	if err != nil {
		s.log.Warn(ctx, "profile fetch failed", "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	for i := range profiles {
		if profiles[i].UserID == sess.User.ID {
			s.mu.Lock()
			s.profile = profiles[i].Clone()
			s.mu.Unlock()
			return profiles[i].Clone(), nil
		}
	}
	return nil, ErrProfileNotFound
}

// Create registers a new provider profile for the session user and adopts
// the server's representation as canonical.
func (s *ProfileService) Create(ctx context.Context, draft models.ProfileDraft) (*models.ProviderProfile, error) {
	if !s.session.Active() {
		return nil, ErrNotAuthenticated
	}

	created, err := s.api.CreateProvider(ctx, s.session.Token(), draft)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.mu.Lock()
	s.profile = created.Clone()
	s.mu.Unlock()
	return created.Clone(), nil
}

// Profile returns a copy of the canonical profile, or nil before Load.
func (s *ProfileService) Profile() *models.ProviderProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// Editing reports whether an edit draft is active.
func (s *ProfileService) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft != nil
}

// Draft returns a copy of the current draft, or nil outside edit mode.
func (s *ProfileService) Draft() *models.ProviderProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

// StartEdit snapshots the canonical profile into a new draft.
func (s *ProfileService) StartEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return ErrProfileNotLoaded
	}
	if s.draft != nil {
		return ErrEditInProgress
	}
	s.draft = s.profile.Clone()
	return nil
}

// Cancel discards the draft and leaves edit mode. Safe to call at any time.
func (s *ProfileService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}

// SetName updates the draft's display name.
func (s *ProfileService) SetName(name string) error {
	return s.mutateDraft(func(d *models.ProviderProfile) error {
		d.Name = name
		return nil
	})
}

// SetLocation updates the draft's location; empty is permitted.
func (s *ProfileService) SetLocation(location string) error {
	return s.mutateDraft(func(d *models.ProviderProfile) error {
		d.Location = location
		return nil
	})
}

// SetServiceFocus updates the draft's service focus.
func (s *ProfileService) SetServiceFocus(focus string) error {
	return s.mutateDraft(func(d *models.ProviderProfile) error {
		d.ServiceFocus = focus
		return nil
	})
}

// AddSkill appends a trimmed, non-empty skill to the draft. Duplicates are
// allowed; the client never deduplicates skills.
func (s *ProfileService) AddSkill(skill string) error {
	trimmed := strings.TrimSpace(skill)
	if trimmed == "" {
		return ErrEmptySkill
	}
	return s.mutateDraft(func(d *models.ProviderProfile) error {
		d.Skills = append(d.Skills, trimmed)
		return nil
	})
}

// RemoveSkill removes the skill at the given position.
func (s *ProfileService) RemoveSkill(index int) error {
	return s.mutateDraft(func(d *models.ProviderProfile) error {
		if index < 0 || index >= len(d.Skills) {
			return ErrSkillIndexOutOfRange
		}
		d.Skills = append(d.Skills[:index], d.Skills[index+1:]...)
		return nil
	})
}

func (s *ProfileService) mutateDraft(fn func(*models.ProviderProfile) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return ErrEditNotActive
	}
	return fn(s.draft)
}

// Save PUTs the full draft. On success the canonical profile becomes the
// server's returned representation (not the local draft, so server-side
// normalization cannot drift) and edit mode ends. On failure the draft and
// edit mode survive for a retry. Only one save may be in flight per
// profile; an overlapping call gets ErrSaveInFlight instead of a silent
// last-write-wins race.
func (s *ProfileService) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return ErrEditNotActive
	}
	if s.saving {
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	s.saving = true
	snapshot := s.draft.Clone()
	s.mu.Unlock()

	updated, err := s.api.UpdateProvider(ctx, s.session.Token(), snapshot.ID, *snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false

	if err != nil {
		s.log.Warn(ctx, "profile save failed", "profile_id", snapshot.ID, "error", err)
		return fmt.Errorf("failed to update profile: %w", err)
	}

	s.profile = updated.Clone()
	s.draft = nil
	s.log.Info(ctx, "profile saved", "profile_id", updated.ID)
	return nil
}
