package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"skillmarket/internal/client/api"
	"skillmarket/internal/client/models"
	"skillmarket/internal/client/repositories/session"
	"skillmarket/internal/dbx"
	"skillmarket/internal/logging"
)

// ReauthPolicy decides what happens when login or register is invoked
// while a session is already active. The web dashboard hides the forms in
// that state; a CLI needs an explicit rule.
type ReauthPolicy string

const (
	// ReauthBlock rejects the attempt with ErrAlreadyAuthenticated.
	ReauthBlock ReauthPolicy = "block"
	// ReauthReplace lets the new credentials overwrite the session.
	ReauthReplace ReauthPolicy = "replace"
	// ReauthLogoutFirst clears the session, then proceeds.
	ReauthLogoutFirst ReauthPolicy = "logout-first"
)

// Valid reports whether p is a known policy.
func (p ReauthPolicy) Valid() bool {
	return p == ReauthBlock || p == ReauthReplace || p == ReauthLogoutFirst
}

// SessionService owns the client session: the in-memory token+user pair,
// its persisted mirror, and the restore/validate/login/register/logout
// lifecycle. It is the single writer of session state.
type SessionService struct {
	api    api.Client
	db     *sql.DB
	log    logging.Logger
	policy ReauthPolicy
	now    func() time.Time

	mu      sync.RWMutex
	current models.Session
}

func NewSessionService(apiClient api.Client, db *sql.DB, log logging.Logger, policy ReauthPolicy) *SessionService {
	if !policy.Valid() {
		policy = ReauthBlock
	}
	return &SessionService{
		api:    apiClient,
		db:     db,
		log:    log,
		policy: policy,
		now:    time.Now,
	}
}

// Current returns a copy of the session. The User pointer is cloned so
// callers cannot mutate shared state.
func (s *SessionService) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cur := s.current
	if cur.User != nil {
		u := *cur.User
		cur.User = &u
	}
	return cur
}

// Active reports whether a session is established.
func (s *SessionService) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Active()
}

// Token returns the current bearer token, or "" when logged out.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// Expiry returns the current token's expiry claim, if it carries one.
func (s *SessionService) Expiry() (time.Time, bool) {
	return tokenExpiry(s.Token())
}

// Restore loads the persisted session, if any, and checks it against the
// remote authority. With nothing persisted the session stays empty and no
// network call is made. A token that is visibly past its expiry, or that
// the server rejects, or that cannot be checked due to a transport
// failure, clears both the in-memory and the persisted session; the caller
// should then route the user to login.
func (s *SessionService) Restore(ctx context.Context) (bool, error) {
	repo := session.NewSQLiteRepository(s.db)

	tokenRaw, err := repo.Get(ctx, session.KeyToken)
	if err != nil {
		return false, err
	}
	userRaw, err := repo.Get(ctx, session.KeyUser)
	if err != nil {
		return false, err
	}

	// A half-written pair violates the session invariant; treat it the
	// same as nothing persisted.
	if len(tokenRaw) == 0 || len(userRaw) == 0 {
		if len(tokenRaw) != 0 || len(userRaw) != 0 {
			s.log.Warn(ctx, "discarding partial persisted session")
			if err := s.clear(ctx); err != nil {
				return false, err
			}
		}
		return false, nil
	}

	token := string(tokenRaw)
	var user models.User
	if err := json.Unmarshal(userRaw, &user); err != nil {
		s.log.Warn(ctx, "discarding unreadable persisted user", "error", err)
		if err := s.clear(ctx); err != nil {
			return false, err
		}
		return false, nil
	}

	if tokenExpired(token, s.now()) {
		s.log.Info(ctx, "persisted token expired, logging out")
		return false, s.clear(ctx)
	}

	valid, err := s.api.Validate(ctx, token)
	if err != nil || !valid {
		if err != nil {
			s.log.Warn(ctx, "token validation failed", "error", err)
		} else {
			s.log.Info(ctx, "persisted token rejected by server")
		}
		if clearErr := s.clear(ctx); clearErr != nil {
			return false, clearErr
		}
		return false, nil
	}

	s.set(token, &user)
	s.log.Info(ctx, "session restored", "email", user.Email, "role", user.Role)
	return true, nil
}

// Login authenticates with the server and, on success, replaces the whole
// session atomically and persists it. On failure the prior session is left
// untouched.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	if err := s.checkReauth(ctx); err != nil {
		return err
	}

	creds, err := s.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	return s.establish(ctx, creds)
}

// Register creates an account and, on success, establishes the returned
// session exactly as Login does.
func (s *SessionService) Register(ctx context.Context, draft models.RegistrationDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}
	if err := s.checkReauth(ctx); err != nil {
		return err
	}

	creds, err := s.api.Register(ctx, draft)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return s.establish(ctx, creds)
}

// Logout clears the in-memory and persisted session unconditionally.
// Calling it with no active session is a no-op.
func (s *SessionService) Logout(ctx context.Context) error {
	return s.clear(ctx)
}

func (s *SessionService) checkReauth(ctx context.Context) error {
	if !s.Active() {
		return nil
	}
	switch s.policy {
	case ReauthReplace:
		return nil
	case ReauthLogoutFirst:
		s.log.Info(ctx, "re-authentication: clearing existing session first")
		return s.clear(ctx)
	default:
		return ErrAlreadyAuthenticated
	}
}

// establish persists token+user in one transaction and then swaps the
// in-memory session. If persisting fails, memory is left untouched so both
// representations stay consistent.
func (s *SessionService) establish(ctx context.Context, creds api.Credentials) error {
	userRaw, err := json.Marshal(creds.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, session.KeyToken, []byte(creds.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, session.KeyUser, userRaw)
	})
	if err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	user := creds.User
	s.set(creds.Token, &user)
	s.log.Info(ctx, "session established", "email", user.Email, "role", user.Role)
	return nil
}

func (s *SessionService) set(token string, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = models.Session{Token: token, User: user}
}

func (s *SessionService) clear(ctx context.Context) error {
	repo := session.NewSQLiteRepository(s.db)
	if err := repo.Clear(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = models.Session{}
	return nil
}
