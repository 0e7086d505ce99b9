package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"skillmarket/internal/client/api"
	"skillmarket/internal/client/config"
	"skillmarket/internal/client/models"
	sessionrepo "skillmarket/internal/client/repositories/session"
	"skillmarket/internal/client/services"
	"skillmarket/internal/logging"
)

// App wires the services together and holds the per-view state of the two
// dashboards: the seeker's fetched listing with its local filters, and the
// provider dashboard backed by ProfileService.
type App struct {
	config   *config.Config
	sessions *services.SessionService
	listings *services.ListingService
	profiles *services.ProfileService
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// Seeker view state: last fetched listing plus the active filters.
	listing       []models.ProviderListing
	searchTerm    string
	selectedSkill string
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := sessionrepo.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, log)

	sessions := services.NewSessionService(apiClient, db, log, cfg.ReauthPolicy)
	listings := services.NewListingService(apiClient, sessions, log)
	profiles := services.NewProfileService(apiClient, sessions, log)

	return &App{
		config:   cfg,
		sessions: sessions,
		listings: listings,
		profiles: profiles,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores any persisted session and then hands control to the REPL.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to SkillMarket CLI (type 'help' for commands)")

	restored, err := a.sessions.Restore(ctx)
	if err != nil {
		return fmt.Errorf("session restore: %w", err)
	}
	if restored {
		sess := a.sessions.Current()
		fmt.Fprintf(a.out, "Logged in as %s (%s)\n", sess.User.Email, sess.User.Role)
	} else {
		fmt.Fprintln(a.out, "Please log in or register.")
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
	return nil
}

// status renders the prompt decoration: email and role when logged in.
func (a *App) status() string {
	sess := a.sessions.Current()
	if !sess.Active() {
		return ""
	}
	return fmt.Sprintf("(%s %s)", sess.User.Email, sess.User.Role)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Active()
}

// role returns the session role, or "" when logged out. The REPL uses it
// to pick the dashboard command set.
func (a *App) role() models.Role {
	sess := a.sessions.Current()
	if sess.User == nil {
		return ""
	}
	return sess.User.Role
}
