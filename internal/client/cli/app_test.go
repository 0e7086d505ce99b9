package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"skillmarket/internal/client/api"
	"skillmarket/internal/client/config"
	"skillmarket/internal/client/models"
	sessionrepo "skillmarket/internal/client/repositories/session"
	"skillmarket/internal/client/services"
	"skillmarket/internal/logging"
)

// scriptedAPI is a minimal api.Client fake for the interactive flows.
type scriptedAPI struct {
	creds api.Credentials
	err   error

	providers []models.ProviderProfile
	listings  []models.ProviderListing

	lastRegister models.RegistrationDraft
	lastCreate   models.ProfileDraft
	lastUpdate   models.ProviderProfile
}

func (f *scriptedAPI) Register(_ context.Context, draft models.RegistrationDraft) (api.Credentials, error) {
	f.lastRegister = draft
	return f.creds, f.err
}

func (f *scriptedAPI) Login(context.Context, string, string) (api.Credentials, error) {
	return f.creds, f.err
}

func (f *scriptedAPI) Validate(context.Context, string) (bool, error) { return true, nil }

func (f *scriptedAPI) Providers(context.Context, string) ([]models.ProviderProfile, error) {
	return f.providers, f.err
}

func (f *scriptedAPI) CreateProvider(_ context.Context, _ string, draft models.ProfileDraft) (models.ProviderProfile, error) {
	f.lastCreate = draft
	return models.ProviderProfile{ID: 1, UserID: f.creds.User.ID, Name: draft.Name, Skills: draft.Skills}, f.err
}

func (f *scriptedAPI) UpdateProvider(_ context.Context, _ string, _ int64, profile models.ProviderProfile) (models.ProviderProfile, error) {
	f.lastUpdate = profile
	return profile, f.err
}

func (f *scriptedAPI) MatchProviders(context.Context, string) ([]models.ProviderListing, error) {
	return f.listings, f.err
}

func newTestApp(t *testing.T, fake api.Client) (*App, *bytes.Buffer) {
	t.Helper()
	dsn := "file:cliapp_" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := sessionrepo.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.NewNop()
	sessions := services.NewSessionService(fake, db, log, services.ReauthBlock)
	var out bytes.Buffer
	return &App{
		config:   &config.Config{},
		sessions: sessions,
		listings: services.NewListingService(fake, sessions, log),
		profiles: services.NewProfileService(fake, sessions, log),
		log:      log,
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      &out,
	}, &out
}

// stubPrompts replaces the interactive seams with queue-backed fakes.
func stubPrompts(t *testing.T, texts []string, passwords []string, choices []string, skills []string) {
	t.Helper()
	origText, origPw, origChoice, origSkills := getSimpleText, getPassword, getChoice, getSkillList
	t.Cleanup(func() {
		getSimpleText, getPassword, getChoice, getSkillList = origText, origPw, origChoice, origSkills
	})

	pop := func(q *[]string) string {
		require.NotEmpty(t, *q, "prompt called more times than scripted")
		v := (*q)[0]
		*q = (*q)[1:]
		return v
	}

	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return pop(&texts), nil }
	getPassword = func(string, io.Writer) (string, error) { return pop(&passwords), nil }
	getChoice = func(_ *bufio.Reader, _ string, _ []string, _ io.Writer) (string, error) {
		return pop(&choices), nil
	}
	getSkillList = func(*bufio.Reader, io.Writer) ([]string, error) { return skills, nil }
}

func TestLogin_Flow(t *testing.T) {
	fake := &scriptedAPI{creds: api.Credentials{
		Token: "t1",
		User:  models.User{ID: 7, Email: "a@b.c", Role: models.RoleSeeker},
	}}
	app, out := newTestApp(t, fake)
	stubPrompts(t, []string{"a@b.c"}, []string{"pw"}, nil, nil)

	require.NoError(t, app.Login(context.Background()))
	require.True(t, app.isLoggedIn())
	require.Equal(t, models.RoleSeeker, app.role())
	require.Contains(t, out.String(), "Login successful")
}

func TestRegister_ProviderCollectsRoleFields(t *testing.T) {
	fake := &scriptedAPI{creds: api.Credentials{
		Token: "t1",
		User:  models.User{ID: 7, Email: "acme@x.y", Role: models.RoleProvider},
	}}
	app, _ := newTestApp(t, fake)
	stubPrompts(t,
		[]string{"acme@x.y", "Berlin", "Acme"},        // email, location, display name
		[]string{"pw", "pw"},                          // password + confirm
		[]string{"provider", "Design & Creative"},     // role, service focus
		[]string{"logo", "branding"},
	)

	require.NoError(t, app.Register(context.Background()))

	draft := fake.lastRegister
	require.Equal(t, "acme@x.y", draft.Email)
	require.Equal(t, models.RoleProvider, draft.Role)
	require.Equal(t, "Berlin", draft.Location)
	require.Equal(t, "Acme", draft.Name)
	require.Equal(t, "Design & Creative", draft.ServiceFocus)
	require.Equal(t, []string{"logo", "branding"}, draft.Skills)
	require.Empty(t, draft.IndustryPreference, "seeker-only field stays blank for providers")
	require.True(t, app.isLoggedIn())
}

func TestRegister_SeekerCollectsIndustryPreference(t *testing.T) {
	fake := &scriptedAPI{creds: api.Credentials{
		Token: "t1",
		User:  models.User{ID: 8, Email: "s@x.y", Role: models.RoleSeeker},
	}}
	app, _ := newTestApp(t, fake)
	stubPrompts(t,
		[]string{"s@x.y", ""},
		[]string{"pw", "pw"},
		[]string{"seeker", "Web Development"},
		nil,
	)

	require.NoError(t, app.Register(context.Background()))

	draft := fake.lastRegister
	require.Equal(t, models.RoleSeeker, draft.Role)
	require.Equal(t, "Web Development", draft.IndustryPreference)
	require.Empty(t, draft.Name)
	require.NotNil(t, draft.Skills, "skills must serialize as [], not null")
}

func TestRegister_PasswordMismatch(t *testing.T) {
	fake := &scriptedAPI{}
	app, _ := newTestApp(t, fake)
	stubPrompts(t, []string{"a@b.c"}, []string{"pw", "different"}, nil, nil)

	err := app.Register(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "passwords do not match")
	require.Empty(t, fake.lastRegister.Email, "mismatch must not reach the server")
}

func loginSeeker(t *testing.T, app *App) {
	t.Helper()
	stubPrompts(t, []string{"a@b.c"}, []string{"pw"}, nil, nil)
	require.NoError(t, app.Login(context.Background()))
}

func TestBrowseAndLocalFilters(t *testing.T) {
	fake := &scriptedAPI{
		creds: api.Credentials{Token: "t1", User: models.User{ID: 7, Email: "a@b.c", Role: models.RoleSeeker}},
		listings: []models.ProviderListing{
			{ProviderProfile: models.ProviderProfile{ID: 1, Name: "Acme Design", Skills: []string{"logo"}, Rating: 4.5}, MatchScore: 90.2},
			{ProviderProfile: models.ProviderProfile{ID: 2, Name: "Bolt Web", Skills: []string{"react"}, Rating: 3.9}, MatchScore: 55.0},
		},
	}
	app, out := newTestApp(t, fake)
	loginSeeker(t, app)

	require.NoError(t, app.Browse(context.Background()))
	require.Contains(t, out.String(), "Acme Design")
	require.Contains(t, out.String(), "match 90%")
	require.Contains(t, out.String(), "2 of 2 providers shown")

	out.Reset()
	require.NoError(t, app.Search(context.Background(), []string{"acme"}))
	require.Contains(t, out.String(), "Acme Design")
	require.NotContains(t, out.String(), "Bolt Web")
	require.Contains(t, out.String(), "1 of 2 providers shown")

	out.Reset()
	require.NoError(t, app.SkillFilter(context.Background(), []string{"react"}))
	require.Contains(t, out.String(), "No providers found matching your criteria.")

	// Clearing the name filter leaves the skill filter active.
	out.Reset()
	require.NoError(t, app.Search(context.Background(), nil))
	require.Contains(t, out.String(), "Bolt Web")
	require.NotContains(t, out.String(), "Acme Design")
}

func TestSkills_RequiresFetchedListing(t *testing.T) {
	fake := &scriptedAPI{
		creds: api.Credentials{Token: "t1", User: models.User{ID: 7, Email: "a@b.c", Role: models.RoleSeeker}},
	}
	app, out := newTestApp(t, fake)
	loginSeeker(t, app)

	require.NoError(t, app.Skills(context.Background()))
	require.Contains(t, out.String(), "run 'browse' first")
}

func TestShowProfile_MissingProfileHintsCreate(t *testing.T) {
	fake := &scriptedAPI{
		creds: api.Credentials{Token: "t1", User: models.User{ID: 7, Email: "p@x.y", Role: models.RoleProvider}},
	}
	app, out := newTestApp(t, fake)
	loginSeeker(t, app)

	require.NoError(t, app.ShowProfile(context.Background()))
	require.Contains(t, out.String(), "Run 'create'")
}

func TestEditFlow_RemoveSkillIsOneBased(t *testing.T) {
	fake := &scriptedAPI{
		creds: api.Credentials{Token: "t1", User: models.User{ID: 7, Email: "p@x.y", Role: models.RoleProvider}},
		providers: []models.ProviderProfile{
			{ID: 9, UserID: 7, Name: "Acme", Skills: []string{"logo", "web"}},
		},
	}
	app, _ := newTestApp(t, fake)
	loginSeeker(t, app)

	require.NoError(t, app.StartEdit(context.Background()))
	require.NoError(t, app.AddSkill(context.Background(), []string{"X"}))
	require.NoError(t, app.RemoveSkill(context.Background(), []string{"1"}))
	require.NoError(t, app.SaveEdit(context.Background()))

	require.Equal(t, []string{"web", "X"}, fake.lastUpdate.Skills)
}

func TestRemoveSkill_Usage(t *testing.T) {
	app, _ := newTestApp(t, &scriptedAPI{})
	require.Error(t, app.RemoveSkill(context.Background(), nil))
	require.Error(t, app.RemoveSkill(context.Background(), []string{"one"}))
}

func TestWhoami_PrintsIdentity(t *testing.T) {
	fake := &scriptedAPI{
		creds: api.Credentials{Token: "t1", User: models.User{ID: 7, Email: "a@b.c", Role: models.RoleSeeker}},
	}
	app, out := newTestApp(t, fake)
	loginSeeker(t, app)

	require.NoError(t, app.Whoami(context.Background()))
	require.Contains(t, out.String(), "a@b.c (seeker, id 7)")
	require.NotContains(t, out.String(), "Session expires", "an opaque token carries no expiry")
}
