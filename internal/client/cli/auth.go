package cli

import (
	"context"
	"fmt"

	"skillmarket/internal/client/models"
	"skillmarket/internal/common"
)

// getSimpleText, getPassword, getChoice and getSkillList are indirections
// used to facilitate testing of the interactive flows.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getChoice     = GetChoice
	getSkillList  = GetSkillList
)

// Login prompts for credentials and establishes a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if err := a.sessions.Login(ctx, email, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Register walks the registration form: the common fields first, then the
// fields for the selected role. Everything is submitted in one draft; the
// server ignores what it does not need for the role.
func (a *App) Register(ctx context.Context) error {
	draft := models.RegistrationDraft{Skills: []string{}}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	draft.Email = email

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	draft.Password = password

	role, err := getChoice(a.reader, "Select role", []string{string(models.RoleSeeker), string(models.RoleProvider)}, a.out)
	if err != nil {
		return err
	}
	draft.Role = models.Role(role)

	location, err := getSimpleText(a.reader, "Enter location (optional)", a.out)
	if err != nil {
		return err
	}
	draft.Location = location

	switch draft.Role {
	case models.RoleSeeker:
		industry, err := getChoice(a.reader, "Industry preference", common.FocusAreas, a.out)
		if err != nil {
			return err
		}
		draft.IndustryPreference = industry

	case models.RoleProvider:
		name, err := getSimpleText(a.reader, "Enter display name", a.out)
		if err != nil {
			return err
		}
		draft.Name = name

		focus, err := getChoice(a.reader, "Service focus", common.FocusAreas, a.out)
		if err != nil {
			return err
		}
		draft.ServiceFocus = focus

		skills, err := getSkillList(a.reader, a.out)
		if err != nil {
			return err
		}
		if skills != nil {
			draft.Skills = skills
		}
	}

	if err := a.sessions.Register(ctx, draft); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Registration successful")
	return nil
}

// Logout clears the session and drops back to the login command set.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Whoami prints the session identity and, when the token carries one, its
// expiry.
func (a *App) Whoami(_ context.Context) error {
	sess := a.sessions.Current()
	if !sess.Active() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s, id %d)\n", sess.User.Email, sess.User.Role, sess.User.ID)
	if exp, ok := a.sessions.Expiry(); ok {
		fmt.Fprintf(a.out, "Session expires %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
