package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"skillmarket/internal/client/models"
	"skillmarket/internal/client/services"
	"skillmarket/internal/common"
)

// ShowProfile fetches and renders the provider's own profile. When the
// server has no profile for this account yet, the user is pointed at the
// create flow instead of seeing a bare error.
func (a *App) ShowProfile(ctx context.Context) error {
	profile, err := a.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			fmt.Fprintln(a.out, "No provider profile yet. Run 'create' to set one up.")
			return nil
		}
		return err
	}
	a.renderProfile(profile, "Profile")
	return nil
}

// CreateProfile walks the profile creation form and submits it.
func (a *App) CreateProfile(ctx context.Context) error {
	var draft models.ProfileDraft

	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}
	draft.Name = name

	location, err := getSimpleText(a.reader, "Enter location (optional)", a.out)
	if err != nil {
		return err
	}
	draft.Location = location

	focus, err := getChoice(a.reader, "Service focus", common.FocusAreas, a.out)
	if err != nil {
		return err
	}
	draft.ServiceFocus = focus

	skills, err := getSkillList(a.reader, a.out)
	if err != nil {
		return err
	}
	draft.Skills = skills
	if draft.Skills == nil {
		draft.Skills = []string{}
	}

	profile, err := a.profiles.Create(ctx, draft)
	if err != nil {
		return err
	}
	a.renderProfile(profile, "Profile created")
	return nil
}

// StartEdit snapshots the profile into a draft; subsequent name/location/
// focus/addskill/rmskill commands mutate the draft until save or cancel.
func (a *App) StartEdit(ctx context.Context) error {
	if a.profiles.Profile() == nil {
		if _, err := a.profiles.Load(ctx); err != nil {
			return err
		}
	}
	if err := a.profiles.StartEdit(); err != nil {
		return err
	}
	a.renderProfile(a.profiles.Draft(), "Editing profile (save / cancel when done)")
	return nil
}

func (a *App) SetName(_ context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: name <text>")
	}
	return a.profiles.SetName(strings.Join(args, " "))
}

func (a *App) SetLocation(_ context.Context, args []string) error {
	return a.profiles.SetLocation(strings.Join(args, " "))
}

// SetFocus picks the service focus from the canonical categories.
func (a *App) SetFocus(_ context.Context) error {
	if !a.profiles.Editing() {
		return services.ErrEditNotActive
	}
	focus, err := getChoice(a.reader, "Service focus", common.FocusAreas, a.out)
	if err != nil {
		return err
	}
	if focus == "" {
		return nil
	}
	return a.profiles.SetServiceFocus(focus)
}

func (a *App) AddSkill(_ context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: addskill <text>")
	}
	return a.profiles.AddSkill(strings.Join(args, " "))
}

// RemoveSkill removes by the 1-based position shown in the draft listing.
func (a *App) RemoveSkill(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: rmskill <number>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("usage: rmskill <number>")
	}
	return a.profiles.RemoveSkill(n - 1)
}

// SaveEdit submits the draft. On failure edit mode stays active and the
// draft is kept for a retry.
func (a *App) SaveEdit(ctx context.Context) error {
	if err := a.profiles.Save(ctx); err != nil {
		return err
	}
	a.renderProfile(a.profiles.Profile(), "Profile saved")
	return nil
}

func (a *App) CancelEdit(_ context.Context) error {
	a.profiles.Cancel()
	fmt.Fprintln(a.out, "Edit cancelled")
	return nil
}

func (a *App) renderProfile(p *models.ProviderProfile, title string) {
	if p == nil {
		fmt.Fprintln(a.out, "No profile loaded")
		return
	}
	fmt.Fprintf(a.out, "\n%s\n", title)
	fmt.Fprintf(a.out, "  Name: %s\n", p.Name)
	fmt.Fprintf(a.out, "  Location: %s\n", orPlaceholder(p.Location))
	fmt.Fprintf(a.out, "  Service focus: %s\n", p.ServiceFocus)
	fmt.Fprintf(a.out, "  Rating: ★ %.1f\n", p.Rating)
	if len(p.Skills) == 0 {
		fmt.Fprintln(a.out, "  Skills: (none)")
	} else {
		fmt.Fprintln(a.out, "  Skills:")
		for i, s := range p.Skills {
			fmt.Fprintf(a.out, "    %2d. %s\n", i+1, s)
		}
	}
	if !p.CreatedAt.IsZero() {
		fmt.Fprintf(a.out, "  Joined: %s\n", p.CreatedAt.Format("Jan 2, 2006"))
	}
}
