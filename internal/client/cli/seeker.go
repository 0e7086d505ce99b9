package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	"skillmarket/internal/client/matching"
	"skillmarket/internal/client/models"
)

// Browse fetches the ranked provider listing and renders it through the
// active filters. On failure the previous listing is discarded and the
// dashboard shows the load error.
func (a *App) Browse(ctx context.Context) error {
	listing, err := a.listings.Providers(ctx)
	if err != nil {
		a.listing = nil
		return err
	}
	a.listing = listing
	a.renderListing()
	return nil
}

// Search sets (or with no argument clears) the name filter and re-renders
// the last fetched listing. Purely local; nothing is re-fetched.
func (a *App) Search(_ context.Context, args []string) error {
	a.searchTerm = strings.Join(args, " ")
	a.renderListing()
	return nil
}

// SkillFilter sets the skill filter. "any" (or no argument) clears it.
func (a *App) SkillFilter(_ context.Context, args []string) error {
	if len(args) == 0 {
		a.selectedSkill = matching.AnySkill
	} else {
		a.selectedSkill = strings.Join(args, " ")
	}
	a.renderListing()
	return nil
}

// Skills prints every skill seen in the fetched listing, the counterpart
// of the dashboard's skill dropdown.
func (a *App) Skills(_ context.Context) error {
	if len(a.listing) == 0 {
		fmt.Fprintln(a.out, "No providers loaded; run 'browse' first.")
		return nil
	}
	for _, s := range matching.UniqueSkills(a.listing) {
		fmt.Fprintln(a.out, " -", s)
	}
	return nil
}

func (a *App) renderListing() {
	filtered := matching.Filter(a.listing, a.searchTerm, a.selectedSkill)

	if a.searchTerm != "" || (a.selectedSkill != "" && a.selectedSkill != matching.AnySkill) {
		fmt.Fprintf(a.out, "Filters: name contains %q, skill %q\n", a.searchTerm, a.selectedSkill)
	}

	if len(filtered) == 0 {
		fmt.Fprintln(a.out, "No providers found matching your criteria.")
		return
	}

	for _, l := range filtered {
		a.renderListingEntry(l)
	}
	fmt.Fprintf(a.out, "%d of %d providers shown\n", len(filtered), len(a.listing))
}

func (a *App) renderListingEntry(l models.ProviderListing) {
	fmt.Fprintf(a.out, "\n%s  ★ %.1f  match %d%%\n", l.Name, l.Rating, int(math.Round(l.MatchScore)))
	fmt.Fprintf(a.out, "  Location: %s\n", orPlaceholder(l.Location))
	fmt.Fprintf(a.out, "  Service focus: %s\n", l.ServiceFocus)
	fmt.Fprintf(a.out, "  Skills: %s\n", strings.Join(l.Skills, ", "))
	if !l.CreatedAt.IsZero() {
		fmt.Fprintf(a.out, "  Joined: %s\n", l.CreatedAt.Format("Jan 2, 2006"))
	}
}

func orPlaceholder(location string) string {
	if location == "" {
		return "Location not specified"
	}
	return location
}
