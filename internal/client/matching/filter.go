// Package matching is the local filter engine for the seeker dashboard:
// pure, synchronous, order-preserving predicates over the fetched listing.
// Ranking itself is server-side; this package only narrows what is shown.
package matching

import (
	"sort"
	"strings"

	"skillmarket/internal/client/models"
)

// AnySkill is the sentinel that disables skill filtering. An empty string
// is accepted as the same sentinel, matching the web dashboard's
// "All Skills" option.
const AnySkill = "any"

// Filter returns the listings whose name contains term (case-insensitive)
// and whose skill list contains skill verbatim. Relative order is
// preserved; the input slice is never modified.
func Filter(listings []models.ProviderListing, term, skill string) []models.ProviderListing {
	needle := strings.ToLower(term)

	result := make([]models.ProviderListing, 0, len(listings))
	for _, l := range listings {
		if !strings.Contains(strings.ToLower(l.Name), needle) {
			continue
		}
		if !matchesSkill(l.Skills, skill) {
			continue
		}
		result = append(result, l)
	}
	return result
}

func matchesSkill(skills []string, selected string) bool {
	if selected == "" || selected == AnySkill {
		return true
	}
	for _, s := range skills {
		if s == selected {
			return true
		}
	}
	return false
}

// UniqueSkills returns the sorted set of skills appearing across the
// listing, for populating the skill filter choices.
func UniqueSkills(listings []models.ProviderListing) []string {
	seen := make(map[string]struct{})
	var skills []string
	for _, l := range listings {
		for _, s := range l.Skills {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			skills = append(skills, s)
		}
	}
	sort.Strings(skills)
	return skills
}
