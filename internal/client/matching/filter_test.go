package matching

import (
	"testing"

	"github.com/stretchr/testify/require"

	"skillmarket/internal/client/models"
)

func listing(name string, skills ...string) models.ProviderListing {
	return models.ProviderListing{
		ProviderProfile: models.ProviderProfile{Name: name, Skills: skills},
	}
}

func names(listings []models.ProviderListing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Name)
	}
	return out
}

func TestFilter_NameSubstringCaseInsensitive(t *testing.T) {
	in := []models.ProviderListing{
		listing("Acme Design"),
		listing("Bolt Plumbing"),
		listing("MACRO acme studio"),
	}

	got := Filter(in, "aCmE", AnySkill)
	require.Equal(t, []string{"Acme Design", "MACRO acme studio"}, names(got))
}

func TestFilter_SkillExactMatch(t *testing.T) {
	in := []models.ProviderListing{
		listing("a", "Python", "Go"),
		listing("b", "python"),
		listing("c", "Go"),
	}

	got := Filter(in, "", "Python")
	require.Equal(t, []string{"a"}, names(got), "skill match must be verbatim, not case-folded")
}

func TestFilter_AnySentinelReturnsAll(t *testing.T) {
	in := []models.ProviderListing{
		listing("a", "x"),
		listing("b"),
		listing("c", "y", "z"),
	}

	require.Len(t, Filter(in, "", AnySkill), 3)
	require.Len(t, Filter(in, "", ""), 3, "empty selection behaves as the any sentinel")
}

func TestFilter_BothPredicatesAndStability(t *testing.T) {
	in := []models.ProviderListing{
		listing("Zeta Co", "logo"),
		listing("Alpha Studio", "logo"),
		listing("alpha design", "web"),
		listing("Alphabet Inc", "logo"),
	}

	got := Filter(in, "alpha", "logo")
	// Relative input order preserved; no re-sorting.
	require.Equal(t, []string{"Alpha Studio", "Alphabet Inc"}, names(got))
}

func TestFilter_EmptyInput(t *testing.T) {
	require.Empty(t, Filter(nil, "x", "y"))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := []models.ProviderListing{
		listing("b", "x"),
		listing("a", "x"),
	}

	_ = Filter(in, "", "x")
	require.Equal(t, []string{"b", "a"}, names(in))
}

func TestUniqueSkills(t *testing.T) {
	in := []models.ProviderListing{
		listing("a", "web", "logo", "web"),
		listing("b", "logo", "branding"),
		listing("c"),
	}

	require.Equal(t, []string{"branding", "logo", "web"}, UniqueSkills(in))
}

func TestUniqueSkills_Empty(t *testing.T) {
	require.Empty(t, UniqueSkills(nil))
}
