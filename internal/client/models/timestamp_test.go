package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalServerFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", `"2024-05-01T10:30:00Z"`, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		{"naive iso", `"2024-05-01T10:30:00.123456"`, time.Date(2024, 5, 1, 10, 30, 0, 123456000, time.UTC)},
		{"naive iso no fraction", `"2024-05-01T10:30:00"`, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		{"date only", `"2024-05-01"`, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tc.in), &ts))
			require.True(t, ts.Equal(tc.want), "got %v, want %v", ts.Time, tc.want)
		})
	}
}

func TestTimestamp_UnmarshalNullAndEmpty(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	require.True(t, ts.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	require.True(t, ts.IsZero())
}

func TestTimestamp_UnmarshalGarbage(t *testing.T) {
	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	require.Error(t, json.Unmarshal([]byte(`42`), &ts))
}

func TestSession_Invariant(t *testing.T) {
	require.True(t, Session{}.Empty())
	require.False(t, Session{}.Active())

	full := Session{Token: "t", User: &User{ID: 1, Email: "a@b", Role: RoleSeeker}}
	require.True(t, full.Active())
	require.False(t, full.Empty())

	// Partial sessions are neither active nor empty: invariant violations.
	partial := Session{Token: "t"}
	require.False(t, partial.Active())
	require.False(t, partial.Empty())
}

func TestProviderProfile_CloneIsDeep(t *testing.T) {
	p := &ProviderProfile{ID: 1, Name: "Acme", Skills: []string{"a", "b"}}
	c := p.Clone()

	c.Skills[0] = "changed"
	c.Name = "other"

	require.Equal(t, "a", p.Skills[0])
	require.Equal(t, "Acme", p.Name)

	var nilProfile *ProviderProfile
	require.Nil(t, nilProfile.Clone())
}

func TestRegistrationDraft_Validate(t *testing.T) {
	draft := RegistrationDraft{Email: "a@b", Password: "pw", Role: RoleProvider}
	require.NoError(t, draft.Validate())

	require.ErrorIs(t, (&RegistrationDraft{Password: "pw", Role: RoleSeeker}).Validate(), ErrDraftEmailRequired)
	require.ErrorIs(t, (&RegistrationDraft{Email: "a@b", Role: RoleSeeker}).Validate(), ErrDraftPasswordRequired)
	require.ErrorIs(t, (&RegistrationDraft{Email: "a@b", Password: "pw", Role: "admin"}).Validate(), ErrDraftInvalidRole)
}

func TestRegistrationDraft_MarshalsAllFields(t *testing.T) {
	// The server reads location and industry_preference unconditionally,
	// so the draft must always serialize the full shape.
	data, err := json.Marshal(RegistrationDraft{Email: "a@b", Password: "pw", Role: RoleSeeker, Skills: []string{}})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"email", "password", "role", "location", "industry_preference", "service_focus", "name", "skills"} {
		require.Contains(t, m, key)
	}
}
