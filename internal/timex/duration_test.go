package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"15s"`), &d))
	require.Equal(t, 15*time.Second, d.Duration)
}

func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	require.Equal(t, time.Second, d.Duration)
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	require.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	raw, err := json.Marshal(Duration{2 * time.Minute})
	require.NoError(t, err)
	require.Equal(t, `"2m0s"`, string(raw))

	var d Duration
	require.NoError(t, json.Unmarshal(raw, &d))
	require.Equal(t, 2*time.Minute, d.Duration)
}
