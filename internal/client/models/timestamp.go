package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Timestamp is a time.Time that tolerates the server's timestamp formats.
// The backend emits naive ISO-8601 strings ("2006-01-02T15:04:05.999999",
// no zone suffix); RFC 3339 is accepted too.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON parses a JSON string into the timestamp, trying the known
// server layouts in order. null and the empty string yield a zero Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*t = Timestamp{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a JSON string: %w", err)
	}
	if raw == "" {
		*t = Timestamp{}
		return nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			*t = Timestamp{parsed}
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", raw)
}

// MarshalJSON renders the timestamp as an RFC 3339 string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.Format(time.RFC3339))
}
