package models

// ProviderProfile is the service profile owned by exactly one provider user.
// Skills are an ordered list; duplicates are permitted and never deduplicated
// by the client. Mutations happen only through an explicit save.
type ProviderProfile struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Name         string    `json:"name"`
	Skills       []string  `json:"skills"`
	Rating       float64   `json:"rating"`
	Location     string    `json:"location"`
	ServiceFocus string    `json:"service_focus"`
	CreatedAt    Timestamp `json:"created_at"`
}

// Clone returns a deep copy of the profile. The skill slice is copied so the
// edit draft and the canonical profile never share backing storage.
func (p *ProviderProfile) Clone() *ProviderProfile {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Skills != nil {
		cp.Skills = append([]string(nil), p.Skills...)
	}
	return &cp
}

// ProviderListing is a seeker's read-only view of a provider: the profile
// plus the server-computed match score. The score is opaque to the client.
type ProviderListing struct {
	ProviderProfile
	MatchScore float64 `json:"match_score"`
}
