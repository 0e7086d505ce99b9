package models

import (
	"errors"
	"strings"
)

var (
	// ErrDraftEmailRequired is returned when a registration draft has no email.
	ErrDraftEmailRequired = errors.New("email is required")
	// ErrDraftPasswordRequired is returned when a registration draft has no password.
	ErrDraftPasswordRequired = errors.New("password is required")
	// ErrDraftInvalidRole is returned for a role outside {seeker, provider}.
	ErrDraftInvalidRole = errors.New("role must be seeker or provider")
)

// RegistrationDraft is the transient aggregate of all registration form
// fields. Fields irrelevant to the selected role are still submitted with
// their zero values; the server tolerates and expects the full shape.
type RegistrationDraft struct {
	Email              string   `json:"email"`
	Password           string   `json:"password"`
	Role               Role     `json:"role"`
	Location           string   `json:"location"`
	IndustryPreference string   `json:"industry_preference"`
	ServiceFocus       string   `json:"service_focus"`
	Name               string   `json:"name"`
	Skills             []string `json:"skills"`
}

// Validate applies the minimal client-side checks the registration form
// imposed. Everything else is the server's call.
func (d *RegistrationDraft) Validate() error {
	if strings.TrimSpace(d.Email) == "" {
		return ErrDraftEmailRequired
	}
	if d.Password == "" {
		return ErrDraftPasswordRequired
	}
	if !d.Role.Valid() {
		return ErrDraftInvalidRole
	}
	return nil
}

// ProfileDraft carries the fields a provider supplies when creating a
// profile after registration.
type ProfileDraft struct {
	Name         string   `json:"name"`
	Skills       []string `json:"skills"`
	Location     string   `json:"location"`
	ServiceFocus string   `json:"service_focus"`
}
