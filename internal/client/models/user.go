package models

// Role distinguishes the two marketplace account types.
type Role string

const (
	// RoleSeeker is an account searching for a service provider.
	RoleSeeker Role = "seeker"
	// RoleProvider is an account offering services; owns one profile.
	RoleProvider Role = "provider"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleSeeker || r == RoleProvider
}

// User is the identity issued by the server on login or registration.
// It is immutable for the lifetime of a session.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
