package domain

import "time"

// Role is an account's authority level.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether the role is one of the known authority levels.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Account is a login identity owned by an organisation. The email doubles as
// the caller identity carried through request contexts.
type Account struct {
	ID             int64
	OrganisationID int64
	Email          string
	PasswordHash   string
	Role           Role
	CreatedAt      time.Time
}
