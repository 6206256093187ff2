package domain

import "time"

// Organisation is a tenant. Every slide and account belongs to exactly one
// organisation; tenant isolation is enforced by scoping all queries to the
// organisation resolved from the caller's account email.
type Organisation struct {
	ID        int64
	Name      string
	LogoURL   string
	CreatedAt time.Time
}
