package domain

import "time"

// Identity is the decoded claim set proving who the caller is. Tokens are
// stateless; nothing about an identity is persisted server-side.
type Identity struct {
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
