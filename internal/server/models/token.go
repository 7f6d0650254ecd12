package models

import "time"

// VerificationToken is a single-use secret bound to one account.
//
// Value is the plaintext delivered to the user and is only ever held in
// memory; the database stores Hash.
type VerificationToken struct {
	ID        string
	AccountID string
	Value     string
	Hash      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token is past its validity window at now.
func (t *VerificationToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
