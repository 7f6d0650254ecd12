// Package models defines server-side data models persisted in the database.
package models

import "time"

// Account is a registered identity. PasswordHash is never the plaintext.
// Confirmed only ever moves from false to true.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Confirmed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
