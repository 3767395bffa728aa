// Package models defines the records the authentication server keeps.
package models

import (
	"time"

	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
)

// User is a registered identity. Commitment holds the public pair (y1, y2)
// derived from the password; the password itself is never stored.
type User struct {
	UserName   string
	Commitment zkp.Commitment
	CreatedAt  time.Time
}

// Variant reports which protocol the user registered under.
func (u *User) Variant() zkp.Variant {
	if u == nil || u.Commitment == nil {
		return 0
	}
	return u.Commitment.Variant()
}
