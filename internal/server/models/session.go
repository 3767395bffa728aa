package models

import (
	"time"

	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
)

// Session is a pending or completed authentication attempt, keyed by the
// auth_id handed to the prover with the challenge.
type Session struct {
	AuthID     string
	UserName   string
	Commitment zkp.Commitment // prover's r1, r2
	Challenge  zkp.Scalar
	CreatedAt  time.Time

	// SessionID is empty until the first successful answer.
	SessionID string
}

// Verified reports whether a session id has been issued.
func (s *Session) Verified() bool {
	return s.SessionID != ""
}
