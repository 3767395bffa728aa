package client

import (
	"context"

	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
)

// Session is what the server hands back for an accepted proof.
type Session struct {
	SessionID   string
	AccessToken string
}

type Client interface {
	Close() error
	Register(ctx context.Context, user string, y zkp.Commitment) error
	CreateChallenge(ctx context.Context, user string, r zkp.Commitment) (authID string, c zkp.Scalar, err error)
	VerifyAnswer(ctx context.Context, authID string, s zkp.Scalar) (*Session, error)
	WhoAmI(ctx context.Context) (user, sessionID string, err error)
}
