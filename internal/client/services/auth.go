// Package services contains application services for the authentication
// CLI. AuthService turns a username and password into the protocol
// messages a Client carries to the server.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/platonfloria/chaum-pedersen-auth/internal/client/client"
	"github.com/platonfloria/chaum-pedersen-auth/internal/logging"
)

var ErrEmptyUserName = errors.New("user name is empty")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: derive (y1, y2) from the password and store it on the server.
//   - Login: run one commit, challenge, answer exchange and return the session.
//   - WhoAmI: ask the server who the current access token belongs to.
//   - Close: release underlying client resources.
//
// The password never leaves the process; only commitments and the response
// scalar are sent.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) (*client.Session, error)
	WhoAmI(ctx context.Context) (username, sessionID string, err error)
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	prover Prover
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// prover.
func NewAuthService(c client.Client, prover Prover, logger logging.Logger) AuthService {
	return &authService{client: c, prover: prover, logger: logger}
}

func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	if username == "" {
		return ErrEmptyUserName
	}
	y, err := a.prover.PublicKey(password)
	if err != nil {
		return fmt.Errorf("deriving public key: %w", err)
	}
	if err := a.client.Register(ctx, username, y); err != nil {
		return err
	}
	a.logger.Debug(ctx, "registered", "user", username, "variant", a.prover.Variant())
	return nil
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*client.Session, error) {
	if username == "" {
		return nil, ErrEmptyUserName
	}

	round, err := a.prover.Commit()
	if err != nil {
		return nil, fmt.Errorf("commit error: %w", err)
	}

	authID, c, err := a.client.CreateChallenge(ctx, username, round.Commitment())
	if err != nil {
		return nil, fmt.Errorf("challenge error: %w", err)
	}
	a.logger.Debug(ctx, "challenge received", "user", username, "auth_id", authID)

	s, err := round.Answer(password, c)
	if err != nil {
		return nil, fmt.Errorf("answer error: %w", err)
	}

	sess, err := a.client.VerifyAnswer(ctx, authID, s)
	if err != nil {
		return nil, fmt.Errorf("verify error: %w", err)
	}
	a.logger.Debug(ctx, "login succeeded", "user", username, "session_id", sess.SessionID)
	return sess, nil
}

func (a *authService) WhoAmI(ctx context.Context) (string, string, error) {
	return a.client.WhoAmI(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
