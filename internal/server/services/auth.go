// Package services contains the server-side business logic. AuthService
// drives registration and the challenge/response exchange for every
// configured protocol variant.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/platonfloria/chaum-pedersen-auth/internal/common"
	"github.com/platonfloria/chaum-pedersen-auth/internal/logging"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/models"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/repositories/users"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/sessions"
	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
)

// TokenIssuer mints the access token handed out on a successful proof and
// resolves it back to its owner.
type TokenIssuer interface {
	Issue(userName, sessionID string) (string, error)
	Parse(token string) (userName, sessionID string, err error)
}

// Verification is the outcome of a successful answer.
type Verification struct {
	UserName    string
	SessionID   string
	AccessToken string
}

// Identity is the owner of an access token.
type Identity struct {
	UserName  string
	SessionID string
}

type AuthService struct {
	users        users.Repository
	sessions     sessions.Store
	verifiers    map[zkp.Variant]zkp.Verifier
	tokens       TokenIssuer
	logger       logging.Logger
	newSessionID func() string
}

// NewAuthService wires the service. Each verifier serves the variant it
// reports; a later verifier for the same variant replaces an earlier one.
func NewAuthService(users users.Repository, sessions sessions.Store, tokens TokenIssuer, logger logging.Logger, verifiers ...zkp.Verifier) *AuthService {
	byVariant := make(map[zkp.Variant]zkp.Verifier, len(verifiers))
	for _, v := range verifiers {
		byVariant[v.Variant()] = v
	}
	return &AuthService{
		users:        users,
		sessions:     sessions,
		verifiers:    byVariant,
		tokens:       tokens,
		logger:       logger,
		newSessionID: uuid.NewString,
	}
}

// Register stores the public pair y for name. Registration is write-once.
func (s *AuthService) Register(ctx context.Context, name string, y zkp.Commitment) error {
	if name == "" || y == nil {
		return common.ErrorInvalidArgument
	}
	if _, ok := s.verifiers[y.Variant()]; !ok {
		return fmt.Errorf("%w: variant %s is not served", common.ErrorInvalidArgument, y.Variant())
	}

	if _, err := s.users.Create(ctx, &models.User{UserName: name, Commitment: y}); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return common.ErrorAlreadyExists
		}
		s.logger.Error(ctx, "storing user failed", "user", name, "error", err)
		return common.ErrorInternal
	}

	s.logger.Info(ctx, "user registered", "user", name, "variant", y.Variant().String(), "fingerprint", zkp.Fingerprint(y))
	return nil
}

// CreateChallenge records the prover's commitment r and returns a fresh
// auth id together with the challenge c.
func (s *AuthService) CreateChallenge(ctx context.Context, name string, r zkp.Commitment) (string, zkp.Scalar, error) {
	if name == "" || r == nil {
		return "", nil, common.ErrorInvalidArgument
	}

	if _, err := s.users.GetUserByName(ctx, name); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "loading user failed", "user", name, "error", err)
		return "", nil, common.ErrorInternal
	}

	verifier, ok := s.verifiers[r.Variant()]
	if !ok {
		return "", nil, fmt.Errorf("%w: variant %s is not served", common.ErrorInvalidArgument, r.Variant())
	}

	c, err := verifier.NewChallenge()
	if err != nil {
		s.logger.Error(ctx, "sampling challenge failed", "error", err)
		return "", nil, common.ErrorInternal
	}

	authID, err := s.sessions.Create(ctx, &models.Session{UserName: name, Commitment: r, Challenge: c})
	if err != nil {
		s.logger.Error(ctx, "storing session failed", "user", name, "error", err)
		return "", nil, common.ErrorInternal
	}

	s.logger.Debug(ctx, "challenge issued", "user", name, "auth_id", authID, "variant", r.Variant().String())
	return authID, c, nil
}

// VerifyAnswer checks the response s for the session authID. The first
// successful answer fixes the session id; later successful answers for the
// same auth id return it again with a fresh access token.
func (s *AuthService) VerifyAnswer(ctx context.Context, authID string, answer zkp.Scalar) (*Verification, error) {
	if answer == nil {
		return nil, common.ErrorInvalidArgument
	}
	if _, err := uuid.Parse(authID); err != nil {
		return nil, fmt.Errorf("%w: malformed auth id", common.ErrorInvalidArgument)
	}

	session, err := s.sessions.Get(ctx, authID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	user, err := s.users.GetUserByName(ctx, session.UserName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "loading user failed", "user", session.UserName, "error", err)
		return nil, common.ErrorInternal
	}

	variant := session.Commitment.Variant()
	if user.Variant() != variant || answer.Variant() != variant || session.Challenge.Variant() != variant {
		s.logger.Warn(ctx, "protocol mismatch", "user", user.UserName, "auth_id", authID,
			"registered", user.Variant().String(), "session", variant.String(), "answer", answer.Variant().String())
		return nil, common.ErrorProtocolMismatch
	}

	verifier, ok := s.verifiers[variant]
	if !ok {
		return nil, common.ErrorProtocolMismatch
	}

	valid, err := verifier.VerifyProof(user.Commitment, session.Commitment, session.Challenge, answer)
	if err != nil {
		if errors.Is(err, zkp.ErrProtocolMismatch) {
			return nil, common.ErrorProtocolMismatch
		}
		return nil, common.ErrorInternal
	}
	if !valid {
		s.logger.Warn(ctx, "proof rejected", "user", user.UserName, "auth_id", authID)
		return nil, common.ErrorUnauthenticated
	}

	sessionID, err := s.sessions.MarkVerified(ctx, authID, s.newSessionID())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	token, err := s.tokens.Issue(user.UserName, sessionID)
	if err != nil {
		s.logger.Error(ctx, "issuing token failed", "user", user.UserName, "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "user authenticated", "user", user.UserName, "session_id", sessionID)
	return &Verification{UserName: user.UserName, SessionID: sessionID, AccessToken: token}, nil
}

// Identify resolves an access token minted by VerifyAnswer.
func (s *AuthService) Identify(ctx context.Context, accessToken string) (*Identity, error) {
	userName, sessionID, err := s.tokens.Parse(accessToken)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrorUnauthenticated
	}
	return &Identity{UserName: userName, SessionID: sessionID}, nil
}
