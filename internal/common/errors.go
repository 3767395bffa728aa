// Package common defines shared constants, helpers and sentinel errors used
// across client and server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrorInvalidArgument  = errors.New("invalid argument")
	ErrorUnauthenticated  = errors.New("unauthenticated")
	ErrorProtocolMismatch = errors.New("protocol mismatch")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
