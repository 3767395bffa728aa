// Package zkp implements the two Chaum-Pedersen protocol instances used for
// password authentication: one over a prime-order subgroup of Z*_p and one
// over secp256k1.
//
// The prover side (DerivePublicKey, Commit, Solve) runs in the client. The
// verifier side (Challenge, Verify) runs in the server and is exposed through
// the Verifier interface so the authentication service can treat both
// variants uniformly.
package zkp

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var (
	// ErrProtocolMismatch is returned when values from different protocol
	// variants are combined in a single operation.
	ErrProtocolMismatch = errors.New("protocol mismatch")

	// ErrInvalidEncoding is returned when a wire value cannot be decoded
	// into a valid group element or scalar.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidParameters is returned by engine constructors.
	ErrInvalidParameters = errors.New("invalid group parameters")
)

// Variant identifies a protocol instance.
type Variant uint8

const (
	VariantDiscreteLog Variant = iota + 1
	VariantEllipticCurve
)

func (v Variant) String() string {
	switch v {
	case VariantDiscreteLog:
		return "discrete_log"
	case VariantEllipticCurve:
		return "k256"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// ParseVariant accepts the names produced by Variant.String.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "discrete_log", "dl", "exponent":
		return VariantDiscreteLog, nil
	case "k256", "secp256k1", "curve":
		return VariantEllipticCurve, nil
	}
	return 0, fmt.Errorf("unknown protocol variant %q", s)
}

// Commitment is a pair of group elements: (y1, y2) when registering and
// (r1, r2) when opening a challenge.
type Commitment interface {
	Variant() Variant
	isCommitment()
}

// Scalar is a challenge c or a response s.
type Scalar interface {
	Variant() Variant
	isScalar()
}

// DLPair holds two elements of Z*_p.
type DLPair struct {
	First  *big.Int
	Second *big.Int
}

func (DLPair) Variant() Variant { return VariantDiscreteLog }
func (DLPair) isCommitment()    {}

// CurvePair holds two secp256k1 points.
type CurvePair struct {
	First  *secp256k1.PublicKey
	Second *secp256k1.PublicKey
}

func (CurvePair) Variant() Variant { return VariantEllipticCurve }
func (CurvePair) isCommitment()    {}

// DLScalar is a non-negative integer exponent. Responses are not reduced
// modulo q.
type DLScalar struct {
	Value *big.Int
}

func (DLScalar) Variant() Variant { return VariantDiscreteLog }
func (DLScalar) isScalar()        {}

// CurveScalar is an element of the secp256k1 scalar field.
type CurveScalar struct {
	Value secp256k1.ModNScalar
}

func (CurveScalar) Variant() Variant { return VariantEllipticCurve }
func (CurveScalar) isScalar()        {}

// Verifier is the server side of a protocol instance.
type Verifier interface {
	Variant() Variant
	// NewChallenge samples a fresh challenge c.
	NewChallenge() (Scalar, error)
	// VerifyProof reports whether s answers challenge c for the commitment r
	// against the registered public pair y. Arguments of a foreign variant
	// yield ErrProtocolMismatch.
	VerifyProof(y, r Commitment, c, s Scalar) (bool, error)
}
