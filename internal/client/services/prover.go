package services

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
)

// Prover is the client half of one protocol variant.
type Prover interface {
	Variant() zkp.Variant
	// PublicKey derives the registration commitment (y1, y2) from a password.
	PublicKey(password []byte) (zkp.Commitment, error)
	// Commit starts a login attempt with a fresh nonce.
	Commit() (Round, error)
}

// Round holds the nonce of a single login attempt. It must be answered at
// most once and then discarded.
type Round interface {
	Commitment() zkp.Commitment
	Answer(password []byte, c zkp.Scalar) (zkp.Scalar, error)
}

// NewProver selects the engine matching variant.
func NewProver(variant zkp.Variant, dl *zkp.DiscreteLog, curve *zkp.Curve) (Prover, error) {
	switch variant {
	case zkp.VariantDiscreteLog:
		if dl == nil {
			return nil, fmt.Errorf("%s prover: engine not configured", variant)
		}
		return &dlProver{engine: dl}, nil
	case zkp.VariantEllipticCurve:
		if curve == nil {
			return nil, fmt.Errorf("%s prover: engine not configured", variant)
		}
		return &curveProver{engine: curve}, nil
	}
	return nil, fmt.Errorf("unsupported variant %s", variant)
}

type dlProver struct {
	engine *zkp.DiscreteLog
}

func (p *dlProver) Variant() zkp.Variant { return zkp.VariantDiscreteLog }

func (p *dlProver) PublicKey(password []byte) (zkp.Commitment, error) {
	return p.engine.DerivePublicKey(password)
}

func (p *dlProver) Commit() (Round, error) {
	k, r, err := p.engine.Commit()
	if err != nil {
		return nil, err
	}
	return &dlRound{engine: p.engine, k: k, r: r}, nil
}

type dlRound struct {
	engine *zkp.DiscreteLog
	k      *big.Int
	r      zkp.DLPair
}

func (r *dlRound) Commitment() zkp.Commitment { return r.r }

func (r *dlRound) Answer(password []byte, c zkp.Scalar) (zkp.Scalar, error) {
	ch, ok := c.(zkp.DLScalar)
	if !ok || ch.Value == nil {
		return nil, fmt.Errorf("%w: expected discrete-log challenge, got %T", zkp.ErrProtocolMismatch, c)
	}
	s, err := r.engine.Solve(password, r.k, ch.Value)
	if err != nil {
		return nil, err
	}
	return zkp.DLScalar{Value: s}, nil
}

type curveProver struct {
	engine *zkp.Curve
}

func (p *curveProver) Variant() zkp.Variant { return zkp.VariantEllipticCurve }

func (p *curveProver) PublicKey(password []byte) (zkp.Commitment, error) {
	return p.engine.DerivePublicKey(password)
}

func (p *curveProver) Commit() (Round, error) {
	k, r, err := p.engine.Commit()
	if err != nil {
		return nil, err
	}
	return &curveRound{engine: p.engine, k: k, r: r}, nil
}

type curveRound struct {
	engine *zkp.Curve
	k      *secp256k1.ModNScalar
	r      zkp.CurvePair
}

func (r *curveRound) Commitment() zkp.Commitment { return r.r }

func (r *curveRound) Answer(password []byte, c zkp.Scalar) (zkp.Scalar, error) {
	ch, ok := c.(zkp.CurveScalar)
	if !ok {
		return nil, fmt.Errorf("%w: expected k256 challenge, got %T", zkp.ErrProtocolMismatch, c)
	}
	s, err := r.engine.Solve(password, r.k, &ch.Value)
	if err != nil {
		return nil, err
	}
	return zkp.CurveScalar{Value: *s}, nil
}
