package zkp

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// curveGroup is the secp256k1 point group written additively.
type curveGroup struct{}

func (curveGroup) scale(base *secp256k1.JacobianPoint, k *secp256k1.ModNScalar) *secp256k1.JacobianPoint {
	var out secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(k, base, &out)
	return &out
}

func (curveGroup) combine(a, b *secp256k1.JacobianPoint) *secp256k1.JacobianPoint {
	var out secp256k1.JacobianPoint
	secp256k1.AddNonConst(a, b, &out)
	return &out
}

func (curveGroup) equal(a, b *secp256k1.JacobianPoint) bool {
	aInf, bInf := isInfinity(a), isInfinity(b)
	if aInf || bInf {
		return aInf == bInf
	}

	var pa, pb secp256k1.JacobianPoint
	pa.Set(a)
	pb.Set(b)
	pa.ToAffine()
	pb.ToAffine()
	pa.X.Normalize()
	pa.Y.Normalize()
	pb.X.Normalize()
	pb.Y.Normalize()
	return pa.X.Equals(&pb.X) && pa.Y.Equals(&pb.Y)
}

func isInfinity(p *secp256k1.JacobianPoint) bool {
	return (p.X.IsZero() && p.Y.IsZero()) || p.Z.IsZero()
}

// Curve is the Chaum-Pedersen instance over secp256k1 with G the standard
// base point and H = offset*G.
type Curve struct {
	g, h    secp256k1.JacobianPoint
	offset  *big.Int
	deriver SecretDeriver
	rand    io.Reader
}

var _ Verifier = (*Curve)(nil)

// NewCurve builds the engine for the given second-generator offset, which
// must be in [1, n).
func NewCurve(offset *big.Int, opts ...Option) (*Curve, error) {
	if offset == nil || offset.Sign() <= 0 || offset.Cmp(secp256k1.Params().N) >= 0 {
		return nil, fmt.Errorf("%w: h offset must be in [1, n)", ErrInvalidParameters)
	}
	o := buildOptions(opts)

	c := &Curve{offset: new(big.Int).Set(offset), deriver: o.deriver, rand: o.rand}

	var one secp256k1.ModNScalar
	one.SetInt(1)
	secp256k1.ScalarBaseMultNonConst(&one, &c.g)
	c.g.ToAffine()

	secp256k1.ScalarBaseMultNonConst(scalarFromBig(offset), &c.h)
	c.h.ToAffine()

	return c, nil
}

// ParseOffset reads the second-generator offset from a decimal string and
// requires it to be in [1, n).
func ParseOffset(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: h offset is not set", ErrInvalidParameters)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: h offset is not a decimal integer", ErrInvalidParameters)
	}
	if v.Sign() <= 0 || v.Cmp(secp256k1.Params().N) >= 0 {
		return nil, fmt.Errorf("%w: h offset must be in [1, n)", ErrInvalidParameters)
	}
	return v, nil
}

func (c *Curve) Variant() Variant { return VariantEllipticCurve }

// H returns the second generator.
func (c *Curve) H() *secp256k1.PublicKey {
	h := c.h
	return secp256k1.NewPublicKey(&h.X, &h.Y)
}

// DerivePublicKey returns (x*G, x*H) for the password-derived x.
func (c *Curve) DerivePublicKey(password []byte) (CurvePair, error) {
	x, err := c.secret(password)
	if err != nil {
		return CurvePair{}, err
	}
	defer x.Zero()
	return c.mul(x)
}

// Commit samples a non-zero nonce k and returns it with (k*G, k*H).
func (c *Curve) Commit() (*secp256k1.ModNScalar, CurvePair, error) {
	k, err := sampleScalar(c.rand, true)
	if err != nil {
		return nil, CurvePair{}, err
	}
	r, err := c.mul(k)
	if err != nil {
		return nil, CurvePair{}, err
	}
	return k, r, nil
}

// Challenge samples c uniformly from the scalar field.
func (c *Curve) Challenge() (*secp256k1.ModNScalar, error) {
	return sampleScalar(c.rand, false)
}

// Solve computes s = k - c*x in the scalar field.
func (c *Curve) Solve(password []byte, k, ch *secp256k1.ModNScalar) (*secp256k1.ModNScalar, error) {
	if k == nil || ch == nil {
		return nil, errors.New("solve: nil scalar")
	}
	x, err := c.secret(password)
	if err != nil {
		return nil, err
	}
	defer x.Zero()

	var cx secp256k1.ModNScalar
	cx.Mul2(ch, x).Negate()

	s := new(secp256k1.ModNScalar)
	s.Add2(k, &cx)
	return s, nil
}

// Verify accepts iff r1 = s*G + c*y1 and r2 = s*H + c*y2.
func (c *Curve) Verify(y, r CurvePair, ch, s *secp256k1.ModNScalar) bool {
	if y.First == nil || y.Second == nil || r.First == nil || r.Second == nil || ch == nil || s == nil {
		return false
	}

	var y1, y2, r1, r2 secp256k1.JacobianPoint
	y.First.AsJacobian(&y1)
	y.Second.AsJacobian(&y2)
	r.First.AsJacobian(&r1)
	r.Second.AsJacobian(&r2)

	return verifyEquations[*secp256k1.JacobianPoint, *secp256k1.ModNScalar](curveGroup{},
		&c.g, &c.h, &y1, &y2, &r1, &r2, ch, s)
}

func (c *Curve) NewChallenge() (Scalar, error) {
	ch, err := c.Challenge()
	if err != nil {
		return nil, err
	}
	return CurveScalar{Value: *ch}, nil
}

func (c *Curve) VerifyProof(y, r Commitment, ch, s Scalar) (bool, error) {
	yy, ok1 := y.(CurvePair)
	rr, ok2 := r.(CurvePair)
	cc, ok3 := ch.(CurveScalar)
	ss, ok4 := s.(CurveScalar)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false, ErrProtocolMismatch
	}
	return c.Verify(yy, rr, &cc.Value, &ss.Value), nil
}

func (c *Curve) secret(password []byte) (*secp256k1.ModNScalar, error) {
	x, err := c.deriver.Derive(password)
	if err != nil {
		return nil, err
	}
	return scalarFromBig(x), nil
}

func (c *Curve) mul(k *secp256k1.ModNScalar) (CurvePair, error) {
	grp := curveGroup{}
	first, err := toPublicKey(grp.scale(&c.g, k))
	if err != nil {
		return CurvePair{}, err
	}
	second, err := toPublicKey(grp.scale(&c.h, k))
	if err != nil {
		return CurvePair{}, err
	}
	return CurvePair{First: first, Second: second}, nil
}

func toPublicKey(p *secp256k1.JacobianPoint) (*secp256k1.PublicKey, error) {
	if isInfinity(p) {
		return nil, errors.New("point at infinity")
	}
	p.ToAffine()
	return secp256k1.NewPublicKey(&p.X, &p.Y), nil
}

// scalarFromBig reduces v modulo the group order.
func scalarFromBig(v *big.Int) *secp256k1.ModNScalar {
	reduced := new(big.Int).Mod(v, secp256k1.Params().N)
	s := new(secp256k1.ModNScalar)
	s.SetByteSlice(reduced.Bytes())
	return s
}
