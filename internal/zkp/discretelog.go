package zkp

import (
	"fmt"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
)

// GroupParameters describe a subgroup of prime order Q in Z*_P with two
// generators G and H.
type GroupParameters struct {
	P, Q, G, H *big.Int
}

// ParseGroupParameters reads the four parameters from decimal strings.
func ParseGroupParameters(p, q, g, h string) (GroupParameters, error) {
	var params GroupParameters
	fields := []struct {
		name string
		in   string
		out  **big.Int
	}{
		{"p", p, &params.P},
		{"q", q, &params.Q},
		{"g", g, &params.G},
		{"h", h, &params.H},
	}
	for _, f := range fields {
		if f.in == "" {
			return GroupParameters{}, fmt.Errorf("%w: %s is not set", ErrInvalidParameters, f.name)
		}
		v, ok := new(big.Int).SetString(f.in, 10)
		if !ok {
			return GroupParameters{}, fmt.Errorf("%w: %s is not a decimal integer", ErrInvalidParameters, f.name)
		}
		*f.out = v
	}
	return params, nil
}

// Validate checks that p > 2, q is in (1, p) and both generators are in
// (1, p).
func (gp GroupParameters) Validate() error {
	if gp.P == nil || gp.Q == nil || gp.G == nil || gp.H == nil {
		return fmt.Errorf("%w: missing value", ErrInvalidParameters)
	}
	if gp.P.Cmp(big.NewInt(2)) <= 0 {
		return fmt.Errorf("%w: p must be greater than 2", ErrInvalidParameters)
	}
	if gp.Q.Cmp(big.NewInt(1)) <= 0 || gp.Q.Cmp(gp.P) >= 0 {
		return fmt.Errorf("%w: q must be in (1, p)", ErrInvalidParameters)
	}
	one := big.NewInt(1)
	if gp.G.Cmp(one) <= 0 || gp.G.Cmp(gp.P) >= 0 {
		return fmt.Errorf("%w: g must be in (1, p)", ErrInvalidParameters)
	}
	if gp.H.Cmp(one) <= 0 || gp.H.Cmp(gp.P) >= 0 {
		return fmt.Errorf("%w: h must be in (1, p)", ErrInvalidParameters)
	}
	return nil
}

// modGroup is Z*_p under multiplication.
type modGroup struct {
	p *saferith.Modulus
}

func (m modGroup) scale(base, k *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Exp(base, k, m.p)
}

func (m modGroup) combine(a, b *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModMul(a, b, m.p)
}

func (m modGroup) equal(a, b *saferith.Nat) bool {
	return a.Eq(b) == 1
}

// DiscreteLog is the Chaum-Pedersen instance over Z*_p.
type DiscreteLog struct {
	params  GroupParameters
	grp     modGroup
	q       *saferith.Modulus
	g, h    *saferith.Nat
	deriver SecretDeriver
	rand    io.Reader

	// An honest response is below 2^64 + q: k has 64 bits and Solve adds
	// at most q.
	responseBound    *big.Int
	responseBoundLen int
}

var _ Verifier = (*DiscreteLog)(nil)

// NewDiscreteLog validates params and builds the engine.
func NewDiscreteLog(params GroupParameters, opts ...Option) (*DiscreteLog, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	p := saferith.ModulusFromNat(natFromBig(params.P))
	bound := new(big.Int).Lsh(big.NewInt(1), 64)
	bound.Add(bound, params.Q)
	return &DiscreteLog{
		params:  params,
		grp:     modGroup{p: p},
		q:       saferith.ModulusFromNat(natFromBig(params.Q)),
		g:       natFromBig(params.G),
		h:       natFromBig(params.H),
		deriver: o.deriver,
		rand:    o.rand,

		responseBound:    bound,
		responseBoundLen: (bound.BitLen() + 7) / 8,
	}, nil
}

func (d *DiscreteLog) Variant() Variant { return VariantDiscreteLog }

// Parameters returns a copy of the group parameters.
func (d *DiscreteLog) Parameters() GroupParameters {
	return GroupParameters{
		P: new(big.Int).Set(d.params.P),
		Q: new(big.Int).Set(d.params.Q),
		G: new(big.Int).Set(d.params.G),
		H: new(big.Int).Set(d.params.H),
	}
}

// DerivePublicKey returns (g^x mod p, h^x mod p) for the password-derived x.
func (d *DiscreteLog) DerivePublicKey(password []byte) (DLPair, error) {
	x, err := d.deriver.Derive(password)
	if err != nil {
		return DLPair{}, err
	}
	return d.pow(x), nil
}

// Commit samples a fresh 64-bit nonce k and returns it with (g^k, h^k).
func (d *DiscreteLog) Commit() (*big.Int, DLPair, error) {
	v, err := sampleUint64(d.rand)
	if err != nil {
		return nil, DLPair{}, err
	}
	k := new(big.Int).SetUint64(v)
	return k, d.pow(k), nil
}

// Challenge samples c uniformly from [0, q).
func (d *DiscreteLog) Challenge() (*big.Int, error) {
	c, err := sampleModN(d.rand, d.q)
	if err != nil {
		return nil, err
	}
	return c.Big(), nil
}

// Solve computes s = k - (c*x mod q), adding q first when k < q so the
// result stays non-negative. Either way s is congruent to k - c*x mod q.
func (d *DiscreteLog) Solve(password []byte, k, c *big.Int) (*big.Int, error) {
	if k == nil || c == nil || k.Sign() < 0 || c.Sign() < 0 {
		return nil, fmt.Errorf("%w: k and c must be non-negative", ErrInvalidEncoding)
	}
	x, err := d.deriver.Derive(password)
	if err != nil {
		return nil, err
	}

	cx := new(big.Int).Mul(c, x)
	cx.Mod(cx, d.params.Q)

	s := new(big.Int)
	if k.Cmp(d.params.Q) >= 0 {
		s.Sub(k, cx)
	} else {
		s.Add(d.params.Q, k)
		s.Sub(s, cx)
	}
	return s, nil
}

// Verify accepts iff r1 = g^s * y1^c and r2 = h^s * y2^c modulo p.
func (d *DiscreteLog) Verify(y, r DLPair, c, s *big.Int) bool {
	for _, e := range []*big.Int{y.First, y.Second, r.First, r.Second} {
		if !d.inGroupRange(e) {
			return false
		}
	}
	if c == nil || s == nil || c.Sign() < 0 || s.Sign() < 0 || s.Cmp(d.responseBound) >= 0 {
		return false
	}

	size := d.params.P.BitLen()
	return verifyEquations[*saferith.Nat, *saferith.Nat](d.grp,
		d.g, d.h,
		new(saferith.Nat).SetBig(y.First, size), new(saferith.Nat).SetBig(y.Second, size),
		new(saferith.Nat).SetBig(r.First, size), new(saferith.Nat).SetBig(r.Second, size),
		natFromBig(c), natFromBig(s),
	)
}

func (d *DiscreteLog) NewChallenge() (Scalar, error) {
	c, err := d.Challenge()
	if err != nil {
		return nil, err
	}
	return DLScalar{Value: c}, nil
}

func (d *DiscreteLog) VerifyProof(y, r Commitment, c, s Scalar) (bool, error) {
	yy, ok1 := y.(DLPair)
	rr, ok2 := r.(DLPair)
	cc, ok3 := c.(DLScalar)
	ss, ok4 := s.(DLScalar)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false, ErrProtocolMismatch
	}
	return d.Verify(yy, rr, cc.Value, ss.Value), nil
}

// DecodeElement parses a big-endian group element and checks it lies in
// [1, p).
func (d *DiscreteLog) DecodeElement(b []byte) (*big.Int, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty group element", ErrInvalidEncoding)
	}
	v := new(big.Int).SetBytes(b)
	if !d.inGroupRange(v) {
		return nil, fmt.Errorf("%w: group element out of range", ErrInvalidEncoding)
	}
	return v, nil
}

// DecodeResponse parses a response s. Encodings longer than any honest
// response are rejected before they reach the exponentiation.
func (d *DiscreteLog) DecodeResponse(b []byte) (DLScalar, error) {
	if len(b) > d.responseBoundLen {
		return DLScalar{}, fmt.Errorf("%w: response is %d bytes, at most %d allowed", ErrInvalidEncoding, len(b), d.responseBoundLen)
	}
	return DLScalar{Value: DecodeInt(b)}, nil
}

// DecodePair decodes two group elements.
func (d *DiscreteLog) DecodePair(first, second []byte) (DLPair, error) {
	a, err := d.DecodeElement(first)
	if err != nil {
		return DLPair{}, err
	}
	b, err := d.DecodeElement(second)
	if err != nil {
		return DLPair{}, err
	}
	return DLPair{First: a, Second: b}, nil
}

func (d *DiscreteLog) inGroupRange(v *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(d.params.P) < 0
}

func (d *DiscreteLog) pow(e *big.Int) DLPair {
	k := natFromBig(e)
	return DLPair{
		First:  d.grp.scale(d.g, k).Big(),
		Second: d.grp.scale(d.h, k).Big(),
	}
}

func natFromBig(v *big.Int) *saferith.Nat {
	size := v.BitLen()
	if size == 0 {
		size = 1
	}
	return new(saferith.Nat).SetBig(v, size)
}
