package zkp

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
)

// ScalarSize is the wire size of a secp256k1 scalar.
const ScalarSize = 32

// EncodeInt returns the minimal big-endian encoding of a non-negative
// integer. Zero encodes as a single zero byte.
func EncodeInt(v *big.Int) []byte {
	if v == nil || v.Sign() == 0 {
		return []byte{0}
	}
	return v.Bytes()
}

// DecodeInt parses a big-endian unsigned integer. An empty slice is zero.
func DecodeInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// EncodePoint splits a point into its x-coordinate and y parity.
func EncodePoint(p *secp256k1.PublicKey) ([]byte, bool) {
	compressed := p.SerializeCompressed()
	return compressed[1:], compressed[0] == secp256k1.PubKeyFormatCompressedOdd
}

// DecodePoint recovers a point from its x-coordinate and y parity.
func DecodePoint(x []byte, odd bool) (*secp256k1.PublicKey, error) {
	if len(x) != 32 {
		return nil, fmt.Errorf("%w: x-coordinate must be 32 bytes, got %d", ErrInvalidEncoding, len(x))
	}
	var buf [33]byte
	buf[0] = secp256k1.PubKeyFormatCompressedEven
	if odd {
		buf[0] = secp256k1.PubKeyFormatCompressedOdd
	}
	copy(buf[1:], x)

	p, err := secp256k1.ParsePubKey(buf[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return p, nil
}

// EncodeCurveScalar returns the 32-byte big-endian form of s.
func EncodeCurveScalar(s *secp256k1.ModNScalar) []byte {
	b := s.Bytes()
	return b[:]
}

// DecodeCurveScalar requires exactly 32 bytes holding a value below the
// group order.
func DecodeCurveScalar(b []byte) (*secp256k1.ModNScalar, error) {
	if len(b) != ScalarSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", ErrInvalidEncoding, ScalarSize, len(b))
	}
	var exact [ScalarSize]byte
	copy(exact[:], b)

	s := new(secp256k1.ModNScalar)
	if s.SetBytes(&exact) != 0 {
		return nil, fmt.Errorf("%w: scalar exceeds group order", ErrInvalidEncoding)
	}
	return s, nil
}

// EncodeScalar renders a challenge or response for the wire.
func EncodeScalar(s Scalar) ([]byte, error) {
	switch v := s.(type) {
	case DLScalar:
		return EncodeInt(v.Value), nil
	case CurveScalar:
		return EncodeCurveScalar(&v.Value), nil
	}
	return nil, fmt.Errorf("%w: unsupported scalar %T", ErrInvalidEncoding, s)
}

// DecodeScalar parses a challenge or response of the given variant.
func DecodeScalar(variant Variant, b []byte) (Scalar, error) {
	switch variant {
	case VariantDiscreteLog:
		return DLScalar{Value: DecodeInt(b)}, nil
	case VariantEllipticCurve:
		s, err := DecodeCurveScalar(b)
		if err != nil {
			return nil, err
		}
		return CurveScalar{Value: *s}, nil
	}
	return nil, fmt.Errorf("%w: unknown variant %s", ErrInvalidEncoding, variant)
}

type commitmentRecord struct {
	Variant Variant `cbor:"1,keyasint"`
	First   []byte  `cbor:"2,keyasint"`
	Second  []byte  `cbor:"3,keyasint"`
}

// MarshalCommitment produces the canonical storage form of a commitment.
// Curve points are kept in 33-byte compressed form.
func MarshalCommitment(c Commitment) ([]byte, error) {
	var rec commitmentRecord
	switch v := c.(type) {
	case DLPair:
		if v.First == nil || v.Second == nil {
			return nil, fmt.Errorf("%w: incomplete commitment", ErrInvalidEncoding)
		}
		rec = commitmentRecord{Variant: VariantDiscreteLog, First: EncodeInt(v.First), Second: EncodeInt(v.Second)}
	case CurvePair:
		if v.First == nil || v.Second == nil {
			return nil, fmt.Errorf("%w: incomplete commitment", ErrInvalidEncoding)
		}
		rec = commitmentRecord{Variant: VariantEllipticCurve, First: v.First.SerializeCompressed(), Second: v.Second.SerializeCompressed()}
	default:
		return nil, fmt.Errorf("%w: unsupported commitment %T", ErrInvalidEncoding, c)
	}
	return cbor.Marshal(rec)
}

// UnmarshalCommitment is the inverse of MarshalCommitment.
func UnmarshalCommitment(data []byte) (Commitment, error) {
	var rec commitmentRecord
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	switch rec.Variant {
	case VariantDiscreteLog:
		return DLPair{First: DecodeInt(rec.First), Second: DecodeInt(rec.Second)}, nil
	case VariantEllipticCurve:
		first, err := secp256k1.ParsePubKey(rec.First)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
		second, err := secp256k1.ParsePubKey(rec.Second)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
		return CurvePair{First: first, Second: second}, nil
	}
	return nil, fmt.Errorf("%w: unknown variant %d", ErrInvalidEncoding, rec.Variant)
}

// Fingerprint returns a short digest of a commitment, suitable for logs.
func Fingerprint(c Commitment) string {
	data, err := MarshalCommitment(c)
	if err != nil {
		return ""
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:8])
}
