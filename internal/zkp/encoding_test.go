package zkp

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeInt(t *testing.T) {
	assert.Equal(t, []byte{0}, EncodeInt(big.NewInt(0)))
	assert.Equal(t, []byte{0}, EncodeInt(nil))
	assert.Equal(t, []byte{0x01, 0x00}, EncodeInt(big.NewInt(256)))
	assert.Equal(t, "256", DecodeInt([]byte{0x01, 0x00}).String())
	assert.Equal(t, "0", DecodeInt(nil).String())
}

func TestEncodePoint(t *testing.T) {
	p := mustPoint(t, vecY2, false)
	x, odd := EncodePoint(p)
	assert.Equal(t, vecY2, hex.EncodeToString(x))
	assert.False(t, odd)

	q := mustPoint(t, vecY1, true)
	_, odd = EncodePoint(q)
	assert.True(t, odd)
}

func TestDecodePoint_Invalid(t *testing.T) {
	tests := []struct {
		name string
		x    []byte
	}{
		{"short", make([]byte, 31)},
		{"long", make([]byte, 33)},
		// x = 5 has no square root for y^2 = x^3 + 7.
		{"not on curve", append(make([]byte, 31), 5)},
		{"above field prime", bytes.Repeat([]byte{0xff}, 32)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePoint(tt.x, false)
			require.ErrorIs(t, err, ErrInvalidEncoding)
		})
	}
}

func TestDecodeCurveScalar(t *testing.T) {
	_, err := DecodeCurveScalar(make([]byte, 31))
	require.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = DecodeCurveScalar(make([]byte, 33))
	require.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = DecodeCurveScalar(bytes.Repeat([]byte{0xff}, 32))
	require.ErrorIs(t, err, ErrInvalidEncoding)

	s, err := DecodeCurveScalar(make([]byte, 32))
	require.NoError(t, err)
	assert.True(t, s.IsZero())
}

func TestEncodeDecodeScalar(t *testing.T) {
	b, err := EncodeScalar(DLScalar{Value: big.NewInt(4051888)})
	require.NoError(t, err)
	s, err := DecodeScalar(VariantDiscreteLog, b)
	require.NoError(t, err)
	assert.Equal(t, int64(4051888), s.(DLScalar).Value.Int64())

	cs := mustScalar(t, vecS)
	b, err = EncodeScalar(CurveScalar{Value: *cs})
	require.NoError(t, err)
	assert.Len(t, b, ScalarSize)

	_, err = DecodeScalar(VariantEllipticCurve, b[1:])
	require.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = DecodeScalar(Variant(9), b)
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestMarshalCommitment(t *testing.T) {
	dl := DLPair{First: big.NewInt(180020373440730202), Second: big.NewInt(138713557362284185)}
	data, err := MarshalCommitment(dl)
	require.NoError(t, err)
	got, err := UnmarshalCommitment(data)
	require.NoError(t, err)
	require.IsType(t, DLPair{}, got)
	assert.Equal(t, 0, dl.First.Cmp(got.(DLPair).First))
	assert.Equal(t, 0, dl.Second.Cmp(got.(DLPair).Second))

	curve := CurvePair{First: mustPoint(t, vecY1, true), Second: mustPoint(t, vecY2, false)}
	data, err = MarshalCommitment(curve)
	require.NoError(t, err)
	got, err = UnmarshalCommitment(data)
	require.NoError(t, err)
	require.IsType(t, CurvePair{}, got)
	assert.True(t, curve.First.IsEqual(got.(CurvePair).First))
	assert.True(t, curve.Second.IsEqual(got.(CurvePair).Second))
}

func TestMarshalCommitment_Errors(t *testing.T) {
	_, err := MarshalCommitment(DLPair{First: big.NewInt(1)})
	require.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = MarshalCommitment(CurvePair{})
	require.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = UnmarshalCommitment([]byte{0xff, 0x00})
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestFingerprint(t *testing.T) {
	a := DLPair{First: big.NewInt(5), Second: big.NewInt(7)}
	b := DLPair{First: big.NewInt(5), Second: big.NewInt(8)}

	fa := Fingerprint(a)
	assert.Len(t, fa, 16)
	assert.Equal(t, fa, Fingerprint(DLPair{First: big.NewInt(5), Second: big.NewInt(7)}))
	assert.NotEqual(t, fa, Fingerprint(b))
	assert.Empty(t, Fingerprint(DLPair{}))
}

func TestParseVariant(t *testing.T) {
	for _, v := range []Variant{VariantDiscreteLog, VariantEllipticCurve} {
		got, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	_, err := ParseVariant("rsa")
	require.Error(t, err)
}
