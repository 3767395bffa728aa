package zkp

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

// sampleModN returns a uniform element of [0, n) by rejection sampling.
func sampleModN(rand io.Reader, n *saferith.Modulus) (*saferith.Nat, error) {
	out := new(saferith.Nat)
	buf := make([]byte, (n.BitLen()+7)/8)
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, fmt.Errorf("sample: %w", err)
		}
		// Drop the bits above the modulus size so that the acceptance
		// rate stays above one half.
		if extra := len(buf)*8 - n.BitLen(); extra > 0 {
			buf[0] &= 0xff >> extra
		}
		out.SetBytes(buf)
		if _, _, lt := out.CmpMod(n); lt == 1 {
			return out, nil
		}
	}
	return nil, ErrMaxIterations
}

// sampleScalar returns a uniform secp256k1 scalar. With nonZero set the
// zero scalar is rejected as well.
func sampleScalar(rand io.Reader, nonZero bool) (*secp256k1.ModNScalar, error) {
	var buf [32]byte
	out := new(secp256k1.ModNScalar)
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return nil, fmt.Errorf("sample: %w", err)
		}
		overflow := out.SetBytes(&buf)
		if overflow != 0 || (nonZero && out.IsZero()) {
			continue
		}
		wipe(buf[:])
		return out, nil
	}
	return nil, ErrMaxIterations
}

func sampleUint64(rand io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return 0, fmt.Errorf("sample: %w", err)
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}
