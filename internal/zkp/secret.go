package zkp

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/dgryski/go-sip13"
	"golang.org/x/crypto/argon2"
)

// SecretDeriver maps a password to the secret exponent x.
//
// The same deriver must be used at registration and at every login: the
// server only ever sees g^x and h^x.
type SecretDeriver interface {
	Derive(password []byte) (*big.Int, error)
}

// SipHashDeriver is the default deriver. It hashes the password with
// SipHash-1-3 under an all-zero key, appending a 0xff terminator, and uses
// the 64-bit digest as x. Every commitment registered so far depends on
// this exact mapping.
//
// The digest is fast to compute, so anyone holding y1 or y2 can test
// password guesses offline. Argon2Deriver is the hardened alternative.
type SipHashDeriver struct{}

func (SipHashDeriver) Derive(password []byte) (*big.Int, error) {
	msg := make([]byte, len(password)+1)
	copy(msg, password)
	msg[len(password)] = 0xff
	defer wipe(msg)

	return new(big.Int).SetUint64(sip13.Sum64(0, 0, msg)), nil
}

// Argon2 defaults follow the RFC 9106 second recommended option.
const (
	DefaultArgon2Time    uint32 = 3
	DefaultArgon2Memory  uint32 = 64 * 1024
	DefaultArgon2Threads uint8  = 4
	argon2KeyLen         uint32 = 32
)

// Argon2Deriver derives x with Argon2id over a deployment-wide salt.
type Argon2Deriver struct {
	Salt    []byte
	Time    uint32
	Memory  uint32
	Threads uint8
}

// NewArgon2Deriver returns an Argon2id deriver with default cost parameters.
func NewArgon2Deriver(salt []byte) *Argon2Deriver {
	return &Argon2Deriver{
		Salt:    salt,
		Time:    DefaultArgon2Time,
		Memory:  DefaultArgon2Memory,
		Threads: DefaultArgon2Threads,
	}
}

func (d *Argon2Deriver) Derive(password []byte) (*big.Int, error) {
	if len(d.Salt) == 0 {
		return nil, errors.New("argon2id: empty salt")
	}
	if d.Time == 0 || d.Memory == 0 || d.Threads == 0 {
		return nil, fmt.Errorf("argon2id: invalid cost parameters t=%d m=%d p=%d", d.Time, d.Memory, d.Threads)
	}

	key := argon2.IDKey(password, d.Salt, d.Time, d.Memory, d.Threads, argon2KeyLen)
	defer wipe(key)

	return new(big.Int).SetBytes(key), nil
}

// NewSecretDeriver builds a deriver by name: "siphash" (default) or
// "argon2id".
func NewSecretDeriver(name string, salt []byte) (SecretDeriver, error) {
	switch name {
	case "", "siphash":
		return SipHashDeriver{}, nil
	case "argon2id":
		if len(salt) == 0 {
			return nil, errors.New("argon2id requires a salt")
		}
		return NewArgon2Deriver(salt), nil
	}
	return nil, fmt.Errorf("unknown key derivation %q", name)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
