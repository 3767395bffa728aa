package zkp

import (
	"crypto/rand"
	"io"
)

type options struct {
	deriver SecretDeriver
	rand    io.Reader
}

// Option configures a protocol engine.
type Option func(*options)

// WithSecretDeriver replaces the default SipHash password mapping.
func WithSecretDeriver(d SecretDeriver) Option {
	return func(o *options) {
		if d != nil {
			o.deriver = d
		}
	}
}

// WithRandom sets the randomness source used for nonces and challenges.
func WithRandom(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{deriver: SipHashDeriver{}, rand: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
