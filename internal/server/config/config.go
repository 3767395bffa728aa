// Package config handles configuration for the authentication server:
// defaults, an optional JSON file, environment variables and command-line
// flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
)

// Config holds runtime settings for the authentication server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - MetricsAddr: bind address for the Prometheus pull endpoint; empty disables it.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps credentials in memory.
//   - SecretKey: HMAC secret for signing access tokens (HS256).
//   - AccessTokenValidityDuration: lifetime of the token minted on a successful proof.
//   - SessionTTL: how long a pending challenge stays answerable; zero keeps it forever.
//   - LogLevel: debug, info, warn or error.
//   - P, Q, G, H: decimal discrete-log group parameters.
//   - HOffset: decimal scalar defining the second curve generator H = HOffset*G.
type Config struct {
	EndpointAddrGRPC            string
	MetricsAddr                 string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	SessionTTL                  time.Duration
	LogLevel                    string
	P                           string
	Q                           string
	G                           string
	H                           string
	HOffset                     string
}

// LoadDefaults populates Config with development defaults. Group parameters
// have no default and must be supplied.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.MetricsAddr = ":9090"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.SessionTTL = 10 * time.Minute
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// GroupParameters parses P, Q, G and H and checks their ranges.
func (c *Config) GroupParameters() (zkp.GroupParameters, error) {
	params, err := zkp.ParseGroupParameters(c.P, c.Q, c.G, c.H)
	if err != nil {
		return zkp.GroupParameters{}, err
	}
	if err := params.Validate(); err != nil {
		return zkp.GroupParameters{}, err
	}
	return params, nil
}

// CurveOffset parses HOffset, which must be in [1, n).
func (c *Config) CurveOffset() (*big.Int, error) {
	return zkp.ParseOffset(c.HOffset)
}

// Validate reports the first setting that would keep the server from
// starting.
func (c *Config) Validate() error {
	if c.EndpointAddrGRPC == "" {
		return errors.New("config: gRPC endpoint address is empty")
	}
	if c.SecretKey == "" {
		return errors.New("config: secret key is empty")
	}
	if c.AccessTokenValidityDuration <= 0 {
		return errors.New("config: access token validity must be positive")
	}
	if c.SessionTTL < 0 {
		return errors.New("config: session ttl must not be negative")
	}
	if _, err := c.GroupParameters(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.CurveOffset(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
