package config

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
)

// Config holds runtime settings for the authentication CLI.
type Config struct {
	ServerEndpointAddr string
	Variant            string
	KDF                string
	KDFSalt            string
	RequestTimeout     time.Duration
	LogLevel           string
	P                  string
	Q                  string
	G                  string
	H                  string
	HOffset            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.Variant = zkp.VariantDiscreteLog.String()
	c.KDF = ""
	c.KDFSalt = ""
	c.RequestTimeout = 5 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func (c *Config) ProtocolVariant() (zkp.Variant, error) {
	return zkp.ParseVariant(c.Variant)
}

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

func (c *Config) CurveOffset() (*big.Int, error) {
	return zkp.ParseOffset(c.HOffset)
}

// SecretDeriver builds the password hardening function named by KDF.
func (c *Config) SecretDeriver() (zkp.SecretDeriver, error) {
	return zkp.NewSecretDeriver(c.KDF, []byte(c.KDFSalt))
}

// Validate checks only what the selected variant needs: discrete-log group
// parameters or the curve offset, not both.
func (c *Config) Validate() error {
	if c.ServerEndpointAddr == "" {
		return errors.New("config: server address is empty")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("config: request timeout must be positive")
	}
	v, err := c.ProtocolVariant()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.SecretDeriver(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	switch v {
	case zkp.VariantDiscreteLog:
		_, err = c.GroupParameters()
	case zkp.VariantEllipticCurve:
		_, err = c.CurveOffset()
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
