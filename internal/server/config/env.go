package config

import (
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

// parseEnv overlays settings found in the environment. Variable names are
// the upper-case JSON keys (P, Q, G, H, H_OFFSET, DATABASE_DSN, SESSION_TTL
// and so on). Durations use time.ParseDuration syntax. A malformed duration
// panics.
func parseEnv(config *Config) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		panic(err)
	}

	fields := map[string]*string{
		"endpoint_addr_grpc": &config.EndpointAddrGRPC,
		"database_dsn":       &config.DatabaseDSN,
		"secret_key":         &config.SecretKey,
		"log_level":          &config.LogLevel,
		"p":                  &config.P,
		"q":                  &config.Q,
		"g":                  &config.G,
		"h":                  &config.H,
		"h_offset":           &config.HOffset,
	}
	for key, dst := range fields {
		if v := k.String(key); v != "" {
			*dst = v
		}
	}

	if k.Exists("metrics_addr") {
		config.MetricsAddr = k.String("metrics_addr")
	}

	durations := map[string]*time.Duration{
		"access_token_validity_duration": &config.AccessTokenValidityDuration,
		"session_ttl":                    &config.SessionTTL,
	}
	for key, dst := range durations {
		if !k.Exists(key) {
			continue
		}
		d, err := time.ParseDuration(k.String(key))
		if err != nil {
			panic(err)
		}
		*dst = d
	}
}
