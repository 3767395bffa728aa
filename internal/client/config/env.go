package config

import (
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

// parseEnv overlays settings found in the environment, keyed by the
// upper-case JSON names (SERVER_ENDPOINT_ADDR, VARIANT, KDF_SALT, ...).
func parseEnv(cfg *Config) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		panic(err)
	}

	fields := map[string]*string{
		"server_endpoint_addr": &cfg.ServerEndpointAddr,
		"variant":              &cfg.Variant,
		"kdf":                  &cfg.KDF,
		"kdf_salt":             &cfg.KDFSalt,
		"log_level":            &cfg.LogLevel,
		"p":                    &cfg.P,
		"q":                    &cfg.Q,
		"g":                    &cfg.G,
		"h":                    &cfg.H,
		"h_offset":             &cfg.HOffset,
	}
	for key, dst := range fields {
		if v := k.String(key); v != "" {
			*dst = v
		}
	}

	if k.Exists("request_timeout") {
		d, err := time.ParseDuration(k.String("request_timeout"))
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
