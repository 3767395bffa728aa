package config

import (
	"encoding/json"
	"os"

	"github.com/platonfloria/chaum-pedersen-auth/internal/flagx"
	"github.com/platonfloria/chaum-pedersen-auth/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations use
// timex.Duration so both "10m" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC            string          `json:"endpoint_addr_grpc"`
	MetricsAddr                 *string         `json:"metrics_addr"`
	DatabaseDSN                 string          `json:"database_dsn"`
	SecretKey                   string          `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration  `json:"access_token_validity_duration"`
	SessionTTL                  *timex.Duration `json:"session_ttl"`
	LogLevel                    string          `json:"log_level"`
	P                           string          `json:"p"`
	Q                           string          `json:"q"`
	G                           string          `json:"g"`
	H                           string          `json:"h"`
	HOffset                     string          `json:"h_offset"`
}

// parseJson loads the file named by -c/-config, if any, into config.
// Only keys present in the file replace the current values. An unreadable
// file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIfNotEmpty(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIfNotEmpty(&config.DatabaseDSN, c.DatabaseDSN)
	setIfNotEmpty(&config.SecretKey, c.SecretKey)
	setIfNotEmpty(&config.LogLevel, c.LogLevel)
	setIfNotEmpty(&config.P, c.P)
	setIfNotEmpty(&config.Q, c.Q)
	setIfNotEmpty(&config.G, c.G)
	setIfNotEmpty(&config.H, c.H)
	setIfNotEmpty(&config.HOffset, c.HOffset)

	// An explicit empty string turns the metrics endpoint off.
	if c.MetricsAddr != nil {
		config.MetricsAddr = *c.MetricsAddr
	}
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.SessionTTL != nil {
		config.SessionTTL = c.SessionTTL.Duration
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
