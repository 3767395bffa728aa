package config

import (
	"encoding/json"
	"os"

	"github.com/platonfloria/chaum-pedersen-auth/internal/flagx"
	"github.com/platonfloria/chaum-pedersen-auth/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	Variant            string         `json:"variant"`
	KDF                string         `json:"kdf"`
	KDFSalt            string         `json:"kdf_salt"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	LogLevel           string         `json:"log_level"`
	P                  string         `json:"p"`
	Q                  string         `json:"q"`
	G                  string         `json:"g"`
	H                  string         `json:"h"`
	HOffset            string         `json:"h_offset"`
}

// parseJson overlays cfg with the keys present in the file named by -c or
// -config. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	for dst, v := range map[*string]string{
		&cfg.ServerEndpointAddr: jc.ServerEndpointAddr,
		&cfg.Variant:            jc.Variant,
		&cfg.KDF:                jc.KDF,
		&cfg.KDFSalt:            jc.KDFSalt,
		&cfg.LogLevel:           jc.LogLevel,
		&cfg.P:                  jc.P,
		&cfg.Q:                  jc.Q,
		&cfg.G:                  jc.G,
		&cfg.H:                  jc.H,
		&cfg.HOffset:            jc.HOffset,
	} {
		if v != "" {
			*dst = v
		}
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
