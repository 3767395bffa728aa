// Package config loads runtime configuration for the authentication CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables named after the upper-case JSON keys.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-v string   protocol variant: discrete_log or k256
//	-k string   password hardening: empty for siphash, or argon2id
//	-t int      per-request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "variant": "k256",
//	  "kdf": "argon2id",
//	  "kdf_salt": "deployment-salt",
//	  "request_timeout": "5s",
//	  "p": "...", "q": "...", "g": "...", "h": "...",
//	  "h_offset": "..."
//	}
//
// Group parameters and the KDF salt must match the server's; they are
// deliberately not exposed as flags.
package config
