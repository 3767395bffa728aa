package config

import (
	"flag"
	"os"
	"time"

	"github.com/platonfloria/chaum-pedersen-auth/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address, empty disables the endpoint
//	-d string   PostgreSQL DSN, empty keeps credentials in memory
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-e int      pending challenge lifetime, seconds (0 disables expiry)
//	-l string   log level
//
// Group parameters are not exposed as flags; they come from the JSON file
// or the environment.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-s", "-t", "-e", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port to expose metrics on")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	sessionTTL := fs.Int("e", int(config.SessionTTL.Seconds()), "session_ttl (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.SessionTTL = time.Duration(*sessionTTL) * time.Second
}
