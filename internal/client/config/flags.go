package config

import (
	"flag"
	"os"
	"time"

	"github.com/platonfloria/chaum-pedersen-auth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// os.Args is filtered through flagx.FilterArgs so unrelated arguments do
// not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-v", "-k", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.Variant, "v", cfg.Variant, "protocol variant (discrete_log or k256)")
	fs.StringVar(&cfg.KDF, "k", cfg.KDF, "password hardening (empty or argon2id)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
