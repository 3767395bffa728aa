package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/platonfloria/chaum-pedersen-auth/internal/buildinfo"
	"github.com/platonfloria/chaum-pedersen-auth/internal/client/cli"
	"github.com/platonfloria/chaum-pedersen-auth/internal/client/config"
	"github.com/platonfloria/chaum-pedersen-auth/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.NewJSONLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
