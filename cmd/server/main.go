package main

import (
	"context"
	"log"
	"os"

	"github.com/platonfloria/chaum-pedersen-auth/internal/buildinfo"
	"github.com/platonfloria/chaum-pedersen-auth/internal/logging"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.NewJSONLogger(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
