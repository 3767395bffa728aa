// Package server assembles the authentication server from its configuration
// and runs it until shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/platonfloria/chaum-pedersen-auth/internal/logging"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/auth"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/config"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/metrics"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/repositories/repomanager"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/repositories/users"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/services"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/sessions"
	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	gs "github.com/platonfloria/chaum-pedersen-auth/internal/server/grpc"
)

const metricsPrefix = "zkp_auth"

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	grpc     *gs.GRPCServer
	sweeper  *sessions.Sweeper
	registry *prometheus.Registry
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// NewApp validates c and builds every component. An empty DatabaseDSN keeps
// registrations in memory.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	params, err := c.GroupParameters()
	if err != nil {
		return nil, err
	}
	dl, err := zkp.NewDiscreteLog(params)
	if err != nil {
		return nil, fmt.Errorf("discrete-log engine: %w", err)
	}
	offset, err := c.CurveOffset()
	if err != nil {
		return nil, err
	}
	curve, err := zkp.NewCurve(offset)
	if err != nil {
		return nil, fmt.Errorf("curve engine: %w", err)
	}

	app := &App{config: c, logger: logger, registry: prometheus.NewRegistry()}

	userRepo, err := app.initUsers(ctx)
	if err != nil {
		return nil, err
	}

	store := sessions.NewMemoryStore(c.SessionTTL)
	issuer := auth.NewJWTIssuer([]byte(c.SecretKey), c.AccessTokenValidityDuration)
	svc := services.NewAuthService(userRepo, store, issuer, logger.With("module", "auth_service"), dl, curve)

	app.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	requestMetrics := metrics.NewRequestMetrics(app.registry, metricsPrefix)
	authMetrics := metrics.NewAuthMetrics(app.registry, metricsPrefix)

	app.grpc = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, svc, dl,
		gs.WithRequestMetrics(&requestMetrics), gs.WithAuthMetrics(&authMetrics))
	app.sweeper = sessions.NewSweeper(store, sweepInterval(c.SessionTTL), logger.With("module", "sweeper"), authMetrics.ObserveSweep)

	return app, nil
}

func (app *App) initUsers(ctx context.Context) (users.Repository, error) {
	if app.config.DatabaseDSN == "" {
		app.logger.Warn(ctx, "no database configured, registrations are kept in memory")
		return users.NewMemoryRepository(), nil
	}

	db, err := openDB(app.config.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	app.db = db
	return rm.Users(db), nil
}

// sweepInterval checks a few times per ttl, but not more often than once a
// second.
func sweepInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 0
	}
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}

// Run serves until ctx is cancelled, SIGINT/SIGTERM/SIGQUIT arrives or a
// component fails.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return app.grpc.Run(gctx) })
	g.Go(func() error { return app.sweeper.Run(gctx) })

	if app.config.MetricsAddr != "" {
		pull := metrics.NewPullService(app.config.MetricsAddr, app.registry, app.logger)
		g.Go(func() error { return pull.Run(gctx) })
	}

	err := g.Wait()

	if app.db != nil {
		if cerr := app.db.Close(); cerr != nil {
			app.logger.Error(ctx, "closing database failed", "error", cerr)
		}
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
