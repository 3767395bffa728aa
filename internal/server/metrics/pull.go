package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/platonfloria/chaum-pedersen-auth/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PullService serves /metrics for Prometheus to scrape.
type PullService struct {
	server *http.Server
	logger logging.Logger
}

func NewPullService(addr string, gatherer prometheus.Gatherer, logger logging.Logger) *PullService {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &PullService{
		server: &http.Server{
			Addr:           addr,
			Handler:        mux,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			MaxHeaderBytes: 1 << 20,
		},
		logger: logger.With("pkg", "metrics"),
	}
}

// Handler exposes the HTTP handler, mainly for tests.
func (s *PullService) Handler() http.Handler {
	return s.server.Handler
}

// Run listens until ctx is cancelled, then shuts the server down.
func (s *PullService) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve is Run on an existing listener.
func (s *PullService) Serve(ctx context.Context, lis net.Listener) error {
	s.logger.Info(ctx, "serving metrics", "addr", lis.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		s.logger.Error(ctx, "metrics server failed", "error", err)
		return err
	}
}
