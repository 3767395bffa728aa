// Package grpc exposes the authentication service over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/platonfloria/chaum-pedersen-auth/internal/logging"
	pb "github.com/platonfloria/chaum-pedersen-auth/internal/proto"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/metrics"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/services"
	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Authenticator is the service surface the handlers need.
type Authenticator interface {
	Register(ctx context.Context, name string, y zkp.Commitment) error
	CreateChallenge(ctx context.Context, name string, r zkp.Commitment) (string, zkp.Scalar, error)
	VerifyAnswer(ctx context.Context, authID string, s zkp.Scalar) (*services.Verification, error)
	Identify(ctx context.Context, accessToken string) (*services.Identity, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	address        string
	auth           Authenticator
	group          *zkp.DiscreteLog
	logger         logging.Logger
	requestMetrics *metrics.RequestMetrics
	authMetrics    *metrics.AuthMetrics
}

// Option customises a GRPCServer.
type Option func(*GRPCServer)

// WithRequestMetrics counts and times every unary call.
func WithRequestMetrics(m *metrics.RequestMetrics) Option {
	return func(s *GRPCServer) { s.requestMetrics = m }
}

// WithAuthMetrics counts proof checks by variant and outcome.
func WithAuthMetrics(m *metrics.AuthMetrics) Option {
	return func(s *GRPCServer) { s.authMetrics = m }
}

// NewGRPCServer builds the server. group is used to range-check
// discrete-log elements received on the wire.
func NewGRPCServer(address string, l logging.Logger, auth Authenticator, group *zkp.DiscreteLog, opts ...Option) *GRPCServer {
	s := &GRPCServer{
		address: address,
		auth:    auth,
		group:   group,
		logger:  l.With("module", "grpc_server"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.metricsInterceptor, s.accessTokenInterceptor))

	pb.RegisterAuthServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.Auth_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	reflection.Register(srv)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	<-stopped
	return nil
}
