package grpc

import (
	"context"
	"strings"

	"github.com/platonfloria/chaum-pedersen-auth/internal/common"
	pb "github.com/platonfloria/chaum-pedersen-auth/internal/proto"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const identityKey ctxKey = "identity"

// protectedMethods require a valid access token in the metadata.
var protectedMethods = map[string]struct{}{
	pb.Auth_WhoAmI_FullMethodName: {},
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if _, ok := protectedMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, err := s.auth.Identify(ctx, accessToken)
	if err != nil {
		return nil, toStatus(err)
	}

	return handler(context.WithValue(ctx, identityKey, id), req)
}

func identityFromContext(ctx context.Context) (*services.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*services.Identity)
	return id, ok && id != nil
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if s.requestMetrics == nil {
		return handler(ctx, req)
	}

	endpoint := methodName(info.FullMethod)
	timer := s.requestMetrics.RequestTimer(endpoint)
	defer timer.ObserveDuration()

	resp, err := handler(ctx, req)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.requestMetrics.RequestCounter(endpoint, outcome, causeOf(err)).Inc()

	return resp, err
}

// methodName strips the service prefix from a full gRPC method name.
func methodName(fullMethod string) string {
	return fullMethod[strings.LastIndex(fullMethod, "/")+1:]
}
