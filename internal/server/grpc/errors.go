package grpc

import (
	"errors"

	"github.com/platonfloria/chaum-pedersen-auth/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus translates service errors into gRPC status errors.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "user already registered")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorProtocolMismatch):
		return status.Error(codes.Unauthenticated, "protocol mismatch")
	case errors.Is(err, common.ErrorUnauthenticated):
		return status.Error(codes.Unauthenticated, "proof rejected")
	case errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "token expired")
	}
	return status.Error(codes.Internal, "internal error")
}

// causeOf labels an error for metrics.
func causeOf(err error) string {
	switch status.Code(err) {
	case codes.OK:
		return ""
	case codes.AlreadyExists:
		return "already_exists"
	case codes.NotFound:
		return "not_found"
	case codes.InvalidArgument:
		return "invalid_argument"
	case codes.Unauthenticated:
		return "unauthenticated"
	}
	return "internal"
}
