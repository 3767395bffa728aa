package grpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/platonfloria/chaum-pedersen-auth/internal/common"
	pb "github.com/platonfloria/chaum-pedersen-auth/internal/proto"
	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	y, err := s.group.DecodePair(req.GetY1(), req.GetY2())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := s.auth.Register(ctx, req.GetUser(), y); err != nil {
		return nil, toStatus(err)
	}
	return &pb.RegisterResponse{}, nil
}

func (s *GRPCServer) K256Register(ctx context.Context, req *pb.K256RegisterRequest) (*pb.RegisterResponse, error) {
	y, err := decodePoints(req.GetY1(), req.GetY2())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := s.auth.Register(ctx, req.GetUser(), y); err != nil {
		return nil, toStatus(err)
	}
	return &pb.RegisterResponse{}, nil
}

func (s *GRPCServer) CreateAuthenticationChallenge(ctx context.Context, req *pb.AuthenticationChallengeRequest) (*pb.AuthenticationChallengeResponse, error) {
	r, err := s.group.DecodePair(req.GetR1(), req.GetR2())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return s.challenge(ctx, req.GetUser(), r)
}

func (s *GRPCServer) K256CreateAuthenticationChallenge(ctx context.Context, req *pb.K256AuthenticationChallengeRequest) (*pb.AuthenticationChallengeResponse, error) {
	r, err := decodePoints(req.GetR1(), req.GetR2())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return s.challenge(ctx, req.GetUser(), r)
}

func (s *GRPCServer) VerifyAuthentication(ctx context.Context, req *pb.AuthenticationAnswerRequest) (*pb.AuthenticationAnswerResponse, error) {
	return s.verify(ctx, zkp.VariantDiscreteLog, req)
}

func (s *GRPCServer) K256VerifyAuthentication(ctx context.Context, req *pb.AuthenticationAnswerRequest) (*pb.AuthenticationAnswerResponse, error) {
	return s.verify(ctx, zkp.VariantEllipticCurve, req)
}

func (s *GRPCServer) WhoAmI(ctx context.Context, req *pb.WhoAmIRequest) (*pb.WhoAmIResponse, error) {
	id, ok := identityFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}
	return &pb.WhoAmIResponse{User: id.UserName, SessionId: id.SessionID}, nil
}

func (s *GRPCServer) challenge(ctx context.Context, user string, r zkp.Commitment) (*pb.AuthenticationChallengeResponse, error) {
	authID, c, err := s.auth.CreateChallenge(ctx, user, r)
	if err != nil {
		return nil, toStatus(err)
	}

	encoded, err := zkp.EncodeScalar(c)
	if err != nil {
		s.logger.Error(ctx, "encoding challenge failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.AuthenticationChallengeResponse{AuthId: authID, C: encoded}, nil
}

func (s *GRPCServer) verify(ctx context.Context, variant zkp.Variant, req *pb.AuthenticationAnswerRequest) (*pb.AuthenticationAnswerResponse, error) {
	answer, err := s.decodeAnswer(variant, req.GetS())
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "malformed response scalar")
	}

	v, err := s.auth.VerifyAnswer(ctx, req.GetAuthId(), answer)
	s.observeProof(variant, err)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.AuthenticationAnswerResponse{SessionId: v.SessionID, AccessToken: v.AccessToken}, nil
}

func (s *GRPCServer) decodeAnswer(variant zkp.Variant, b []byte) (zkp.Scalar, error) {
	if variant == zkp.VariantDiscreteLog {
		return s.group.DecodeResponse(b)
	}
	return zkp.DecodeScalar(variant, b)
}

func decodePoints(first, second *pb.Point) (zkp.CurvePair, error) {
	if first == nil || second == nil {
		return zkp.CurvePair{}, fmt.Errorf("%w: missing point", common.ErrorInvalidArgument)
	}
	p1, err := zkp.DecodePoint(first.GetX(), first.GetIsYOdd())
	if err != nil {
		return zkp.CurvePair{}, err
	}
	p2, err := zkp.DecodePoint(second.GetX(), second.GetIsYOdd())
	if err != nil {
		return zkp.CurvePair{}, err
	}
	return zkp.CurvePair{First: p1, Second: p2}, nil
}

func (s *GRPCServer) observeProof(variant zkp.Variant, err error) {
	if s.authMetrics == nil {
		return
	}
	outcome := "accepted"
	switch {
	case err == nil:
	case errors.Is(err, common.ErrorUnauthenticated):
		outcome = "rejected"
	case errors.Is(err, common.ErrorProtocolMismatch):
		outcome = "mismatch"
	default:
		return
	}
	s.authMetrics.ObserveProof(variant.String(), outcome)
}
