package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/platonfloria/chaum-pedersen-auth/internal/common"
	pb "github.com/platonfloria/chaum-pedersen-auth/internal/proto"
	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient prepares a lazy connection to endpointURL. No network I/O
// happens until the first call.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewAuthClient(conn)
	return c, nil
}

func (s *GRPCClient) Register(ctx context.Context, user string, y zkp.Commitment) error {
	var err error
	switch v := y.(type) {
	case zkp.DLPair:
		_, err = s.client.Register(ctx, &pb.RegisterRequest{User: user, Y1: zkp.EncodeInt(v.First), Y2: zkp.EncodeInt(v.Second)})
	case zkp.CurvePair:
		_, err = s.client.K256Register(ctx, &pb.K256RegisterRequest{User: user, Y1: toPoint(v.First), Y2: toPoint(v.Second)})
	default:
		return fmt.Errorf("%w: unsupported commitment %T", ErrInvalidArgument, y)
	}
	return s.mapError(err)
}

func (s *GRPCClient) CreateChallenge(ctx context.Context, user string, r zkp.Commitment) (string, zkp.Scalar, error) {
	var (
		resp *pb.AuthenticationChallengeResponse
		err  error
	)
	switch v := r.(type) {
	case zkp.DLPair:
		resp, err = s.client.CreateAuthenticationChallenge(ctx, &pb.AuthenticationChallengeRequest{
			User: user, R1: zkp.EncodeInt(v.First), R2: zkp.EncodeInt(v.Second),
		})
	case zkp.CurvePair:
		resp, err = s.client.K256CreateAuthenticationChallenge(ctx, &pb.K256AuthenticationChallengeRequest{
			User: user, R1: toPoint(v.First), R2: toPoint(v.Second),
		})
	default:
		return "", nil, fmt.Errorf("%w: unsupported commitment %T", ErrInvalidArgument, r)
	}
	if err != nil {
		return "", nil, s.mapError(err)
	}

	c, err := zkp.DecodeScalar(r.Variant(), resp.GetC())
	if err != nil {
		return "", nil, fmt.Errorf("decoding challenge: %w", err)
	}
	return resp.GetAuthId(), c, nil
}

func (s *GRPCClient) VerifyAnswer(ctx context.Context, authID string, answer zkp.Scalar) (*Session, error) {
	encoded, err := zkp.EncodeScalar(answer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	req := &pb.AuthenticationAnswerRequest{AuthId: authID, S: encoded}

	var resp *pb.AuthenticationAnswerResponse
	switch answer.Variant() {
	case zkp.VariantEllipticCurve:
		resp, err = s.client.K256VerifyAuthentication(ctx, req)
	default:
		resp, err = s.client.VerifyAuthentication(ctx, req)
	}
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setToken(resp.GetAccessToken())
	return &Session{SessionID: resp.GetSessionId(), AccessToken: resp.GetAccessToken()}, nil
}

func (s *GRPCClient) WhoAmI(ctx context.Context) (string, string, error) {
	resp, err := s.client.WhoAmI(ctx, &pb.WhoAmIRequest{})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.GetUser(), resp.GetSessionId(), nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func toPoint(p *secp256k1.PublicKey) *pb.Point {
	x, odd := zkp.EncodePoint(p)
	return &pb.Point{X: x, IsYOdd: odd}
}
