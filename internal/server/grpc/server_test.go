package grpc

import (
	"bytes"
	"context"
	"math/big"
	"net"
	"testing"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/google/uuid"
	"github.com/platonfloria/chaum-pedersen-auth/internal/common"
	"github.com/platonfloria/chaum-pedersen-auth/internal/logging"
	pb "github.com/platonfloria/chaum-pedersen-auth/internal/proto"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/auth"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/metrics"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/repositories/users"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/services"
	"github.com/platonfloria/chaum-pedersen-auth/internal/server/sessions"
	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type harness struct {
	client         pb.AuthClient
	conn           *grpc.ClientConn
	dl             *zkp.DiscreteLog
	curve          *zkp.Curve
	requestMetrics metrics.RequestMetrics
	authMetrics    metrics.AuthMetrics
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	params, err := zkp.ParseGroupParameters("363967321904221003", "7696033", "165950041202038920", "96429580695728554")
	require.NoError(t, err)
	dl, err := zkp.NewDiscreteLog(params)
	require.NoError(t, err)
	curve, err := zkp.NewCurve(big.NewInt(107211496160805127))
	require.NoError(t, err)

	svc := services.NewAuthService(users.NewMemoryRepository(), sessions.NewMemoryStore(time.Minute),
		auth.NewJWTIssuer([]byte("secret"), time.Hour), logging.Nop{}, dl, curve)

	reg := prometheus.NewRegistry()
	h := &harness{
		dl:             dl,
		curve:          curve,
		requestMetrics: metrics.NewRequestMetrics(reg, "test"),
		authMetrics:    metrics.NewAuthMetrics(reg, "test"),
	}

	lis := bufconn.Listen(1 << 20)
	srv := NewGRPCServer("bufnet", logging.Nop{}, svc, dl, WithRequestMetrics(&h.requestMetrics), WithAuthMetrics(&h.authMetrics))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})

	h.conn = conn
	h.client = pb.NewAuthClient(conn)
	return h
}

func (h *harness) registerDL(t *testing.T, user, password string) {
	t.Helper()
	y, err := h.dl.DerivePublicKey([]byte(password))
	require.NoError(t, err)
	_, err = h.client.Register(context.Background(), &pb.RegisterRequest{
		User: user, Y1: zkp.EncodeInt(y.First), Y2: zkp.EncodeInt(y.Second),
	})
	require.NoError(t, err)
}

func (h *harness) loginDL(t *testing.T, user, password string) (*pb.AuthenticationAnswerResponse, error) {
	t.Helper()
	ctx := context.Background()

	k, r, err := h.dl.Commit()
	require.NoError(t, err)
	ch, err := h.client.CreateAuthenticationChallenge(ctx, &pb.AuthenticationChallengeRequest{
		User: user, R1: zkp.EncodeInt(r.First), R2: zkp.EncodeInt(r.Second),
	})
	require.NoError(t, err)

	s, err := h.dl.Solve([]byte(password), k, zkp.DecodeInt(ch.GetC()))
	require.NoError(t, err)
	return h.client.VerifyAuthentication(ctx, &pb.AuthenticationAnswerRequest{AuthId: ch.GetAuthId(), S: zkp.EncodeInt(s)})
}

func point(p *secp256k1.PublicKey) *pb.Point {
	x, odd := zkp.EncodePoint(p)
	return &pb.Point{X: x, IsYOdd: odd}
}

func (h *harness) registerCurve(t *testing.T, user, password string) {
	t.Helper()
	y, err := h.curve.DerivePublicKey([]byte(password))
	require.NoError(t, err)
	_, err = h.client.K256Register(context.Background(), &pb.K256RegisterRequest{
		User: user, Y1: point(y.First), Y2: point(y.Second),
	})
	require.NoError(t, err)
}

func (h *harness) loginCurve(t *testing.T, user, password string) (*pb.AuthenticationAnswerResponse, error) {
	t.Helper()
	ctx := context.Background()

	k, r, err := h.curve.Commit()
	require.NoError(t, err)
	ch, err := h.client.K256CreateAuthenticationChallenge(ctx, &pb.K256AuthenticationChallengeRequest{
		User: user, R1: point(r.First), R2: point(r.Second),
	})
	require.NoError(t, err)
	require.Len(t, ch.GetC(), zkp.ScalarSize)

	c, err := zkp.DecodeCurveScalar(ch.GetC())
	require.NoError(t, err)
	s, err := h.curve.Solve([]byte(password), k, c)
	require.NoError(t, err)
	return h.client.K256VerifyAuthentication(ctx, &pb.AuthenticationAnswerRequest{AuthId: ch.GetAuthId(), S: zkp.EncodeCurveScalar(s)})
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)
}

func TestGRPC_DiscreteLogLoginAndWhoAmI(t *testing.T) {
	h := newHarness(t)
	h.registerDL(t, "alice", "password")

	resp, err := h.loginDL(t, "alice", "password")
	require.NoError(t, err)
	_, err = uuid.Parse(resp.GetSessionId())
	require.NoError(t, err)

	who, err := h.client.WhoAmI(withToken(resp.GetAccessToken()), &pb.WhoAmIRequest{})
	require.NoError(t, err)
	assert.Equal(t, "alice", who.GetUser())
	assert.Equal(t, resp.GetSessionId(), who.GetSessionId())

	assert.Equal(t, 1.0, testutil.ToFloat64(h.authMetrics.Proofs.WithLabelValues("discrete_log", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.requestMetrics.RequestCounts.WithLabelValues("Register", "ok", "")))
}

func TestGRPC_CurveLogin(t *testing.T) {
	h := newHarness(t)
	h.registerCurve(t, "carol", "hunter2")

	resp, err := h.loginCurve(t, "carol", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetAccessToken())

	_, err = h.loginCurve(t, "carol", "hunter3")
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.authMetrics.Proofs.WithLabelValues("k256", "rejected")))
}

func TestGRPC_RegisterErrors(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.registerDL(t, "alice", "password")

	_, err := h.client.Register(ctx, &pb.RegisterRequest{User: "alice", Y1: []byte{2}, Y2: []byte{3}})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.requestMetrics.RequestCounts.WithLabelValues("Register", "error", "already_exists")))

	_, err = h.client.Register(ctx, &pb.RegisterRequest{User: "bob", Y1: []byte{0}, Y2: []byte{3}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.client.Register(ctx, &pb.RegisterRequest{User: "", Y1: []byte{2}, Y2: []byte{3}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.client.K256Register(ctx, &pb.K256RegisterRequest{User: "bob", Y1: &pb.Point{X: make([]byte, 32)}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	notOnCurve := append(make([]byte, 31), 5)
	_, err = h.client.K256Register(ctx, &pb.K256RegisterRequest{
		User: "bob", Y1: &pb.Point{X: notOnCurve}, Y2: &pb.Point{X: notOnCurve},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGRPC_ChallengeUnknownUser(t *testing.T) {
	h := newHarness(t)

	_, err := h.client.CreateAuthenticationChallenge(context.Background(), &pb.AuthenticationChallengeRequest{
		User: "ghost", R1: []byte{2}, R2: []byte{3},
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGRPC_VerifyErrors(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.client.VerifyAuthentication(ctx, &pb.AuthenticationAnswerRequest{AuthId: "not-a-uuid", S: []byte{1}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.client.VerifyAuthentication(ctx, &pb.AuthenticationAnswerRequest{AuthId: uuid.NewString(), S: []byte{1}})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = h.client.K256VerifyAuthentication(ctx, &pb.AuthenticationAnswerRequest{AuthId: uuid.NewString(), S: []byte{1}})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestGRPC_OversizedResponseRejected(t *testing.T) {
	h := newHarness(t)
	h.registerDL(t, "alice", "password")
	ctx := context.Background()

	k, r, err := h.dl.Commit()
	require.NoError(t, err)
	ch, err := h.client.CreateAuthenticationChallenge(ctx, &pb.AuthenticationChallengeRequest{
		User: "alice", R1: zkp.EncodeInt(r.First), R2: zkp.EncodeInt(r.Second),
	})
	require.NoError(t, err)

	_, err = h.client.VerifyAuthentication(ctx, &pb.AuthenticationAnswerRequest{
		AuthId: ch.GetAuthId(), S: bytes.Repeat([]byte{0xff}, 4096),
	})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	// The rejection happens before the challenge is consumed.
	s, err := h.dl.Solve([]byte("password"), k, zkp.DecodeInt(ch.GetC()))
	require.NoError(t, err)
	resp, err := h.client.VerifyAuthentication(ctx, &pb.AuthenticationAnswerRequest{AuthId: ch.GetAuthId(), S: zkp.EncodeInt(s)})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetSessionId())
}

func TestGRPC_ProtocolMismatch(t *testing.T) {
	h := newHarness(t)
	h.registerDL(t, "alice", "password")

	_, err := h.loginCurve(t, "alice", "password")
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.authMetrics.Proofs.WithLabelValues("k256", "mismatch")))
}

func TestGRPC_WhoAmIRequiresToken(t *testing.T) {
	h := newHarness(t)

	_, err := h.client.WhoAmI(context.Background(), &pb.WhoAmIRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = h.client.WhoAmI(withToken("garbage"), &pb.WhoAmIRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	expired, err := auth.GenerateToken("alice", "s", []byte("secret"), -time.Minute)
	require.NoError(t, err)
	_, err = h.client.WhoAmI(withToken(expired), &pb.WhoAmIRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestGRPC_Health(t *testing.T) {
	h := newHarness(t)

	resp, err := healthpb.NewHealthClient(h.conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.Auth_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
