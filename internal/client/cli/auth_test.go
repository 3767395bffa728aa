package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/platonfloria/chaum-pedersen-auth/internal/client/client"
	"github.com/platonfloria/chaum-pedersen-auth/internal/client/config"
	"github.com/platonfloria/chaum-pedersen-auth/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubInputs(t *testing.T, username string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuth struct {
	regUser string
	regPass []byte
	regErr  error

	loginUser string
	loginPass []byte
	loginSess *client.Session
	loginErr  error
	deadline  bool

	whoUser string
	whoErr  error

	closed bool
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}
func (f *fakeAuth) Login(ctx context.Context, user string, pass []byte) (*client.Session, error) {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	_, f.deadline = ctx.Deadline()
	return f.loginSess, f.loginErr
}
func (f *fakeAuth) WhoAmI(_ context.Context) (string, string, error) {
	return f.whoUser, "sid", f.whoErr
}
func (f *fakeAuth) Close(_ context.Context) error { f.closed = true; return nil }

func newTestApp(f *fakeAuth) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		config:      &config.Config{RequestTimeout: time.Second},
		authService: f,
		logger:      logging.Nop{},
		reader:      rdr(""),
		out:         &out,
	}, &out
}

func TestRegister_Success(t *testing.T) {
	pw := []byte("s3cret")
	stubInputs(t, "alice", pw)
	f := &fakeAuth{}
	a, out := newTestApp(f)

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, "alice", f.regUser)
	assert.Equal(t, []byte("s3cret"), f.regPass)
	assert.Equal(t, make([]byte, len(pw)), pw, "password must be wiped")
	assert.Contains(t, out.String(), "Success!")
}

func TestRegister_AlreadyExists(t *testing.T) {
	stubInputs(t, "alice", []byte("pw"))
	f := &fakeAuth{regErr: client.ErrAlreadyExists}
	a, out := newTestApp(f)

	err := a.Register(context.Background())
	require.ErrorIs(t, err, client.ErrAlreadyExists)
	assert.Contains(t, out.String(), "user already exists")
}

func TestRegister_InputError(t *testing.T) {
	origST := getSimpleText
	t.Cleanup(func() { getSimpleText = origST })
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return "", io.EOF }

	f := &fakeAuth{}
	a, _ := newTestApp(f)
	require.ErrorIs(t, a.Register(context.Background()), io.EOF)
	assert.Empty(t, f.regUser)
}

func TestLogin_Success(t *testing.T) {
	stubInputs(t, "alice", []byte("pw"))
	f := &fakeAuth{loginSess: &client.Session{SessionID: "s-1", AccessToken: "t"}}
	a, out := newTestApp(f)

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(alice)", a.getStatus())
	assert.True(t, f.deadline, "login must run under the request timeout")
	assert.Contains(t, out.String(), "session s-1")
}

func TestLogin_Rejected(t *testing.T) {
	stubInputs(t, "alice", []byte("wrong"))
	f := &fakeAuth{loginErr: client.ErrUnauthorized}
	a, out := newTestApp(f)

	require.Error(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.getStatus())
	assert.Contains(t, out.String(), "proof rejected")
}

func TestLogin_Unavailable(t *testing.T) {
	stubInputs(t, "alice", []byte("pw"))
	f := &fakeAuth{loginErr: client.ErrUnavailable}
	a, out := newTestApp(f)

	require.ErrorIs(t, a.Login(context.Background()), client.ErrUnavailable)
	assert.Contains(t, out.String(), "server unavailable")
}

func TestWhoAmI(t *testing.T) {
	f := &fakeAuth{whoUser: "alice"}
	a, out := newTestApp(f)

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Equal(t, "alice (session sid)\n", out.String())

	f.whoErr = errors.New("boom")
	out.Reset()
	require.Error(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "boom")
}
