package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/platonfloria/chaum-pedersen-auth/internal/client/client"
	"github.com/platonfloria/chaum-pedersen-auth/internal/client/config"
	"github.com/platonfloria/chaum-pedersen-auth/internal/client/services"
	"github.com/platonfloria/chaum-pedersen-auth/internal/logging"
	"github.com/platonfloria/chaum-pedersen-auth/internal/zkp"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	userName    string
	sessionID   string
}

// NewApp wires the prover for the configured variant to a gRPC client.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	prover, err := newProver(c)
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	as := services.NewAuthService(apiClient, prover, logger)

	return &App{
		config:      c,
		authService: as,
		logger:      logger,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func newProver(c *config.Config) (services.Prover, error) {
	variant, err := c.ProtocolVariant()
	if err != nil {
		return nil, err
	}
	deriver, err := c.SecretDeriver()
	if err != nil {
		return nil, err
	}

	switch variant {
	case zkp.VariantEllipticCurve:
		offset, err := c.CurveOffset()
		if err != nil {
			return nil, err
		}
		curve, err := zkp.NewCurve(offset, zkp.WithSecretDeriver(deriver))
		if err != nil {
			return nil, err
		}
		return services.NewProver(variant, nil, curve)
	default:
		params, err := c.GroupParameters()
		if err != nil {
			return nil, err
		}
		dl, err := zkp.NewDiscreteLog(params, zkp.WithSecretDeriver(deriver))
		if err != nil {
			return nil, err
		}
		return services.NewProver(variant, dl, nil)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)

	fmt.Fprintf(a.out, "ZKP auth client, %s protocol (type 'help' for commands)\n", a.config.Variant)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.sessionID != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
