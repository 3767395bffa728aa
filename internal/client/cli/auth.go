package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/platonfloria/chaum-pedersen-auth/internal/client/client"
	"github.com/platonfloria/chaum-pedersen-auth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a user name and password and stores the derived
// public pair on the server.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.authService.Register(ctx, userName, password); err != nil {
		a.report("Registration failed", err)
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login proves knowledge of the password. On success the session becomes
// current and the access token is attached to later calls.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	sess, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		a.report("Login unsuccessful", err)
		return err
	}

	a.userName = userName
	a.sessionID = sess.SessionID
	fmt.Fprintf(a.out, "Login successful, session %s\n", sess.SessionID)
	return nil
}

// WhoAmI asks the server which user the current token belongs to.
func (a *App) WhoAmI(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	user, sessionID, err := a.authService.WhoAmI(ctx)
	if err != nil {
		a.report("Request failed", err)
		return err
	}
	fmt.Fprintf(a.out, "%s (session %s)\n", user, sessionID)
	return nil
}

func (a *App) report(prefix string, err error) {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintf(a.out, "%s: server unavailable\n", prefix)
	case errors.Is(err, client.ErrAlreadyExists):
		fmt.Fprintf(a.out, "%s: user already exists\n", prefix)
	case errors.Is(err, client.ErrNotFound):
		fmt.Fprintf(a.out, "%s: unknown user\n", prefix)
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintf(a.out, "%s: proof rejected\n", prefix)
	default:
		fmt.Fprintf(a.out, "%s: %v\n", prefix, err)
	}
	if a.logger != nil {
		a.logger.Debug(context.Background(), prefix, "error", err)
	}
}
