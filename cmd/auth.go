package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/quaverlabs/quaver/internal/api"
	"github.com/quaverlabs/quaver/internal/session"
	"github.com/quaverlabs/quaver/internal/shared"
)

// AuthLogin authenticates with the catalog backend and stores the session in
// the user slot.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	creds := api.Credentials{
		Username: cmd.String("username"),
		Password: cmd.String("password"),
	}

	r.logger.Info("logging in", "username", creds.Username)

	user, err := r.client.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, shared.ErrAuthFailed) {
			r.writePlain("✗ Login failed: check username and password\n")
		}
		return err
	}

	r.client.SetToken(user.AccessToken)
	if r.store != nil {
		if err := r.store.Put(session.SlotUser, user); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}
	}

	return r.writePlain("✓ Logged in as %s\n", user.Username)
}

// AuthSignup registers a new account and stores the resulting session.
func (r *Runner) AuthSignup(ctx context.Context, cmd *cli.Command) error {
	creds := api.Credentials{
		Username: cmd.String("username"),
		Email:    cmd.String("email"),
		Password: cmd.String("password"),
	}

	user, err := r.client.Signup(ctx, creds)
	if err != nil {
		return err
	}

	r.client.SetToken(user.AccessToken)
	if r.store != nil {
		if err := r.store.Put(session.SlotUser, user); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}
	}

	return r.writePlain("✓ Account created for %s\n", user.Username)
}

// AuthLogout clears the stored user session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	r.client.SetToken("")
	if r.store != nil {
		if err := r.store.Clear(session.SlotUser); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
	}
	return r.writePlain("✓ Logged out\n")
}

// AuthStatus reports the stored session and its token expiry without hitting
// the network.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if r.store == nil {
		return r.writePlain("✗ Sessions unavailable (no database)\n")
	}

	user := r.store.Current(session.SlotUser)
	if user == nil {
		return r.writePlain("✗ Not logged in\n")
	}

	r.writePlain("✓ Logged in as %s\n", user.Username)
	if user.Level != "" {
		r.writePlain("Level: %s\n", user.Level)
	}
	r.writePlain("Favorites: %d\n", len(user.Favorites))

	if user.AccessToken == "" {
		return nil
	}

	expiry, err := session.TokenExpiry(user.AccessToken)
	if err != nil {
		r.writePlain("Token: no expiry claim\n")
		return nil
	}
	if time.Now().After(expiry) {
		r.writePlain("Token: ✗ expired %s\n", expiry.Format(time.RFC3339))
	} else {
		r.writePlain("Token: ✓ valid until %s\n", expiry.Format(time.RFC3339))
	}
	return nil
}

// AuthWhoami fetches the account behind the installed token from the backend.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	user, err := r.client.Me(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrTokenExpired) {
			r.writePlain("✗ Token expired, log in again\n")
		}
		return err
	}

	return r.writeJSON(user, cmd.Bool("pretty"))
}
