package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/shared"
)

// Credentials are the login/signup request payload.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// decodeAuthResponse handles both auth response generations: a
// {user, accessToken} pair, or a bare user document with the token embedded.
func decodeAuthResponse(data []byte) (*models.User, error) {
	payload, err := unwrap(data)
	if err != nil {
		return nil, err
	}

	var wrapped struct {
		User        *models.User `json:"user"`
		AccessToken string       `json:"accessToken"`
	}
	if err := json.Unmarshal(payload, &wrapped); err == nil && wrapped.User != nil {
		if wrapped.AccessToken != "" {
			wrapped.User.AccessToken = wrapped.AccessToken
		}
		return wrapped.User, nil
	}

	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUnexpectedShape, err)
	}
	if user.ID.IsZero() && user.Username == "" {
		return nil, fmt.Errorf("%w: no user in auth response", shared.ErrUnexpectedShape)
	}
	return &user, nil
}

// Login authenticates with username and password and returns the user with
// its access token populated.
func (c *Client) Login(ctx context.Context, creds Credentials) (*models.User, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", shared.ErrInvalidInput)
	}

	data, err := c.post(ctx, "/auth/login", creds)
	if err != nil {
		var se *StatusError
		if asStatus(err, &se) && (se.Code == 401 || se.Code == 403) {
			return nil, fmt.Errorf("%w: check username and password", shared.ErrAuthFailed)
		}
		return nil, err
	}

	return decodeAuthResponse(data)
}

// Signup registers a new account and returns the created user.
func (c *Client) Signup(ctx context.Context, creds Credentials) (*models.User, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", shared.ErrInvalidInput)
	}

	data, err := c.post(ctx, "/auth/signup", creds)
	if err != nil {
		return nil, err
	}

	return decodeAuthResponse(data)
}

// Me fetches the account behind the currently installed access token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	if c.tokens == nil {
		return nil, shared.ErrNotAuthenticated
	}

	data, err := c.get(ctx, "/auth/me")
	if err != nil {
		var se *StatusError
		if asStatus(err, &se) && se.Code == 401 {
			return nil, shared.ErrTokenExpired
		}
		return nil, err
	}

	return decodeAuthResponse(data)
}
