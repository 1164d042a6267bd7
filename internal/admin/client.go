// package admin implements the back-office client and its permission gate.
package admin

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/quaverlabs/quaver/internal/api"
	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/session"
	"github.com/quaverlabs/quaver/internal/shared"
)

// Client wraps a catalog API client pointed at the admin base URL, gating
// mutations on the adminuser session's level before they are issued.
//
// The gate mirrors what the back-office UI shows and hides; it carries no
// enforcement value beyond that.
type Client struct {
	api    *api.Client
	store  *session.Store
	logger *log.Logger
}

// New creates an admin client. The api client must be constructed with the
// admin base URL, which is separate from the main app's.
func New(apiClient *api.Client, store *session.Store, logger *log.Logger) *Client {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Client{api: apiClient, store: store, logger: logger}
}

// Login authenticates against the admin backend and stores the session in the
// adminuser slot.
func (c *Client) Login(ctx context.Context, creds api.Credentials) (*models.User, error) {
	user, err := c.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	c.api.SetToken(user.AccessToken)
	if err := c.store.Put(session.SlotAdmin, user); err != nil {
		return nil, fmt.Errorf("failed to store admin session: %w", err)
	}

	c.logger.Info("admin login", "user", user.Username, "level", user.Level)
	return user, nil
}

// Logout clears the adminuser session.
func (c *Client) Logout() error {
	c.api.SetToken("")
	return c.store.Clear(session.SlotAdmin)
}

// Level returns the current admin session's level, or "" when logged out.
func (c *Client) Level() string {
	user := c.store.Current(session.SlotAdmin)
	if user == nil {
		return ""
	}
	return user.Level
}

// requireSession resolves the admin session and applies a permission predicate.
func (c *Client) requireSession(allowed func(string) bool) error {
	user := c.store.Current(session.SlotAdmin)
	if user == nil {
		return shared.ErrNotAuthenticated
	}
	if !allowed(user.Level) {
		return fmt.Errorf("%w: level %s", shared.ErrForbidden, user.Level)
	}
	return nil
}

// Songs lists the catalog through the admin API.
func (c *Client) Songs(ctx context.Context) ([]models.Song, error) {
	return c.api.Songs(ctx)
}

// AddSong creates a song; admin only.
func (c *Client) AddSong(ctx context.Context, song *models.Song) (*models.Song, error) {
	if err := c.requireSession(CanAddSongs); err != nil {
		return nil, err
	}
	return c.api.CreateSong(ctx, song)
}

// EditSong applies a partial update to a song; admin and moderator.
func (c *Client) EditSong(ctx context.Context, id models.ID, fields map[string]any) (*models.Song, error) {
	if err := c.requireSession(CanEditSongs); err != nil {
		return nil, err
	}
	return c.api.UpdateSong(ctx, id, fields)
}

// DeleteSong removes a song; admin only.
func (c *Client) DeleteSong(ctx context.Context, id models.ID) error {
	if err := c.requireSession(CanDeleteSongs); err != nil {
		return err
	}
	return c.api.DeleteSong(ctx, id)
}

// Users lists accounts; admin only.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	if err := c.requireSession(CanManageUsers); err != nil {
		return nil, err
	}
	return c.api.Users(ctx)
}

// SetUserLevel changes an account's level; admin only.
func (c *Client) SetUserLevel(ctx context.Context, id models.ID, level string) (*models.User, error) {
	if err := c.requireSession(CanManageUsers); err != nil {
		return nil, err
	}
	if level != LevelAdmin && level != LevelModerator && level != LevelUser {
		return nil, fmt.Errorf("%w: unknown level %q", shared.ErrInvalidArgument, level)
	}
	return c.api.UpdateUser(ctx, id, map[string]any{"level": level})
}

// AddArtist creates an artist record; admin only.
func (c *Client) AddArtist(ctx context.Context, name string) (*models.Artist, error) {
	if err := c.requireSession(CanAddSongs); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("%w: artist name is required", shared.ErrInvalidInput)
	}
	return c.api.CreateArtist(ctx, &models.Artist{Name: name})
}

// AddGenre creates a genre tag; admin only.
func (c *Client) AddGenre(ctx context.Context, name string) (*models.Genre, error) {
	if err := c.requireSession(CanAddSongs); err != nil {
		return nil, err
	}
	return c.api.CreateGenre(ctx, &models.Genre{Name: name})
}

// DeleteGenre removes a genre tag; admin only.
func (c *Client) DeleteGenre(ctx context.Context, id models.ID) error {
	if err := c.requireSession(CanDeleteSongs); err != nil {
		return err
	}
	return c.api.DeleteGenre(ctx, id)
}

// AddMood creates a mood tag; admin only.
func (c *Client) AddMood(ctx context.Context, name string) (*models.Mood, error) {
	if err := c.requireSession(CanAddSongs); err != nil {
		return nil, err
	}
	return c.api.CreateMood(ctx, &models.Mood{Name: name})
}

// DeleteMood removes a mood tag; admin only.
func (c *Client) DeleteMood(ctx context.Context, id models.ID) error {
	if err := c.requireSession(CanDeleteSongs); err != nil {
		return err
	}
	return c.api.DeleteMood(ctx, id)
}
