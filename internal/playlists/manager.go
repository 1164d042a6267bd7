// package playlists manages the user's playlists with the same
// optimistic-apply/rollback discipline as the favorites protocol.
package playlists

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/quaverlabs/quaver/internal/api"
	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/session"
	"github.com/quaverlabs/quaver/internal/shared"
)

// Manager mutates the playlists embedded in the user record: apply locally,
// broadcast, persist the whole array, roll back on failure.
type Manager struct {
	store  *session.Store
	client *api.Client
	logger *log.Logger
}

// NewManager creates a playlist manager.
func NewManager(store *session.Store, client *api.Client, logger *log.Logger) *Manager {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Manager{store: store, client: client, logger: logger}
}

// Create adds a new empty playlist and returns it.
func (m *Manager) Create(ctx context.Context, name string) (*models.Playlist, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: playlist name is required", shared.ErrInvalidInput)
	}

	playlist := models.Playlist{
		ID:        models.ID(shared.GenerateID()),
		Name:      name,
		SongIDs:   []models.ID{},
		CreatedAt: time.Now(),
	}

	err := m.mutate(ctx, func(user *models.User) error {
		user.Playlists = append(user.Playlists, playlist)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// Rename changes a playlist's display name.
func (m *Manager) Rename(ctx context.Context, id models.ID, name string) error {
	if name == "" {
		return fmt.Errorf("%w: playlist name is required", shared.ErrInvalidInput)
	}

	return m.mutate(ctx, func(user *models.User) error {
		pl := user.FindPlaylist(id)
		if pl == nil {
			return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
		}
		pl.Name = name
		return nil
	})
}

// Delete removes a playlist.
func (m *Manager) Delete(ctx context.Context, id models.ID) error {
	return m.mutate(ctx, func(user *models.User) error {
		for i := range user.Playlists {
			if user.Playlists[i].ID == id {
				user.Playlists = append(user.Playlists[:i], user.Playlists[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	})
}

// AddSong appends songID to the playlist unless already present.
func (m *Manager) AddSong(ctx context.Context, playlistID, songID models.ID) error {
	return m.mutate(ctx, func(user *models.User) error {
		pl := user.FindPlaylist(playlistID)
		if pl == nil {
			return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
		}
		if pl.Contains(songID) {
			return nil
		}
		pl.SongIDs = append(pl.SongIDs, songID)
		return nil
	})
}

// RemoveSong removes songID from the playlist.
func (m *Manager) RemoveSong(ctx context.Context, playlistID, songID models.ID) error {
	return m.mutate(ctx, func(user *models.User) error {
		pl := user.FindPlaylist(playlistID)
		if pl == nil {
			return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
		}
		for i, id := range pl.SongIDs {
			if id == songID {
				pl.SongIDs = append(pl.SongIDs[:i], pl.SongIDs[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

// Pull replaces the session mirror's playlists with the server's copy.
//
// Unlike the mutating operations this is server authoritative: no optimistic
// apply, nothing to roll back.
func (m *Manager) Pull(ctx context.Context) ([]models.Playlist, error) {
	user := m.store.Current(session.SlotUser)
	if user == nil {
		return nil, shared.ErrNotAuthenticated
	}

	remote, err := m.client.Playlists(ctx)
	if err != nil {
		return nil, err
	}

	user.Playlists = remote
	if err := m.store.Put(session.SlotUser, user); err != nil {
		return nil, fmt.Errorf("failed to store pulled playlists: %w", err)
	}

	m.logger.Info("playlists pulled", "count", len(remote))
	return remote, nil
}

// Push uploads one playlist to the standalone playlists endpoint. The server
// copy is replaced by id; a playlist the server has never seen is created
// instead.
func (m *Manager) Push(ctx context.Context, id models.ID) (*models.Playlist, error) {
	user := m.store.Current(session.SlotUser)
	if user == nil {
		return nil, shared.ErrNotAuthenticated
	}

	playlist := user.FindPlaylist(id)
	if playlist == nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}

	pushed, err := m.client.ReplacePlaylist(ctx, playlist)
	if errors.Is(err, shared.ErrPlaylistNotFound) {
		pushed, err = m.client.CreatePlaylist(ctx, playlist)
	}
	if err != nil {
		return nil, err
	}
	return pushed, nil
}

// mutate applies fn to the session user optimistically, persists the playlist
// array, and rolls back the session mirror when persistence fails.
func (m *Manager) mutate(ctx context.Context, fn func(*models.User) error) error {
	user := m.store.Current(session.SlotUser)
	if user == nil {
		return shared.ErrNotAuthenticated
	}

	snapshot := user.Clone()

	if err := fn(user); err != nil {
		return err
	}

	if err := m.store.Put(session.SlotUser, user); err != nil {
		return fmt.Errorf("failed to apply optimistic update: %w", err)
	}

	if _, err := m.client.UpdateUser(ctx, user.ID, map[string]any{"playlists": user.Playlists}); err != nil {
		m.logger.Warn("playlist update failed, rolling back", "error", err)
		if putErr := m.store.Put(session.SlotUser, snapshot); putErr != nil {
			m.logger.Error("rollback failed", "error", putErr)
		}
		return err
	}

	return nil
}
