package api

import (
	"context"
	"fmt"

	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/shared"
)

// Playlists retrieves all playlists visible to the authenticated user.
func (c *Client) Playlists(ctx context.Context) ([]models.Playlist, error) {
	data, err := c.get(ctx, "/playlists")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Playlist](data, "playlists")
}

// CreatePlaylist creates a new playlist.
func (c *Client) CreatePlaylist(ctx context.Context, playlist *models.Playlist) (*models.Playlist, error) {
	if playlist.Name == "" {
		return nil, fmt.Errorf("%w: playlist name is required", shared.ErrInvalidInput)
	}

	data, err := c.post(ctx, "/playlists", playlist)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.Playlist](data, "playlist")
}

// ReplacePlaylist fully replaces a playlist by id.
func (c *Client) ReplacePlaylist(ctx context.Context, playlist *models.Playlist) (*models.Playlist, error) {
	if playlist.ID.IsZero() {
		return nil, fmt.Errorf("%w: playlist id is required", shared.ErrInvalidInput)
	}

	data, err := c.put(ctx, "/playlists/"+playlist.ID.String(), playlist)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlist.ID)
		}
		return nil, err
	}
	return decodeObject[models.Playlist](data, "playlist")
}
