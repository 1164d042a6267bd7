package api

import (
	"context"
	"fmt"

	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/shared"
)

// Songs retrieves the full song catalog.
//
// Falls back to the legacy /songsList route when the newer /songs route is
// missing on the configured backend.
func (c *Client) Songs(ctx context.Context) ([]models.Song, error) {
	data, err := c.get(ctx, "/songs")
	if err != nil {
		if !IsNotFound(err) {
			return nil, err
		}
		if data, err = c.get(ctx, "/songsList"); err != nil {
			return nil, err
		}
	}

	return decodeList[models.Song](data, "songs", "songsList")
}

// Song retrieves a single song by id.
func (c *Client) Song(ctx context.Context, id models.ID) (*models.Song, error) {
	data, err := c.get(ctx, "/songs/"+id.String())
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", shared.ErrSongNotFound, id)
		}
		return nil, err
	}

	return decodeObject[models.Song](data, "song")
}

// CreateSong creates a new song record.
func (c *Client) CreateSong(ctx context.Context, song *models.Song) (*models.Song, error) {
	if err := song.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	data, err := c.post(ctx, "/songs", song)
	if err != nil {
		return nil, err
	}

	return decodeObject[models.Song](data, "song")
}

// UpdateSong applies a partial update to a song.
//
// PATCH is attempted first; older backends only accept PUT for song updates,
// so a 404/405-shaped failure retries with a full replace.
func (c *Client) UpdateSong(ctx context.Context, id models.ID, fields map[string]any) (*models.Song, error) {
	data, err := c.patch(ctx, "/songs/"+id.String(), fields)
	if err != nil {
		var se *StatusError
		if !asStatus(err, &se) || (se.Code != 404 && se.Code != 405) {
			return nil, err
		}
		if data, err = c.put(ctx, "/songs/"+id.String(), fields); err != nil {
			return nil, err
		}
	}

	return decodeObject[models.Song](data, "song")
}

// DeleteSong removes a song by id.
func (c *Client) DeleteSong(ctx context.Context, id models.ID) error {
	if _, err := c.delete(ctx, "/songs/"+id.String()); err != nil {
		if IsNotFound(err) {
			return fmt.Errorf("%w: %s", shared.ErrSongNotFound, id)
		}
		return err
	}
	return nil
}
