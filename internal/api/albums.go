package api

import (
	"context"

	"github.com/quaverlabs/quaver/internal/models"
)

// Albums retrieves all catalog albums.
func (c *Client) Albums(ctx context.Context) ([]models.Album, error) {
	data, err := c.get(ctx, "/albums")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Album](data, "albums")
}

// Genres retrieves all catalog genres.
func (c *Client) Genres(ctx context.Context) ([]models.Genre, error) {
	data, err := c.get(ctx, "/genres")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Genre](data, "genres")
}

// Moods retrieves all catalog moods.
func (c *Client) Moods(ctx context.Context) ([]models.Mood, error) {
	data, err := c.get(ctx, "/moods")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Mood](data, "moods")
}
