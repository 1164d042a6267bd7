package api

import (
	"context"

	"github.com/quaverlabs/quaver/internal/models"
)

// Artists retrieves all catalog artists.
func (c *Client) Artists(ctx context.Context) ([]models.Artist, error) {
	data, err := c.get(ctx, "/artists")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Artist](data, "artists")
}

// CreateArtist creates a new artist record.
func (c *Client) CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	data, err := c.post(ctx, "/artists", artist)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.Artist](data, "artist")
}
