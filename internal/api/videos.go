package api

import (
	"context"
	"fmt"

	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/shared"
)

// Videos retrieves all music videos.
func (c *Client) Videos(ctx context.Context) ([]models.Video, error) {
	data, err := c.get(ctx, "/videos")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Video](data, "videos")
}

// Video retrieves a single video by id.
func (c *Client) Video(ctx context.Context, id models.ID) (*models.Video, error) {
	data, err := c.get(ctx, "/videos/"+id.String())
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", shared.ErrVideoNotFound, id)
		}
		return nil, err
	}
	return decodeObject[models.Video](data, "video")
}
