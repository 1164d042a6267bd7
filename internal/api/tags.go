package api

import (
	"context"
	"fmt"

	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/shared"
)

// Tag management endpoints used by the admin back-office. Genres and moods
// share one shape, so both are exposed through a kind discriminator.

// CreateGenre creates a new genre tag.
func (c *Client) CreateGenre(ctx context.Context, genre *models.Genre) (*models.Genre, error) {
	if genre.Name == "" {
		return nil, fmt.Errorf("%w: genre name is required", shared.ErrInvalidInput)
	}
	data, err := c.post(ctx, "/genres", genre)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.Genre](data, "genre")
}

// DeleteGenre removes a genre tag by id.
func (c *Client) DeleteGenre(ctx context.Context, id models.ID) error {
	_, err := c.delete(ctx, "/genres/"+id.String())
	return err
}

// CreateMood creates a new mood tag.
func (c *Client) CreateMood(ctx context.Context, mood *models.Mood) (*models.Mood, error) {
	if mood.Name == "" {
		return nil, fmt.Errorf("%w: mood name is required", shared.ErrInvalidInput)
	}
	data, err := c.post(ctx, "/moods", mood)
	if err != nil {
		return nil, err
	}
	return decodeObject[models.Mood](data, "mood")
}

// DeleteMood removes a mood tag by id.
func (c *Client) DeleteMood(ctx context.Context, id models.ID) error {
	_, err := c.delete(ctx, "/moods/"+id.String())
	return err
}
