package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/shared"
)

// ToggleFavorite sends a toggle intent for songID and returns the
// server-computed authoritative favorites array.
//
// The server is the final arbiter under this variant: whatever array comes
// back replaces any optimistic guess the caller made.
func (c *Client) ToggleFavorite(ctx context.Context, userID, songID models.ID) ([]models.ID, error) {
	body := map[string]any{"userId": userID, "songId": songID}

	data, err := c.post(ctx, "/favorites/toggle", body)
	if err != nil {
		return nil, err
	}

	payload, err := unwrap(data, "favorites")
	if err != nil {
		return nil, err
	}

	var favorites []models.ID
	if err := json.Unmarshal(payload, &favorites); err == nil {
		return favorites, nil
	}

	// Some deployments echo the whole user document instead of the array.
	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUnexpectedShape, err)
	}
	return user.Favorites, nil
}
