package api

import (
	"context"
	"fmt"

	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/shared"
)

// Users retrieves all user accounts.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	data, err := c.get(ctx, "/users")
	if err != nil {
		return nil, err
	}
	return decodeList[models.User](data, "users")
}

// UpdateUser applies a partial update to a user record and returns the updated document.
//
// This is the persistence path for the full-replace favorites variant and for
// playlist mutations: the client computes the new embedded array and PATCHes
// the whole field.
func (c *Client) UpdateUser(ctx context.Context, id models.ID, fields map[string]any) (*models.User, error) {
	data, err := c.patch(ctx, "/users/"+id.String(), fields)
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, id)
		}
		return nil, err
	}

	return decodeObject[models.User](data, "user")
}
