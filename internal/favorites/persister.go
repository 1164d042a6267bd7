package favorites

import (
	"context"

	"github.com/quaverlabs/quaver/internal/api"
	"github.com/quaverlabs/quaver/internal/models"
)

// ReplacePersister persists favorites by writing the client-computed array
// over the user record's favorites field.
//
// The backend acknowledges the replace without returning a canonical array,
// so Persist returns nil and the optimistic value stands.
type ReplacePersister struct {
	client *api.Client
}

// NewReplacePersister creates a full-replace persister over the given client.
func NewReplacePersister(client *api.Client) *ReplacePersister {
	return &ReplacePersister{client: client}
}

func (p *ReplacePersister) Persist(ctx context.Context, user *models.User, _ models.ID, next []models.ID) ([]models.ID, error) {
	if _, err := p.client.UpdateUser(ctx, user.ID, map[string]any{"favorites": next}); err != nil {
		return nil, err
	}
	return nil, nil
}

// TogglePersister persists favorites by sending only the toggle intent; the
// server computes and returns the authoritative resulting array.
type TogglePersister struct {
	client *api.Client
}

// NewTogglePersister creates a toggle-endpoint persister over the given client.
func NewTogglePersister(client *api.Client) *TogglePersister {
	return &TogglePersister{client: client}
}

func (p *TogglePersister) Persist(ctx context.Context, user *models.User, songID models.ID, _ []models.ID) ([]models.ID, error) {
	favorites, err := p.client.ToggleFavorite(ctx, user.ID, songID)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []models.ID{}
	}
	return favorites, nil
}

var (
	_ Persister = (*ReplacePersister)(nil)
	_ Persister = (*TogglePersister)(nil)
)
