package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/quaverlabs/quaver/internal/catalog"
	"github.com/quaverlabs/quaver/internal/favorites"
	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/shared"
)

// FavoritesList prints the logged-in user's favorited songs.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	favs := r.currentFavorites()
	if favs == nil {
		return r.writePlain("✗ Not logged in. Run 'quaver auth login' first\n")
	}

	songs, err := r.client.Songs(ctx)
	if err != nil {
		return err
	}

	filtered := catalog.Apply(songs, catalog.Filter{Kind: catalog.Favorites}, favs)

	if cmd.Bool("json") {
		return r.writeJSON(filtered, true)
	}

	r.writePlainHeader(fmt.Sprintf("Favorites (%d)", len(filtered)))
	for _, song := range filtered {
		r.printSong(song)
	}
	return nil
}

// FavoritesToggle flips a song in or out of favorites using the optimistic
// toggle protocol. The outcome line is written by the runner's notifier.
func (r *Runner) FavoritesToggle(ctx context.Context, cmd *cli.Command) error {
	songID := models.ID(cmd.StringArg("song-id"))
	if songID.IsZero() {
		return fmt.Errorf("%w: song id", shared.ErrMissingArgument)
	}

	if r.store == nil || r.toggler == nil {
		return r.sessionsNotice()
	}

	toggler := r.toggler
	if cmd.Bool("replace") {
		toggler = favorites.NewToggler(favorites.Opts{
			Store:    r.store,
			Persist:  favorites.NewReplacePersister(r.client),
			Notifier: &cliNotifier{runner: r},
			Logger:   r.logger,
		})
	}

	result, err := toggler.Toggle(ctx, songID)
	if err != nil {
		// The notifier already reported the rollback or login prompt; the
		// session mirror is back to its pre-toggle state.
		if errors.Is(err, shared.ErrNotAuthenticated) {
			return nil
		}
		return err
	}

	r.logger.Info("favorite toggled", "song", songID, "added", result.Added, "state", result.State)
	return nil
}
