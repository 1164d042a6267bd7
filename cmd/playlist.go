package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/quaverlabs/quaver/internal/formatter"
	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/session"
	"github.com/quaverlabs/quaver/internal/shared"
)

// PlaylistsList prints the logged-in user's playlists.
func (r *Runner) PlaylistsList(ctx context.Context, cmd *cli.Command) error {
	user := r.currentUser()
	if user == nil {
		return r.writePlain("✗ Not logged in. Run 'quaver auth login' first\n")
	}

	if cmd.Bool("json") {
		return r.writeJSON(user.Playlists, true)
	}

	r.writePlainHeader(fmt.Sprintf("Playlists (%d)", len(user.Playlists)))
	for _, pl := range user.Playlists {
		r.writePlain("%s  %s (%d songs)\n", pl.ID, pl.Name, len(pl.SongIDs))
	}
	return nil
}

// PlaylistsCreate creates a new empty playlist.
func (r *Runner) PlaylistsCreate(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: playlist name", shared.ErrMissingArgument)
	}
	if r.playlists == nil {
		return r.sessionsNotice()
	}

	playlist, err := r.playlists.Create(ctx, name)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Created playlist %q (%s)\n", playlist.Name, playlist.ID)
}

// PlaylistsRename renames a playlist.
func (r *Runner) PlaylistsRename(ctx context.Context, cmd *cli.Command) error {
	id := models.ID(cmd.String("id"))
	name := cmd.String("name")

	if r.playlists == nil {
		return r.sessionsNotice()
	}
	if err := r.playlists.Rename(ctx, id, name); err != nil {
		return err
	}
	return r.writePlain("✓ Renamed playlist %s to %q\n", id, name)
}

// PlaylistsDelete deletes a playlist.
func (r *Runner) PlaylistsDelete(ctx context.Context, cmd *cli.Command) error {
	id := models.ID(cmd.StringArg("id"))
	if id.IsZero() {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}
	if r.playlists == nil {
		return r.sessionsNotice()
	}

	if err := r.playlists.Delete(ctx, id); err != nil {
		return err
	}
	return r.writePlain("✓ Deleted playlist %s\n", id)
}

// PlaylistsAdd adds a song to a playlist.
func (r *Runner) PlaylistsAdd(ctx context.Context, cmd *cli.Command) error {
	playlistID := models.ID(cmd.String("playlist"))
	songID := models.ID(cmd.String("song"))

	if r.playlists == nil {
		return r.sessionsNotice()
	}
	if err := r.playlists.AddSong(ctx, playlistID, songID); err != nil {
		return err
	}
	return r.writePlain("✓ Added %s to playlist %s\n", songID, playlistID)
}

// PlaylistsRemove removes a song from a playlist.
func (r *Runner) PlaylistsRemove(ctx context.Context, cmd *cli.Command) error {
	playlistID := models.ID(cmd.String("playlist"))
	songID := models.ID(cmd.String("song"))

	if r.playlists == nil {
		return r.sessionsNotice()
	}
	if err := r.playlists.RemoveSong(ctx, playlistID, songID); err != nil {
		return err
	}
	return r.writePlain("✓ Removed %s from playlist %s\n", songID, playlistID)
}

// PlaylistsPull replaces the local playlist mirror with the server's copy.
func (r *Runner) PlaylistsPull(ctx context.Context, cmd *cli.Command) error {
	if r.playlists == nil {
		return r.sessionsNotice()
	}

	pulled, err := r.playlists.Pull(ctx)
	if err != nil {
		return err
	}
	return r.writePlain("✓ Pulled %d playlists\n", len(pulled))
}

// PlaylistsPush uploads one playlist to the server's playlists endpoint.
func (r *Runner) PlaylistsPush(ctx context.Context, cmd *cli.Command) error {
	if r.playlists == nil {
		return r.sessionsNotice()
	}

	id := models.ID(cmd.String("id"))
	pushed, err := r.playlists.Push(ctx, id)
	if err != nil {
		return err
	}
	return r.writePlain("✓ Pushed %q (%s)\n", pushed.Name, pushed.ID)
}

// PlaylistsExport writes a playlist to disk in the chosen format, resolving
// song ids against the catalog.
func (r *Runner) PlaylistsExport(ctx context.Context, cmd *cli.Command) error {
	user := r.currentUser()
	if user == nil {
		return shared.ErrNotAuthenticated
	}

	id := models.ID(cmd.String("id"))
	playlist := user.FindPlaylist(id)
	if playlist == nil {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}

	songs, err := r.client.Songs(ctx)
	if err != nil {
		return err
	}

	// Resolve playlist membership against the catalog, preserving playlist order.
	index := make(map[models.ID]models.Song, len(songs))
	for _, song := range songs {
		index[song.ID] = song
	}
	resolved := make([]models.Song, 0, len(playlist.SongIDs))
	for _, songID := range playlist.SongIDs {
		if song, ok := index[songID]; ok {
			resolved = append(resolved, song)
		}
	}

	path, err := formatter.WriteExport(playlist, resolved, cmd.String("format"), cmd.String("output"))
	if err != nil {
		return fmt.Errorf("failed to export playlist: %w", err)
	}

	return r.writePlain("✓ Exported %q to %s\n", playlist.Name, path)
}

func (r *Runner) currentUser() *models.User {
	if r.store == nil {
		return nil
	}
	return r.store.Current(session.SlotUser)
}
