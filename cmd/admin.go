package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/quaverlabs/quaver/internal/api"
	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/shared"
)

// AdminLogin authenticates against the admin backend and stores the session
// in the adminuser slot.
func (r *Runner) AdminLogin(ctx context.Context, cmd *cli.Command) error {
	creds := api.Credentials{
		Username: cmd.String("username"),
		Password: cmd.String("password"),
	}

	user, err := r.admin.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, shared.ErrAuthFailed) {
			r.writePlain("✗ Login failed: check username and password\n")
		}
		return err
	}

	return r.writePlain("✓ Admin login as %s (level %s)\n", user.Username, user.Level)
}

// AdminLogout clears the admin session.
func (r *Runner) AdminLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.admin.Logout(); err != nil {
		return err
	}
	return r.writePlain("✓ Admin session cleared\n")
}

// AdminSongs lists the catalog through the admin API.
func (r *Runner) AdminSongs(ctx context.Context, cmd *cli.Command) error {
	songs, err := r.admin.Songs(ctx)
	if err != nil {
		return r.reportForbidden(err)
	}

	r.writePlainHeader(fmt.Sprintf("Songs (%d)", len(songs)))
	for _, song := range songs {
		r.printSong(song)
	}
	return nil
}

// AdminAddSong creates a song.
func (r *Runner) AdminAddSong(ctx context.Context, cmd *cli.Command) error {
	song := &models.Song{
		Title:    cmd.String("title"),
		Artist:   cmd.String("artist"),
		Album:    cmd.String("album"),
		Genre:    cmd.String("genre"),
		Mood:     cmd.String("mood"),
		Duration: cmd.Int("duration"),
		AudioURL: cmd.String("audio-url"),
		ImageURL: cmd.String("image-url"),
	}

	created, err := r.admin.AddSong(ctx, song)
	if err != nil {
		return r.reportForbidden(err)
	}

	return r.writePlain("✓ Created song %s (%s)\n", created.Title, created.ID)
}

// AdminEditSong applies a partial update built from the flags that were set.
func (r *Runner) AdminEditSong(ctx context.Context, cmd *cli.Command) error {
	id := models.ID(cmd.StringArg("id"))
	if id.IsZero() {
		return fmt.Errorf("%w: song id", shared.ErrMissingArgument)
	}

	fields := map[string]any{}
	for _, name := range []string{"title", "artist", "album", "genre", "mood"} {
		if cmd.IsSet(name) {
			fields[name] = cmd.String(name)
		}
	}
	if cmd.IsSet("duration") {
		fields["duration"] = cmd.Int("duration")
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields to update", shared.ErrMissingArgument)
	}

	updated, err := r.admin.EditSong(ctx, id, fields)
	if err != nil {
		return r.reportForbidden(err)
	}

	return r.writePlain("✓ Updated song %s\n", updated.ID)
}

// AdminDeleteSong removes a song.
func (r *Runner) AdminDeleteSong(ctx context.Context, cmd *cli.Command) error {
	id := models.ID(cmd.StringArg("id"))
	if id.IsZero() {
		return fmt.Errorf("%w: song id", shared.ErrMissingArgument)
	}

	if err := r.admin.DeleteSong(ctx, id); err != nil {
		return r.reportForbidden(err)
	}
	return r.writePlain("✓ Deleted song %s\n", id)
}

// AdminUsers lists accounts.
func (r *Runner) AdminUsers(ctx context.Context, cmd *cli.Command) error {
	users, err := r.admin.Users(ctx)
	if err != nil {
		return r.reportForbidden(err)
	}

	r.writePlainHeader(fmt.Sprintf("Users (%d)", len(users)))
	for _, user := range users {
		r.writePlain("%s  %s (level %s)\n", user.ID, user.Username, user.Level)
	}
	return nil
}

// AdminSetLevel changes an account's permission level.
func (r *Runner) AdminSetLevel(ctx context.Context, cmd *cli.Command) error {
	id := models.ID(cmd.String("id"))
	level := cmd.String("level")

	user, err := r.admin.SetUserLevel(ctx, id, level)
	if err != nil {
		return r.reportForbidden(err)
	}

	return r.writePlain("✓ %s is now level %s\n", user.Username, user.Level)
}

// AdminAddArtist creates an artist record.
func (r *Runner) AdminAddArtist(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: artist name", shared.ErrMissingArgument)
	}

	artist, err := r.admin.AddArtist(ctx, name)
	if err != nil {
		return r.reportForbidden(err)
	}
	return r.writePlain("✓ Created artist %s (%s)\n", artist.Name, artist.ID)
}

// AdminAddGenre creates a genre tag.
func (r *Runner) AdminAddGenre(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: genre name", shared.ErrMissingArgument)
	}

	genre, err := r.admin.AddGenre(ctx, name)
	if err != nil {
		return r.reportForbidden(err)
	}
	return r.writePlain("✓ Created genre %s (%s)\n", genre.Name, genre.ID)
}

// AdminDeleteGenre removes a genre tag.
func (r *Runner) AdminDeleteGenre(ctx context.Context, cmd *cli.Command) error {
	id := models.ID(cmd.StringArg("id"))
	if id.IsZero() {
		return fmt.Errorf("%w: genre id", shared.ErrMissingArgument)
	}

	if err := r.admin.DeleteGenre(ctx, id); err != nil {
		return r.reportForbidden(err)
	}
	return r.writePlain("✓ Deleted genre %s\n", id)
}

// AdminAddMood creates a mood tag.
func (r *Runner) AdminAddMood(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: mood name", shared.ErrMissingArgument)
	}

	mood, err := r.admin.AddMood(ctx, name)
	if err != nil {
		return r.reportForbidden(err)
	}
	return r.writePlain("✓ Created mood %s (%s)\n", mood.Name, mood.ID)
}

// AdminDeleteMood removes a mood tag.
func (r *Runner) AdminDeleteMood(ctx context.Context, cmd *cli.Command) error {
	id := models.ID(cmd.StringArg("id"))
	if id.IsZero() {
		return fmt.Errorf("%w: mood id", shared.ErrMissingArgument)
	}

	if err := r.admin.DeleteMood(ctx, id); err != nil {
		return r.reportForbidden(err)
	}
	return r.writePlain("✓ Deleted mood %s\n", id)
}

// reportForbidden prints a friendly line for permission failures before
// returning the error unchanged.
func (r *Runner) reportForbidden(err error) error {
	switch {
	case errors.Is(err, shared.ErrNotAuthenticated):
		r.writePlain("✗ Not logged in. Run 'quaver admin login' first\n")
	case errors.Is(err, shared.ErrForbidden):
		r.writePlain("✗ Your level does not permit this operation\n")
	}
	return err
}
