package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/quaverlabs/quaver/internal/catalog"
	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/session"
	"github.com/quaverlabs/quaver/internal/shared"
)

// SongsList fetches the catalog, applies the selected filter, and prints the
// result sorted by view count.
func (r *Runner) SongsList(ctx context.Context, cmd *cli.Command) error {
	songs, err := r.fetchSongs(ctx, cmd.Bool("cached"))
	if err != nil {
		return err
	}

	filter := filterFromFlags(cmd)
	filtered := catalog.Apply(songs, filter, r.currentFavorites())

	if cmd.Bool("json") {
		return r.writeJSON(filtered, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Songs (%d)", len(filtered)))
	for _, song := range filtered {
		r.printSong(song)
	}
	return nil
}

// SongsGet shows a single song by id.
func (r *Runner) SongsGet(ctx context.Context, cmd *cli.Command) error {
	id := models.ID(cmd.StringArg("id"))
	if id.IsZero() {
		return fmt.Errorf("%w: song id", shared.ErrMissingArgument)
	}

	song, err := r.client.Song(ctx, id)
	if err != nil {
		return err
	}

	return r.writeJSON(song, true)
}

// SongsSync fetches the catalog and stores it in the local cache.
func (r *Runner) SongsSync(ctx context.Context, cmd *cli.Command) error {
	if r.repo == nil {
		return fmt.Errorf("%w: local cache requires a database, run 'quaver setup'", shared.ErrServiceUnavailable)
	}

	songs, err := r.client.Songs(ctx)
	if err != nil {
		return err
	}

	r.logger.Info("caching catalog", "songs", len(songs))
	if err := r.repo.UpsertAll(songs); err != nil {
		return fmt.Errorf("failed to cache songs: %w", err)
	}

	return r.writePlain("✓ Cached %d songs\n", len(songs))
}

// ArtistsList prints all artists.
func (r *Runner) ArtistsList(ctx context.Context, cmd *cli.Command) error {
	artists, err := r.client.Artists(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(artists, true)
	}

	r.writePlainHeader(fmt.Sprintf("Artists (%d)", len(artists)))
	for _, artist := range artists {
		r.writePlain("%s  %s\n", artist.ID, artist.Name)
	}
	return nil
}

// AlbumsList prints all albums.
func (r *Runner) AlbumsList(ctx context.Context, cmd *cli.Command) error {
	albums, err := r.client.Albums(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(albums, true)
	}

	r.writePlainHeader(fmt.Sprintf("Albums (%d)", len(albums)))
	for _, album := range albums {
		r.writePlain("%s  %s (%d songs)\n", album.ID, album.Title, len(album.SongIDs))
	}
	return nil
}

// GenresList prints all genre tags.
func (r *Runner) GenresList(ctx context.Context, cmd *cli.Command) error {
	genres, err := r.client.Genres(ctx)
	if err != nil {
		return err
	}

	for _, genre := range genres {
		r.writePlain("%s  %s\n", genre.ID, genre.Name)
	}
	return nil
}

// MoodsList prints all mood tags.
func (r *Runner) MoodsList(ctx context.Context, cmd *cli.Command) error {
	moods, err := r.client.Moods(ctx)
	if err != nil {
		return err
	}

	for _, mood := range moods {
		r.writePlain("%s  %s\n", mood.ID, mood.Name)
	}
	return nil
}

// VideosList prints all music videos.
func (r *Runner) VideosList(ctx context.Context, cmd *cli.Command) error {
	videos, err := r.client.Videos(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(videos, true)
	}

	r.writePlainHeader(fmt.Sprintf("Videos (%d)", len(videos)))
	for _, video := range videos {
		r.writePlain("%s  %s — %s\n", video.ID, video.Title, video.Artist)
	}
	return nil
}

// VideosGet shows a single video by id.
func (r *Runner) VideosGet(ctx context.Context, cmd *cli.Command) error {
	id := models.ID(cmd.StringArg("id"))
	if id.IsZero() {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}

	video, err := r.client.Video(ctx, id)
	if err != nil {
		return err
	}

	return r.writeJSON(video, true)
}

// fetchSongs reads the catalog from the API, or from the local cache when
// cached is set.
func (r *Runner) fetchSongs(ctx context.Context, cached bool) ([]models.Song, error) {
	if cached {
		if r.repo == nil {
			return nil, fmt.Errorf("%w: local cache requires a database, run 'quaver setup'", shared.ErrServiceUnavailable)
		}
		return r.repo.List()
	}
	return r.client.Songs(ctx)
}

// currentFavorites returns the logged-in user's favorites, or nil when logged
// out.
func (r *Runner) currentFavorites() []models.ID {
	if r.store == nil {
		return nil
	}
	if user := r.store.Current(session.SlotUser); user != nil {
		return user.Favorites
	}
	return nil
}

// filterFromFlags maps the list flags onto a catalog filter. Favorites wins
// over search, which wins over the tag filters.
func filterFromFlags(cmd *cli.Command) catalog.Filter {
	switch {
	case cmd.Bool("favorites"):
		return catalog.Filter{Kind: catalog.Favorites}
	case cmd.String("search") != "":
		return catalog.Filter{Kind: catalog.Search, Value: cmd.String("search")}
	case cmd.String("genre") != "":
		return catalog.Filter{Kind: catalog.Genre, Value: cmd.String("genre")}
	case cmd.String("mood") != "":
		return catalog.Filter{Kind: catalog.Mood, Value: cmd.String("mood")}
	case cmd.String("artist") != "":
		return catalog.Filter{Kind: catalog.Artist, Value: cmd.String("artist")}
	default:
		return catalog.Filter{Kind: catalog.All}
	}
}

func (r *Runner) printSong(song models.Song) {
	line := fmt.Sprintf("%s  %s — %s", song.ID, song.Title, song.Artist)
	if song.Duration > 0 {
		line += fmt.Sprintf(" [%s]", shared.FormatDuration(song.Duration))
	}
	if song.Views > 0 {
		line += fmt.Sprintf(" (%d views)", song.Views)
	}
	r.writePlain("%s\n", line)
}
