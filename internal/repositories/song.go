package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/quaverlabs/quaver/internal/models"
)

// SongRepository caches catalog songs in SQLite.
type SongRepository struct {
	db *sql.DB
}

// NewSongRepository creates a new [SongRepository] with the given database connection
func NewSongRepository(db *sql.DB) *SongRepository {
	return &SongRepository{db: db}
}

// Upsert inserts or refreshes one cached song.
func (r *SongRepository) Upsert(song models.Song) error {
	if song.ID.IsZero() {
		return fmt.Errorf("song id is required")
	}

	var exists bool
	if err := r.db.QueryRow("SELECT EXISTS(SELECT 1 FROM songs WHERE id = ?)", song.ID.String()).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check song: %w", err)
	}

	if exists {
		query := `
			UPDATE songs
			SET title = ?, artist = ?, album = ?, genre = ?, mood = ?, duration = ?, views = ?, audio_url = ?, image_url = ?, cached_at = ?
			WHERE id = ?
		`
		_, err := r.db.Exec(query, song.Title, song.Artist, song.Album, song.Genre, song.Mood,
			song.Duration, song.Views, song.AudioURL, song.ImageURL, time.Now(), song.ID.String())
		if err != nil {
			return fmt.Errorf("failed to update cached song: %w", err)
		}
		return nil
	}

	sequence, err := NextSequence(r.db, "songs")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	query := `
		INSERT INTO songs (id, sequence, title, artist, album, genre, mood, duration, views, audio_url, image_url, cached_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query, song.ID.String(), sequence, song.Title, song.Artist, song.Album, song.Genre,
		song.Mood, song.Duration, song.Views, song.AudioURL, song.ImageURL, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert cached song: %w", err)
	}

	return nil
}

// UpsertAll refreshes the cache with a full catalog fetch.
func (r *SongRepository) UpsertAll(songs []models.Song) error {
	for _, song := range songs {
		if err := r.Upsert(song); err != nil {
			return err
		}
	}
	return nil
}

// List returns all cached songs in insertion order.
func (r *SongRepository) List() ([]models.Song, error) {
	query := `
		SELECT id, title, artist, album, genre, mood, duration, views, audio_url, image_url
		FROM songs
		ORDER BY sequence ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cached songs: %w", err)
	}
	defer rows.Close()

	var songs []models.Song
	for rows.Next() {
		var (
			id   string
			song models.Song
		)
		err := rows.Scan(&id, &song.Title, &song.Artist, &song.Album, &song.Genre, &song.Mood,
			&song.Duration, &song.Views, &song.AudioURL, &song.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cached song: %w", err)
		}
		song.ID = models.ID(id)
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return songs, nil
}

// Count returns the number of cached songs.
func (r *SongRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM songs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cached songs: %w", err)
	}
	return count, nil
}

// Clear drops all cached songs.
func (r *SongRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM songs"); err != nil {
		return fmt.Errorf("failed to clear song cache: %w", err)
	}
	return nil
}
