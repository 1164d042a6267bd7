// package formatter exports playlists to CSV, Markdown, and plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/shared"
)

// ExportToCSV renders a playlist and its resolved songs as CSV with columns:
// ID, Title, Artist, Album, Duration, Views
func ExportToCSV(playlist *models.Playlist, songs []models.Song) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Album", "Duration", "Views"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range songs {
		record := []string{
			song.ID.String(),
			song.Title,
			song.Artist,
			song.Album,
			strconv.Itoa(song.Duration),
			strconv.Itoa(song.Views),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders a playlist as a Markdown track listing.
func ExportToMarkdown(playlist *models.Playlist, songs []models.Song) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", playlist.Name))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(songs)))

	buf.WriteString("## Tracks\n\n")
	for i, song := range songs {
		duration := shared.FormatDuration(song.Duration)
		albumPart := ""
		if song.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", song.Album)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s]\n", i+1, song.Artist, song.Title, albumPart, duration))
	}

	return buf.Bytes(), nil
}

// ExportToText renders a playlist as plain text.
func ExportToText(playlist *models.Playlist, songs []models.Song) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", playlist.Name))
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(songs)))

	for i, song := range songs {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, song.Artist, song.Title))
	}

	return buf.Bytes(), nil
}

// WriteExport writes the playlist in the requested format and returns the
// output path. Format is one of csv, markdown, txt.
func WriteExport(playlist *models.Playlist, songs []models.Song, format, path string) (string, error) {
	var (
		data []byte
		err  error
		ext  string
	)

	switch format {
	case "csv":
		data, err = ExportToCSV(playlist, songs)
		ext = ".csv"
	case "markdown", "md":
		data, err = ExportToMarkdown(playlist, songs)
		ext = ".md"
	case "txt", "text", "":
		data, err = ExportToText(playlist, songs)
		ext = ".txt"
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return "", err
	}

	if path == "" {
		path = playlist.ID.String() + "_tracks" + ext
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
