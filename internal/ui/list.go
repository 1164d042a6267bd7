package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/shared"
)

var _ list.Item = songItem{}

// songItem wraps [models.Song] to implement [list.Item].
type songItem struct {
	song      models.Song
	favorited bool
}

// FilterValue folds the title and artist so the built-in "/" filter is
// case and diacritic insensitive.
func (i songItem) FilterValue() string {
	return shared.NormalizeKey(i.song.Title, i.song.Artist)
}

func (i songItem) Title() string {
	if i.favorited {
		return "♥ " + i.song.Title
	}
	return i.song.Title
}

func (i songItem) Description() string {
	desc := i.song.Artist
	if i.song.Album != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.song.Album)
	}
	if i.song.Duration > 0 {
		desc = fmt.Sprintf("%s • %s", desc, shared.FormatDuration(i.song.Duration))
	}
	return desc
}
