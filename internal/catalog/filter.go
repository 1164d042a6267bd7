// package catalog implements the pure list/filter views over the song catalog.
package catalog

import (
	"sort"

	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/shared"
)

// Kind enumerates the filter kinds a catalog view can apply.
type Kind string

const (
	All       Kind = "all"
	Genre     Kind = "genre"
	Mood      Kind = "mood"
	Artist    Kind = "artist"
	Search    Kind = "search"
	Favorites Kind = "favorites"
)

// Filter describes one catalog view: a kind plus its value (genre id, search
// query, ...). Value is unused for All and Favorites.
type Filter struct {
	Kind  Kind
	Value string
}

// Apply produces the ordered subset of songs for the filter.
//
// Pure function, recomputed in full from whatever is currently loaded: no
// pagination, no caching. "all" sorts by descending view count; "search"
// matches case- and diacritic-insensitively against title and artist name;
// "favorites" restricts to the caller's set; the remaining kinds match the
// foreign-key field first and fall back to string equality against the
// denormalized display name.
func Apply(songs []models.Song, filter Filter, favorites []models.ID) []models.Song {
	switch filter.Kind {
	case All, "":
		return byViews(songs)
	case Search:
		return search(songs, filter.Value)
	case Favorites:
		return onlyFavorites(songs, favorites)
	case Genre:
		return match(songs, filter.Value, func(s models.Song) (models.ID, string) { return s.GenreID, s.Genre })
	case Mood:
		return match(songs, filter.Value, func(s models.Song) (models.ID, string) { return s.MoodID, s.Mood })
	case Artist:
		return match(songs, filter.Value, func(s models.Song) (models.ID, string) { return s.ArtistID, s.Artist })
	default:
		return byViews(songs)
	}
}

// byViews returns songs sorted by descending view count. Order of equal-view
// songs follows the input (stable sort).
func byViews(songs []models.Song) []models.Song {
	out := append([]models.Song(nil), songs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Views > out[j].Views
	})
	return out
}

// search matches query as a folded substring of title or artist name.
func search(songs []models.Song, query string) []models.Song {
	if query == "" {
		return append([]models.Song(nil), songs...)
	}

	var out []models.Song
	for _, s := range songs {
		if shared.FoldContains(s.Title, query) || shared.FoldContains(s.Artist, query) {
			out = append(out, s)
		}
	}
	return out
}

// onlyFavorites restricts songs to ids in the caller's favorites set.
func onlyFavorites(songs []models.Song, favorites []models.ID) []models.Song {
	set := make(map[models.ID]struct{}, len(favorites))
	for _, id := range favorites {
		set[id] = struct{}{}
	}

	var out []models.Song
	for _, s := range songs {
		if _, ok := set[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out
}

// match filters by a foreign-key field with a display-name equality fallback.
func match(songs []models.Song, value string, field func(models.Song) (models.ID, string)) []models.Song {
	var out []models.Song
	for _, s := range songs {
		id, name := field(s)
		if id.String() == value || (name != "" && shared.Fold(name) == shared.Fold(value)) {
			out = append(out, s)
		}
	}
	return out
}
