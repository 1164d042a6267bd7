// package models defines the data model for the streaming catalog client
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Song represents a catalog song.
//
// Artist, album, genre and mood references arrive either as foreign-key ids or
// as denormalized display names, depending on the backend generation serving
// the request, so both are retained.
type Song struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	ArtistID    ID     `json:"artistId,omitempty"`
	Artist      string `json:"artist,omitempty"`
	AlbumID     ID     `json:"albumId,omitempty"`
	Album       string `json:"album,omitempty"`
	GenreID     ID     `json:"genreId,omitempty"`
	Genre       string `json:"genre,omitempty"`
	MoodID      ID     `json:"moodId,omitempty"`
	Mood        string `json:"mood,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	ImageURL    string `json:"image,omitempty"`
	AudioURL    string `json:"audio,omitempty"`
	Views       int    `json:"views,omitempty"`
}

// UnmarshalJSON fills ID from a legacy "_id" field when "id" is absent.
func (s *Song) UnmarshalJSON(data []byte) error {
	type alias Song
	aux := struct {
		*alias
		AltID ID `json:"_id"`
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if s.ID.IsZero() {
		s.ID = aux.AltID
	}
	return nil
}

// Validate checks required song fields before submission to the admin API.
func (s *Song) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("song title is required")
	}
	if s.Artist == "" && s.ArtistID.IsZero() {
		return fmt.Errorf("song artist is required")
	}
	return nil
}

// Artist represents a catalog artist.
type Artist struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image,omitempty"`
}

// Album represents a catalog album with an ordered list of member song ids.
type Album struct {
	ID       ID     `json:"id"`
	Title    string `json:"title"`
	ArtistID ID     `json:"artistId,omitempty"`
	Artist   string `json:"artist,omitempty"`
	ImageURL string `json:"image,omitempty"`
	SongIDs  []ID   `json:"songs,omitempty"`
}

// Genre represents a catalog genre.
type Genre struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image,omitempty"`
}

// Mood represents a catalog mood tag.
type Mood struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image,omitempty"`
}

// Video represents a music video entry.
type Video struct {
	ID       ID     `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist,omitempty"`
	URL      string `json:"url,omitempty"`
	ImageURL string `json:"image,omitempty"`
	Views    int    `json:"views,omitempty"`
}

// UnmarshalJSON fills ID from a legacy "_id" field when "id" is absent.
func (v *Video) UnmarshalJSON(data []byte) error {
	type alias Video
	aux := struct {
		*alias
		AltID ID `json:"_id"`
	}{alias: (*alias)(v)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if v.ID.IsZero() {
		v.ID = aux.AltID
	}
	return nil
}

// Playlist represents a user playlist holding an ordered list of song ids.
type Playlist struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	SongIDs   []ID      `json:"songs"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Contains reports whether the playlist holds the given song.
func (p *Playlist) Contains(songID ID) bool {
	return ContainsID(p.SongIDs, songID)
}

// User represents an authenticated account, mirrored locally as the session payload.
//
// Favorites and playlists are embedded in the user record, matching the
// backend's denormalized user document.
type User struct {
	ID          ID         `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email,omitempty"`
	Level       string     `json:"level,omitempty"`
	AccessToken string     `json:"accessToken,omitempty"`
	Favorites   []ID       `json:"favorites"`
	Playlists   []Playlist `json:"playlists,omitempty"`
}

// UnmarshalJSON fills ID from a legacy "_id" field when "id" is absent and
// guarantees favorites is non-nil.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		*alias
		AltID ID `json:"_id"`
	}{alias: (*alias)(u)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if u.ID.IsZero() {
		u.ID = aux.AltID
	}
	if u.Favorites == nil {
		u.Favorites = []ID{}
	}
	return nil
}

// HasFavorite reports whether songID is in the user's favorites set.
func (u *User) HasFavorite(songID ID) bool {
	return ContainsID(u.Favorites, songID)
}

// FindPlaylist returns the user's playlist with the given id, or nil.
func (u *User) FindPlaylist(id ID) *Playlist {
	for i := range u.Playlists {
		if u.Playlists[i].ID == id {
			return &u.Playlists[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the user, used for rollback snapshots.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Favorites = append([]ID(nil), u.Favorites...)
	clone.Playlists = make([]Playlist, len(u.Playlists))
	for i, p := range u.Playlists {
		clone.Playlists[i] = p
		clone.Playlists[i].SongIDs = append([]ID(nil), p.SongIDs...)
	}
	return &clone
}
