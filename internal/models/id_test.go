package models

import (
	"encoding/json"
	"testing"
)

func TestID(t *testing.T) {
	t.Run("UnmarshalJSON", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
			want  ID
		}{
			{"string id", `"abc"`, "abc"},
			{"integer id", `42`, "42"},
			{"float id", `42.0`, "42"},
			{"null id", `null`, ""},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				var id ID
				if err := json.Unmarshal([]byte(tc.input), &id); err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if id != tc.want {
					t.Errorf("expected %q, got %q", tc.want, id)
				}
			})
		}

		t.Run("rejects objects", func(t *testing.T) {
			var id ID
			if err := json.Unmarshal([]byte(`{"x":1}`), &id); err == nil {
				t.Error("expected error for object id")
			}
		})
	})

	t.Run("ParseID", func(t *testing.T) {
		if got := ParseID("abc"); got != "abc" {
			t.Errorf("expected abc, got %s", got)
		}
		if got := ParseID(float64(7)); got != "7" {
			t.Errorf("expected 7, got %s", got)
		}
		if got := ParseID(12); got != "12" {
			t.Errorf("expected 12, got %s", got)
		}
		if got := ParseID(json.Number("42.0")); got != "42" {
			t.Errorf("expected 42, got %s", got)
		}
		if got := ParseID(nil); got != "" {
			t.Errorf("expected empty id, got %s", got)
		}
	})

	t.Run("ToggleID", func(t *testing.T) {
		t.Run("appends a missing id", func(t *testing.T) {
			result, added := ToggleID([]ID{"s1"}, "s2")

			if !added {
				t.Error("expected added")
			}
			if len(result) != 2 || result[1] != "s2" {
				t.Errorf("unexpected result %v", result)
			}
		})

		t.Run("removes a present id", func(t *testing.T) {
			result, added := ToggleID([]ID{"s1", "s2"}, "s1")

			if added {
				t.Error("expected removed")
			}
			if len(result) != 1 || result[0] != "s2" {
				t.Errorf("unexpected result %v", result)
			}
		})

		t.Run("never mutates the input", func(t *testing.T) {
			original := []ID{"s1", "s2"}
			ToggleID(original, "s1")
			ToggleID(original, "s3")

			if len(original) != 2 || original[0] != "s1" || original[1] != "s2" {
				t.Errorf("input mutated: %v", original)
			}
		})
	})
}

func TestUser(t *testing.T) {
	t.Run("UnmarshalJSON", func(t *testing.T) {
		t.Run("honors legacy _id", func(t *testing.T) {
			var user User
			if err := json.Unmarshal([]byte(`{"_id":"u1","username":"x"}`), &user); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.ID != "u1" {
				t.Errorf("expected _id honored, got %q", user.ID)
			}
		})

		t.Run("guarantees non-nil favorites", func(t *testing.T) {
			var user User
			if err := json.Unmarshal([]byte(`{"id":"u1"}`), &user); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.Favorites == nil {
				t.Error("expected favorites initialized")
			}
		})
	})

	t.Run("Clone", func(t *testing.T) {
		user := &User{
			ID:        "u1",
			Favorites: []ID{"s1"},
			Playlists: []Playlist{{ID: "p1", Name: "Mix", SongIDs: []ID{"s1", "s2"}}},
		}

		clone := user.Clone()
		clone.Favorites[0] = "junk"
		clone.Playlists[0].SongIDs[0] = "junk"
		clone.Playlists[0].Name = "junk"

		if user.Favorites[0] != "s1" {
			t.Error("expected favorites deep-copied")
		}
		if user.Playlists[0].SongIDs[0] != "s1" || user.Playlists[0].Name != "Mix" {
			t.Error("expected playlists deep-copied")
		}
	})

	t.Run("FindPlaylist", func(t *testing.T) {
		user := &User{Playlists: []Playlist{{ID: "p1", Name: "Mix"}}}

		if pl := user.FindPlaylist("p1"); pl == nil || pl.Name != "Mix" {
			t.Errorf("expected playlist found, got %+v", pl)
		}
		if pl := user.FindPlaylist("ghost"); pl != nil {
			t.Errorf("expected nil for unknown id, got %+v", pl)
		}
	})
}
