package playlists

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quaverlabs/quaver/internal/api"
	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/session"
	"github.com/quaverlabs/quaver/internal/shared"
	tu "github.com/quaverlabs/quaver/internal/testing"
)

func newManager(t *testing.T, handler http.Handler) (*Manager, *session.Store) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewStore(tu.NewTestDB(t))
	return NewManager(store, api.NewClient(server.URL, nil, 0), nil), store
}

func seedUser(t *testing.T, store *session.Store, playlists ...models.Playlist) {
	t.Helper()
	user := &models.User{ID: "u1", Username: "x", Favorites: []models.ID{}, Playlists: playlists}
	if err := store.Put(session.SlotUser, user); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
}

// echoUser accepts any PATCH and echoes a user document back.
func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":"u1","username":"x","favorites":[]}}`))
	})
}

func failing() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
}

func TestManager(t *testing.T) {
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		t.Run("adds an empty playlist", func(t *testing.T) {
			var gotFields map[string]any
			manager, store := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewDecoder(r.Body).Decode(&gotFields)
				w.Write([]byte(`{"user":{"id":"u1","favorites":[]}}`))
			}))
			seedUser(t, store)

			playlist, err := manager.Create(ctx, "Road Trip")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if playlist.Name != "Road Trip" || playlist.ID.IsZero() {
				t.Errorf("unexpected playlist %+v", playlist)
			}
			if len(playlist.SongIDs) != 0 {
				t.Errorf("expected empty playlist, got %v", playlist.SongIDs)
			}
			if _, ok := gotFields["playlists"]; !ok {
				t.Error("expected playlists field in the persistence payload")
			}

			user := store.Current(session.SlotUser)
			if len(user.Playlists) != 1 {
				t.Errorf("expected playlist in session mirror, got %+v", user.Playlists)
			}
		})

		t.Run("empty name is rejected", func(t *testing.T) {
			manager, store := newManager(t, echoUser())
			seedUser(t, store)

			if _, err := manager.Create(ctx, ""); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected invalid input, got %v", err)
			}
		})

		t.Run("logged out fails", func(t *testing.T) {
			manager, _ := newManager(t, echoUser())

			if _, err := manager.Create(ctx, "x"); !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected not authenticated, got %v", err)
			}
		})

		t.Run("rolls back when persistence fails", func(t *testing.T) {
			manager, store := newManager(t, failing())
			seedUser(t, store)

			if _, err := manager.Create(ctx, "Doomed"); err == nil {
				t.Fatal("expected error from failing backend")
			}

			user := store.Current(session.SlotUser)
			if len(user.Playlists) != 0 {
				t.Errorf("expected session rolled back, got %+v", user.Playlists)
			}
		})
	})

	t.Run("Rename", func(t *testing.T) {
		t.Run("changes the name", func(t *testing.T) {
			manager, store := newManager(t, echoUser())
			seedUser(t, store, models.Playlist{ID: "p1", Name: "Old", SongIDs: []models.ID{}})

			if err := manager.Rename(ctx, "p1", "New"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if got := store.Current(session.SlotUser).FindPlaylist("p1"); got.Name != "New" {
				t.Errorf("expected renamed playlist, got %+v", got)
			}
		})

		t.Run("unknown playlist fails without persisting", func(t *testing.T) {
			called := false
			manager, store := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.Write([]byte(`{}`))
			}))
			seedUser(t, store)

			if err := manager.Rename(ctx, "ghost", "x"); !errors.Is(err, shared.ErrPlaylistNotFound) {
				t.Errorf("expected playlist not found, got %v", err)
			}
			if called {
				t.Error("expected no backend call for a local validation failure")
			}
		})
	})

	t.Run("Delete removes the playlist", func(t *testing.T) {
		manager, store := newManager(t, echoUser())
		seedUser(t, store,
			models.Playlist{ID: "p1", Name: "Keep", SongIDs: []models.ID{}},
			models.Playlist{ID: "p2", Name: "Drop", SongIDs: []models.ID{}},
		)

		if err := manager.Delete(ctx, "p2"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		user := store.Current(session.SlotUser)
		if len(user.Playlists) != 1 || user.Playlists[0].ID != "p1" {
			t.Errorf("unexpected playlists %+v", user.Playlists)
		}
	})

	t.Run("AddSong", func(t *testing.T) {
		t.Run("appends the song", func(t *testing.T) {
			manager, store := newManager(t, echoUser())
			seedUser(t, store, models.Playlist{ID: "p1", Name: "Mix", SongIDs: []models.ID{"s1"}})

			if err := manager.AddSong(ctx, "p1", "s2"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			got := store.Current(session.SlotUser).FindPlaylist("p1")
			if len(got.SongIDs) != 2 || got.SongIDs[1] != "s2" {
				t.Errorf("unexpected songs %v", got.SongIDs)
			}
		})

		t.Run("duplicate add is a no-op", func(t *testing.T) {
			manager, store := newManager(t, echoUser())
			seedUser(t, store, models.Playlist{ID: "p1", Name: "Mix", SongIDs: []models.ID{"s1"}})

			if err := manager.AddSong(ctx, "p1", "s1"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			got := store.Current(session.SlotUser).FindPlaylist("p1")
			if len(got.SongIDs) != 1 {
				t.Errorf("expected no duplicate, got %v", got.SongIDs)
			}
		})
	})

	t.Run("Pull", func(t *testing.T) {
		t.Run("replaces the local mirror with the server copy", func(t *testing.T) {
			manager, store := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"playlists":[{"id":"p9","name":"Server Mix","songs":["s1"]}]}`))
			}))
			seedUser(t, store, models.Playlist{ID: "p1", Name: "Local", SongIDs: []models.ID{}})

			pulled, err := manager.Pull(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(pulled) != 1 || pulled[0].ID != "p9" {
				t.Fatalf("unexpected playlists %+v", pulled)
			}

			user := store.Current(session.SlotUser)
			if len(user.Playlists) != 1 || user.Playlists[0].Name != "Server Mix" {
				t.Errorf("expected server copy in the mirror, got %+v", user.Playlists)
			}
		})

		t.Run("logged out fails", func(t *testing.T) {
			manager, _ := newManager(t, echoUser())

			if _, err := manager.Pull(ctx); !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected not authenticated, got %v", err)
			}
		})

		t.Run("keeps the mirror when the fetch fails", func(t *testing.T) {
			manager, store := newManager(t, failing())
			seedUser(t, store, models.Playlist{ID: "p1", Name: "Local", SongIDs: []models.ID{}})

			if _, err := manager.Pull(ctx); err == nil {
				t.Fatal("expected error from failing backend")
			}

			user := store.Current(session.SlotUser)
			if len(user.Playlists) != 1 || user.Playlists[0].Name != "Local" {
				t.Errorf("expected untouched mirror, got %+v", user.Playlists)
			}
		})
	})

	t.Run("Push", func(t *testing.T) {
		t.Run("replaces the server copy by id", func(t *testing.T) {
			var method, path string
			manager, store := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				method, path = r.Method, r.URL.Path
				w.Write([]byte(`{"playlist":{"id":"p1","name":"Mix","songs":["s1"]}}`))
			}))
			seedUser(t, store, models.Playlist{ID: "p1", Name: "Mix", SongIDs: []models.ID{"s1"}})

			pushed, err := manager.Push(ctx, "p1")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if pushed.ID != "p1" {
				t.Errorf("unexpected playlist %+v", pushed)
			}
			if method != http.MethodPut || path != "/playlists/p1" {
				t.Errorf("expected PUT /playlists/p1, got %s %s", method, path)
			}
		})

		t.Run("falls back to create when the server has no copy", func(t *testing.T) {
			var methods []string
			manager, store := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				methods = append(methods, r.Method)
				if r.Method == http.MethodPut {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				w.Write([]byte(`{"playlist":{"id":"p1","name":"Mix","songs":[]}}`))
			}))
			seedUser(t, store, models.Playlist{ID: "p1", Name: "Mix", SongIDs: []models.ID{}})

			pushed, err := manager.Push(ctx, "p1")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if pushed.Name != "Mix" {
				t.Errorf("unexpected playlist %+v", pushed)
			}
			if len(methods) != 2 || methods[0] != http.MethodPut || methods[1] != http.MethodPost {
				t.Errorf("expected PUT then POST, got %v", methods)
			}
		})

		t.Run("unknown playlist fails locally", func(t *testing.T) {
			called := false
			manager, store := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))
			seedUser(t, store)

			if _, err := manager.Push(ctx, "ghost"); !errors.Is(err, shared.ErrPlaylistNotFound) {
				t.Errorf("expected playlist not found, got %v", err)
			}
			if called {
				t.Error("expected no backend call for a local validation failure")
			}
		})
	})

	t.Run("RemoveSong", func(t *testing.T) {
		t.Run("removes the song", func(t *testing.T) {
			manager, store := newManager(t, echoUser())
			seedUser(t, store, models.Playlist{ID: "p1", Name: "Mix", SongIDs: []models.ID{"s1", "s2"}})

			if err := manager.RemoveSong(ctx, "p1", "s1"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			got := store.Current(session.SlotUser).FindPlaylist("p1")
			if len(got.SongIDs) != 1 || got.SongIDs[0] != "s2" {
				t.Errorf("unexpected songs %v", got.SongIDs)
			}
		})

		t.Run("absent song is a no-op", func(t *testing.T) {
			manager, store := newManager(t, echoUser())
			seedUser(t, store, models.Playlist{ID: "p1", Name: "Mix", SongIDs: []models.ID{"s1"}})

			if err := manager.RemoveSong(ctx, "p1", "ghost"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	})
}
