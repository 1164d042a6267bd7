package admin

import (
	"context"
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

func newTestClient(t *testing.T, level string, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewStore(tu.NewTestDB(t))
	if level != "" {
		user := &models.User{ID: "a1", Username: "backoffice", Level: level}
		if err := store.Put(session.SlotAdmin, user); err != nil {
			t.Fatalf("failed to seed admin session: %v", err)
		}
	}

	return New(api.NewClient(server.URL, nil, 0), store, nil)
}

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
}

func TestAdminClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Login", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"user":{"id":"a1","username":"boss","level":"l1","favorites":[]},"accessToken":"tok"}`))
		}))
		defer server.Close()

		store := session.NewStore(tu.NewTestDB(t))
		client := New(api.NewClient(server.URL, nil, 0), store, nil)

		user, err := client.Login(ctx, api.Credentials{Username: "boss", Password: "pw"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user.Level != "l1" {
			t.Errorf("unexpected level %s", user.Level)
		}

		stored := store.Current(session.SlotAdmin)
		if stored == nil || stored.Username != "boss" {
			t.Errorf("expected admin session stored, got %+v", stored)
		}
		if client.Level() != "l1" {
			t.Errorf("expected level l1, got %s", client.Level())
		}
	})

	t.Run("Logout clears the slot", func(t *testing.T) {
		client := newTestClient(t, "l1", okHandler(`{}`))

		if err := client.Logout(); err != nil {
			t.Fatalf("logout failed: %v", err)
		}
		if client.Level() != "" {
			t.Error("expected empty level after logout")
		}
	})

	t.Run("AddSong", func(t *testing.T) {
		song := &models.Song{Title: "New", Artist: "X"}

		t.Run("admin may add", func(t *testing.T) {
			client := newTestClient(t, LevelAdmin, okHandler(`{"song":{"id":"s1","title":"New"}}`))

			created, err := client.AddSong(ctx, song)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if created.ID != "s1" {
				t.Errorf("unexpected song %+v", created)
			}
		})

		t.Run("moderator is forbidden", func(t *testing.T) {
			client := newTestClient(t, LevelModerator, okHandler(`{}`))

			if _, err := client.AddSong(ctx, song); !errors.Is(err, shared.ErrForbidden) {
				t.Errorf("expected forbidden, got %v", err)
			}
		})

		t.Run("logged out is not authenticated", func(t *testing.T) {
			client := newTestClient(t, "", okHandler(`{}`))

			if _, err := client.AddSong(ctx, song); !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected not authenticated, got %v", err)
			}
		})
	})

	t.Run("EditSong", func(t *testing.T) {
		t.Run("moderator may edit", func(t *testing.T) {
			client := newTestClient(t, LevelModerator, okHandler(`{"song":{"id":"s1","title":"Edited"}}`))

			song, err := client.EditSong(ctx, "s1", map[string]any{"title": "Edited"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if song.Title != "Edited" {
				t.Errorf("unexpected song %+v", song)
			}
		})

		t.Run("regular user is forbidden", func(t *testing.T) {
			client := newTestClient(t, LevelUser, okHandler(`{}`))

			if _, err := client.EditSong(ctx, "s1", map[string]any{"title": "x"}); !errors.Is(err, shared.ErrForbidden) {
				t.Errorf("expected forbidden, got %v", err)
			}
		})
	})

	t.Run("DeleteSong", func(t *testing.T) {
		t.Run("moderator is forbidden", func(t *testing.T) {
			client := newTestClient(t, LevelModerator, okHandler(`{}`))

			if err := client.DeleteSong(ctx, "s1"); !errors.Is(err, shared.ErrForbidden) {
				t.Errorf("expected forbidden, got %v", err)
			}
		})

		t.Run("admin may delete", func(t *testing.T) {
			client := newTestClient(t, LevelAdmin, okHandler(`{}`))

			if err := client.DeleteSong(ctx, "s1"); err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	})

	t.Run("SetUserLevel", func(t *testing.T) {
		t.Run("rejects unknown levels locally", func(t *testing.T) {
			client := newTestClient(t, LevelAdmin, okHandler(`{}`))

			if _, err := client.SetUserLevel(ctx, "u1", "l7"); !errors.Is(err, shared.ErrInvalidArgument) {
				t.Errorf("expected invalid argument, got %v", err)
			}
		})

		t.Run("admin may promote", func(t *testing.T) {
			client := newTestClient(t, LevelAdmin, okHandler(`{"user":{"id":"u1","username":"x","level":"l2","favorites":[]}}`))

			user, err := client.SetUserLevel(ctx, "u1", LevelModerator)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.Level != "l2" {
				t.Errorf("unexpected level %s", user.Level)
			}
		})

		t.Run("moderator is forbidden", func(t *testing.T) {
			client := newTestClient(t, LevelModerator, okHandler(`{}`))

			if _, err := client.SetUserLevel(ctx, "u1", LevelUser); !errors.Is(err, shared.ErrForbidden) {
				t.Errorf("expected forbidden, got %v", err)
			}
		})
	})

	t.Run("AddArtist", func(t *testing.T) {
		t.Run("admin may add", func(t *testing.T) {
			client := newTestClient(t, LevelAdmin, okHandler(`{"artist":{"id":"a1","name":"Linh"}}`))

			artist, err := client.AddArtist(ctx, "Linh")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if artist.ID != "a1" || artist.Name != "Linh" {
				t.Errorf("unexpected artist %+v", artist)
			}
		})

		t.Run("empty name is rejected locally", func(t *testing.T) {
			client := newTestClient(t, LevelAdmin, okHandler(`{}`))

			if _, err := client.AddArtist(ctx, ""); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected invalid input, got %v", err)
			}
		})

		t.Run("moderator is forbidden", func(t *testing.T) {
			client := newTestClient(t, LevelModerator, okHandler(`{}`))

			if _, err := client.AddArtist(ctx, "Linh"); !errors.Is(err, shared.ErrForbidden) {
				t.Errorf("expected forbidden, got %v", err)
			}
		})
	})

	t.Run("tags", func(t *testing.T) {
		t.Run("admin may create a genre", func(t *testing.T) {
			client := newTestClient(t, LevelAdmin, okHandler(`{"genre":{"id":"g1","name":"Jazz"}}`))

			genre, err := client.AddGenre(ctx, "Jazz")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if genre.Name != "Jazz" {
				t.Errorf("unexpected genre %+v", genre)
			}
		})

		t.Run("moderator may not delete a mood", func(t *testing.T) {
			client := newTestClient(t, LevelModerator, okHandler(`{}`))

			if err := client.DeleteMood(ctx, "m1"); !errors.Is(err, shared.ErrForbidden) {
				t.Errorf("expected forbidden, got %v", err)
			}
		})
	})
}
