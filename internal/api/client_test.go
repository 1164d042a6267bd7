package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quaverlabs/quaver/internal/shared"
)

func TestClient(t *testing.T) {
	ctx := context.Background()

	t.Run("NewClient", func(t *testing.T) {
		t.Run("with custom baseURL and client", func(t *testing.T) {
			customClient := &http.Client{}
			client := NewClient("http://example.com", customClient, 0)

			if client.BaseURL() != "http://example.com" {
				t.Errorf("expected baseURL 'http://example.com', got %s", client.BaseURL())
			}
			if client.httpClient != customClient {
				t.Error("expected custom client to be used")
			}
		})

		t.Run("with empty baseURL uses default", func(t *testing.T) {
			client := NewClient("", nil, 0)

			if client.BaseURL() != "http://localhost:3000" {
				t.Errorf("expected default baseURL, got %s", client.BaseURL())
			}
		})

		t.Run("with nil client uses http.DefaultClient", func(t *testing.T) {
			client := NewClient("http://example.com", nil, 0)

			if client.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
		})

		t.Run("rate limit of zero disables throttling", func(t *testing.T) {
			client := NewClient("http://example.com", nil, 0)

			if client.limiter != nil {
				t.Error("expected nil limiter when rate limit is zero")
			}
		})
	})

	t.Run("doRequest", func(t *testing.T) {
		t.Run("attaches bearer token when set", func(t *testing.T) {
			var gotAuth string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, 0)
			client.SetToken("abc123")

			if _, err := client.get(ctx, "/songs"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if gotAuth != "Bearer abc123" {
				t.Errorf("expected bearer header, got %q", gotAuth)
			}
		})

		t.Run("clearing the token removes the header", func(t *testing.T) {
			var gotAuth string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, 0)
			client.SetToken("abc123")
			client.SetToken("")

			if _, err := client.get(ctx, "/songs"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if gotAuth != "" {
				t.Errorf("expected no auth header, got %q", gotAuth)
			}
		})

		t.Run("non-2xx returns a status error", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error":"missing"}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, 0)
			_, err := client.get(ctx, "/songs/nope")

			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Fatalf("expected API request error, got %v", err)
			}
			if !IsNotFound(err) {
				t.Errorf("expected 404 detection, got %v", err)
			}
		})

		t.Run("encodes the request body as JSON", func(t *testing.T) {
			var gotBody map[string]any
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewDecoder(r.Body).Decode(&gotBody)
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, 0)
			if _, err := client.post(ctx, "/songs", map[string]string{"title": "x"}); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if gotBody["title"] != "x" {
				t.Errorf("expected body forwarded, got %v", gotBody)
			}
		})
	})

	t.Run("Songs", func(t *testing.T) {
		t.Run("decodes the list", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/songs" {
					t.Errorf("expected /songs, got %s", r.URL.Path)
				}
				w.Write([]byte(`{"data":[{"id":"s1","title":"One","views":10}]}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, 0)
			songs, err := client.Songs(ctx)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(songs) != 1 || songs[0].ID != "s1" {
				t.Errorf("unexpected songs %v", songs)
			}
		})

		t.Run("falls back to the legacy route on 404", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/songs" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if r.URL.Path != "/songsList" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.Write([]byte(`[{"_id":"s1","title":"One"}]`))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, 0)
			songs, err := client.Songs(ctx)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(songs) != 1 || songs[0].ID != "s1" {
				t.Errorf("unexpected songs %v", songs)
			}
		})
	})

	t.Run("Song", func(t *testing.T) {
		t.Run("404 maps to not found sentinel", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, 0)
			_, err := client.Song(ctx, "ghost")

			if !errors.Is(err, shared.ErrSongNotFound) {
				t.Errorf("expected song not found, got %v", err)
			}
		})
	})

	t.Run("UpdateSong", func(t *testing.T) {
		t.Run("retries with PUT when PATCH is rejected", func(t *testing.T) {
			var methods []string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				methods = append(methods, r.Method)
				if r.Method == http.MethodPatch {
					w.WriteHeader(http.StatusMethodNotAllowed)
					return
				}
				w.Write([]byte(`{"song":{"id":"s1","title":"New"}}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, 0)
			song, err := client.UpdateSong(ctx, "s1", map[string]any{"title": "New"})

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if song.Title != "New" {
				t.Errorf("unexpected song %+v", song)
			}
			if len(methods) != 2 || methods[0] != http.MethodPatch || methods[1] != http.MethodPut {
				t.Errorf("expected PATCH then PUT, got %v", methods)
			}
		})
	})

	t.Run("ToggleFavorite", func(t *testing.T) {
		t.Run("decodes a bare array", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/favorites/toggle" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.Write([]byte(`["s1","s3"]`))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, 0)
			favs, err := client.ToggleFavorite(ctx, "u1", "s3")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(favs) != 2 || favs[1] != "s3" {
				t.Errorf("unexpected favorites %v", favs)
			}
		})

		t.Run("decodes a whole user document", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":{"_id":"u1","username":"x","favorites":["s3"]}}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, 0)
			favs, err := client.ToggleFavorite(ctx, "u1", "s3")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(favs) != 1 || favs[0] != "s3" {
				t.Errorf("unexpected favorites %v", favs)
			}
		})
	})
}

func TestAuth(t *testing.T) {
	ctx := context.Background()

	t.Run("Login", func(t *testing.T) {
		t.Run("decodes wrapped user and token", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/auth/login" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.Write([]byte(`{"user":{"id":"u1","username":"x","favorites":[]},"accessToken":"tok"}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, 0)
			user, err := client.Login(ctx, Credentials{Username: "x", Password: "y"})

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.AccessToken != "tok" {
				t.Errorf("expected token lifted onto user, got %q", user.AccessToken)
			}
		})

		t.Run("decodes a bare user document", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"_id":"u1","username":"x","accessToken":"tok","favorites":["s1"]}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, 0)
			user, err := client.Login(ctx, Credentials{Username: "x", Password: "y"})

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.ID != "u1" || user.AccessToken != "tok" {
				t.Errorf("unexpected user %+v", user)
			}
		})

		t.Run("401 maps to auth failed", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, 0)
			_, err := client.Login(ctx, Credentials{Username: "x", Password: "bad"})

			if !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected auth failed, got %v", err)
			}
		})

		t.Run("missing credentials are rejected locally", func(t *testing.T) {
			client := NewClient("http://example.invalid", nil, 0)
			_, err := client.Login(ctx, Credentials{Username: "x"})

			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected invalid input, got %v", err)
			}
		})
	})

	t.Run("Me", func(t *testing.T) {
		t.Run("requires a token", func(t *testing.T) {
			client := NewClient("http://example.invalid", nil, 0)
			_, err := client.Me(ctx)

			if !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected not authenticated, got %v", err)
			}
		})

		t.Run("401 maps to token expired", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, 0)
			client.SetToken("stale")
			_, err := client.Me(ctx)

			if !errors.Is(err, shared.ErrTokenExpired) {
				t.Errorf("expected token expired, got %v", err)
			}
		})
	})
}
