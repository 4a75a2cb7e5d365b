package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/rantify/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

func newTestSpotify(t *testing.T, handler http.HandlerFunc) *SpotifyService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	srv, err := NewSpotifyService(map[string]string{
		"client_id":     "test_client_id",
		"client_secret": "test_client_secret",
	})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	srv.baseURL = server.URL
	srv.token = &oauth2.Token{AccessToken: "token"}
	srv.httpClient = server.Client()
	srv.limiter = rate.NewLimiter(rate.Inf, 1)
	return srv
}

func TestSpotifyService(t *testing.T) {
	t.Run("NewSpotifyService", func(t *testing.T) {
		t.Run("With Valid Credentials", func(t *testing.T) {
			srv, err := NewSpotifyService(map[string]string{
				"client_id":     "test_client_id",
				"client_secret": "test_client_secret",
				"redirect_uri":  "http://127.0.0.1:4000/callback",
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if srv.Name() != "Spotify" {
				t.Errorf("expected service name 'Spotify', got %s", srv.Name())
			}
			if srv.GetOAuthConfig().RedirectURL != "http://127.0.0.1:4000/callback" {
				t.Errorf("unexpected redirect URI %s", srv.GetOAuthConfig().RedirectURL)
			}
		})

		t.Run("Missing Client ID", func(t *testing.T) {
			_, err := NewSpotifyService(map[string]string{"client_secret": "secret"})
			if !errors.Is(err, shared.ErrMissingCredentials) {
				t.Errorf("expected ErrMissingCredentials, got %v", err)
			}
		})

		t.Run("Missing Client Secret", func(t *testing.T) {
			_, err := NewSpotifyService(map[string]string{"client_id": "id"})
			if !errors.Is(err, shared.ErrMissingCredentials) {
				t.Errorf("expected ErrMissingCredentials, got %v", err)
			}
		})

		t.Run("Default Redirect URI", func(t *testing.T) {
			srv, err := NewSpotifyService(map[string]string{
				"client_id":     "test_client_id",
				"client_secret": "test_client_secret",
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if srv.config.RedirectURL != "http://127.0.0.1:3000/callback" {
				t.Errorf("expected default redirect URI, got %s", srv.config.RedirectURL)
			}
		})
	})

	t.Run("GetAuthURL", func(t *testing.T) {
		srv, _ := NewSpotifyService(map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		})

		authURL := srv.GetAuthURL("state-token")
		for _, want := range []string{spotifyAuthURL, "state=state-token", "client_id=test_client_id", "access_type=offline"} {
			if !strings.Contains(authURL, want) {
				t.Errorf("expected auth URL to contain %q, got %s", want, authURL)
			}
		}
	})

	t.Run("OAuthenticate", func(t *testing.T) {
		srv, _ := NewSpotifyService(map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		})

		if err := srv.OAuthenticate(context.Background(), nil); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
		if err := srv.OAuthenticate(context.Background(), &oauth2.Token{AccessToken: "a"}); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if srv.httpClient == http.DefaultClient {
			t.Error("expected oauth2 client to replace the default client")
		}
	})

	t.Run("Not Authenticated", func(t *testing.T) {
		srv, _ := NewSpotifyService(map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		})

		if _, err := srv.GetPlaylists(context.Background()); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("GetPlaylists Paginates", func(t *testing.T) {
		srv := newTestSpotify(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/me/playlists" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if auth := r.Header.Get("Authorization"); auth != "Bearer token" {
				t.Errorf("unexpected authorization header %s", auth)
			}

			w.Header().Set("Content-Type", "application/json")
			if r.URL.Query().Get("offset") == "0" {
				fmt.Fprint(w, `{"items":[{"id":"abc123","name":"Road Trip","owner":{"id":"me","display_name":"Me"},"tracks":{"total":12},"public":true}],"next":"page2"}`)
				return
			}
			fmt.Fprint(w, `{"items":[{"id":"def456","name":"Focus","owner":{"id":"other","display_name":"Other"},"tracks":{"total":3}}],"next":null}`)
		})

		playlists, err := srv.GetPlaylists(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(playlists) != 2 {
			t.Fatalf("expected 2 playlists, got %d", len(playlists))
		}
		if playlists[0].ID != "abc123" || playlists[0].TrackCount != 12 || !playlists[0].Public {
			t.Errorf("unexpected first playlist %+v", playlists[0])
		}
		if playlists[1].Owner != "Other" {
			t.Errorf("expected owner Other, got %s", playlists[1].Owner)
		}
	})

	t.Run("GetPlaylists Owned Only", func(t *testing.T) {
		srv := newTestSpotify(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Path == "/me" {
				fmt.Fprint(w, `{"id":"me","display_name":"Me"}`)
				return
			}
			fmt.Fprint(w, `{"items":[{"id":"abc123","owner":{"id":"me"}},{"id":"def456","owner":{"id":"other"}}],"next":null}`)
		}).OwnedOnly(true)

		playlists, err := srv.GetPlaylists(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(playlists) != 1 || playlists[0].ID != "abc123" {
			t.Errorf("expected only owned playlist, got %+v", playlists)
		}
	})

	t.Run("Expired Token", func(t *testing.T) {
		srv := newTestSpotify(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		if _, err := srv.GetPlaylists(context.Background()); !errors.Is(err, shared.ErrTokenExpired) {
			t.Errorf("expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("Server Error", func(t *testing.T) {
		srv := newTestSpotify(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		if _, err := srv.GetPlaylists(context.Background()); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		srv := newTestSpotify(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})
		srv.limiter = rate.NewLimiter(rate.Limit(0.001), 0)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := srv.GetPlaylists(ctx); err == nil {
			t.Error("expected error for cancelled context")
		}
	})

	t.Run("UserPlaylists Clamps Limit", func(t *testing.T) {
		var gotLimit string
		srv := newTestSpotify(t, func(w http.ResponseWriter, r *http.Request) {
			gotLimit = r.URL.Query().Get("limit")
			fmt.Fprint(w, `{"items":[],"next":null}`)
		})

		if _, err := srv.UserPlaylists(context.Background(), 500, 0); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotLimit != "50" {
			t.Errorf("expected limit 50, got %s", gotLimit)
		}
	})
}
