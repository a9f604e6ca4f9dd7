package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/quornholt/sheetlist/internal/models"
	"golang.org/x/oauth2"
)

// rewriteTransport redirects every request to the test server.
type rewriteTransport struct {
	target *url.URL
}

func (rt rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = rt.target.Scheme
	req.URL.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

// newTestService builds an authenticated service whose requests hit the
// given test server.
func newTestService(t *testing.T, ts *httptest.Server) *SpotifyService {
	t.Helper()

	srv, err := NewSpotifyService(map[string]string{
		"client_id":     "test_client_id",
		"client_secret": "test_client_secret",
	})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	target, err := url.Parse(ts.URL)
	if err != nil {
		t.Fatalf("failed to parse test server URL: %v", err)
	}

	srv.token = &oauth2.Token{AccessToken: "test_access_token"}
	srv.httpClient = &http.Client{Transport: rewriteTransport{target: target}}
	return srv
}

func TestSpotifyService(t *testing.T) {
	t.Run("NewSpotifyService", func(t *testing.T) {
		t.Run("With Valid Credentials", func(t *testing.T) {
			srv, err := NewSpotifyService(map[string]string{
				"client_id":     "test_client_id",
				"client_secret": "test_client_secret",
				"redirect_uri":  "http://127.0.0.1:9999/cb",
			})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if srv.Name() != "Spotify" {
				t.Errorf("expected service name 'Spotify', got %s", srv.Name())
			}
			if srv.config.RedirectURL != "http://127.0.0.1:9999/cb" {
				t.Errorf("expected configured redirect URI, got %s", srv.config.RedirectURL)
			}
		})

		t.Run("Missing Client ID", func(t *testing.T) {
			_, err := NewSpotifyService(map[string]string{
				"client_secret": "test_client_secret",
			})
			if err == nil {
				t.Error("expected error for missing client_id")
			}
		})

		t.Run("Missing Client Secret", func(t *testing.T) {
			_, err := NewSpotifyService(map[string]string{
				"client_id": "test_client_id",
			})
			if err == nil {
				t.Error("expected error for missing client_secret")
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
			if srv.config.RedirectURL != defaultRedirectURI {
				t.Errorf("expected default redirect URI, got %s", srv.config.RedirectURL)
			}
		})
	})

	t.Run("Get AuthURL", func(t *testing.T) {
		srv, err := NewSpotifyService(map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		})
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}

		authURL := srv.GetAuthURL("test_state")
		if !strings.Contains(authURL, "accounts.spotify.com") {
			t.Error("auth URL should contain Spotify domain")
		}
		if !strings.Contains(authURL, "test_client_id") {
			t.Error("auth URL should contain client_id")
		}
		if !strings.Contains(authURL, "test_state") {
			t.Error("auth URL should contain state")
		}
	})

	t.Run("Authenticate", func(t *testing.T) {
		srv, err := NewSpotifyService(map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		})
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}

		t.Run("WithAccessToken", func(t *testing.T) {
			err := srv.Authenticate(context.Background(), map[string]string{
				"access_token": "test_access_token",
			})
			if err != nil {
				t.Errorf("expected no error with access token, got %v", err)
			}
			if !srv.Authenticated() {
				t.Error("expected service to be authenticated")
			}
		})

		t.Run("MissingCredentials", func(t *testing.T) {
			err := srv.Authenticate(context.Background(), map[string]string{})
			if err == nil {
				t.Error("expected error for missing credentials")
			}
		})
	})

	t.Run("Unauthenticated Request", func(t *testing.T) {
		srv, err := NewSpotifyService(map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		})
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}

		if _, err := srv.SearchTracks(context.Background(), "anything", 10); err == nil {
			t.Error("expected error before authentication")
		}
	})
}

func TestSpotifyService_SearchTracks(t *testing.T) {
	t.Run("parses and projects results", func(t *testing.T) {
		var gotQuery, gotLimit string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			gotLimit = r.URL.Query().Get("limit")
			w.Write([]byte(`{
				"tracks": {"items": [
					{
						"id": "t1", "name": "Bohemian Rhapsody", "popularity": 85,
						"artists": [{"id": "a1", "name": "Queen"}, {"id": "a2", "name": "Other"}],
						"album": {"id": "al1", "name": "A Night at the Opera"}
					},
					{"id": "t2", "name": "Sparse Track"}
				]}
			}`))
		}))
		defer ts.Close()

		srv := newTestService(t, ts)
		candidates, err := srv.SearchTracks(context.Background(), "track:Bohemian Rhapsody artist:Queen", 10)
		if err != nil {
			t.Fatalf("SearchTracks() error = %v", err)
		}

		if gotQuery != "track:Bohemian Rhapsody artist:Queen" {
			t.Errorf("query = %q", gotQuery)
		}
		if gotLimit != "10" {
			t.Errorf("limit = %q, want 10", gotLimit)
		}

		if len(candidates) != 2 {
			t.Fatalf("got %d candidates, want 2", len(candidates))
		}
		full := candidates[0]
		if full.ID != "t1" || full.Artist != "Queen" || full.Album != "A Night at the Opera" || full.Popularity != 85 {
			t.Errorf("candidate = %+v, want first artist and album projected", full)
		}

		// Sparse track: defaults applied rather than an error.
		sparse := candidates[1]
		if sparse.Artist != "" || sparse.Album != "" || sparse.Popularity != 0 {
			t.Errorf("sparse candidate = %+v, want zero defaults", sparse)
		}
	})

	t.Run("clamps limit", func(t *testing.T) {
		var gotLimit string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotLimit = r.URL.Query().Get("limit")
			w.Write([]byte(`{"tracks": {"items": []}}`))
		}))
		defer ts.Close()

		srv := newTestService(t, ts)
		if _, err := srv.SearchTracks(context.Background(), "q", 500); err != nil {
			t.Fatalf("SearchTracks() error = %v", err)
		}
		if gotLimit != "50" {
			t.Errorf("limit = %q, want clamped to 50", gotLimit)
		}

		if _, err := srv.SearchTracks(context.Background(), "q", 0); err != nil {
			t.Fatalf("SearchTracks() error = %v", err)
		}
		if gotLimit != "10" {
			t.Errorf("limit = %q, want default 10", gotLimit)
		}
	})

	t.Run("API error carries status and message", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"status": 429, "message": "API rate limit exceeded"}}`))
		}))
		defer ts.Close()

		srv := newTestService(t, ts)
		_, err := srv.SearchTracks(context.Background(), "q", 10)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("SearchTracks() error = %v, want *APIError", err)
		}
		if apiErr.StatusCode != http.StatusTooManyRequests {
			t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
		}
		if apiErr.Message != "API rate limit exceeded" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}

func TestSpotifyService_Playlists(t *testing.T) {
	t.Run("CurrentUserID", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/me" {
				t.Errorf("path = %q, want /me", r.URL.Path)
			}
			w.Write([]byte(`{"id": "user42", "display_name": "Tester"}`))
		}))
		defer ts.Close()

		srv := newTestService(t, ts)
		id, err := srv.CurrentUserID(context.Background())
		if err != nil {
			t.Fatalf("CurrentUserID() error = %v", err)
		}
		if id != "user42" {
			t.Errorf("CurrentUserID() = %q, want user42", id)
		}
	})

	t.Run("CreatePlaylist", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"id": "pl1", "name": "Road Trip", "external_urls": {"spotify": "https://open.spotify.com/playlist/pl1"}}`))
		}))
		defer ts.Close()

		srv := newTestService(t, ts)
		ref, err := srv.CreatePlaylist(context.Background(), "user42", models.PlaylistSpec{
			Name:        "Road Trip",
			Public:      false,
			Description: "summer drive",
		})
		if err != nil {
			t.Fatalf("CreatePlaylist() error = %v", err)
		}

		if gotPath != "/users/user42/playlists" {
			t.Errorf("path = %q", gotPath)
		}
		if gotBody["name"] != "Road Trip" || gotBody["public"] != false || gotBody["description"] != "summer drive" {
			t.Errorf("request body = %v", gotBody)
		}
		if ref.ID != "pl1" || ref.URL != "https://open.spotify.com/playlist/pl1" {
			t.Errorf("PlaylistRef = %+v", ref)
		}
	})

	t.Run("AddTracks", func(t *testing.T) {
		var gotPath string
		var gotBody struct {
			URIs []string `json:"uris"`
		}
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"snapshot_id": "snap1"}`))
		}))
		defer ts.Close()

		srv := newTestService(t, ts)
		err := srv.AddTracks(context.Background(), "pl1", []string{"t1", "t2"})
		if err != nil {
			t.Fatalf("AddTracks() error = %v", err)
		}

		if gotPath != "/playlists/pl1/tracks" {
			t.Errorf("path = %q", gotPath)
		}
		want := []string{"spotify:track:t1", "spotify:track:t2"}
		if len(gotBody.URIs) != len(want) {
			t.Fatalf("uris = %v, want %v", gotBody.URIs, want)
		}
		for i, uri := range want {
			if gotBody.URIs[i] != uri {
				t.Errorf("uris[%d] = %q, want %q", i, gotBody.URIs[i], uri)
			}
		}
	})

	t.Run("AddTracks rejects oversized batch", func(t *testing.T) {
		srv, err := NewSpotifyService(map[string]string{
			"client_id":     "test_client_id",
			"client_secret": "test_client_secret",
		})
		if err != nil {
			t.Fatalf("failed to create service: %v", err)
		}
		srv.token = &oauth2.Token{AccessToken: "tok"}

		ids := make([]string, 101)
		for i := range ids {
			ids[i] = "t"
		}
		if err := srv.AddTracks(context.Background(), "pl1", ids); err == nil {
			t.Error("expected error for batch over 100 tracks")
		}

		if err := srv.AddTracks(context.Background(), "pl1", nil); err == nil {
			t.Error("expected error for empty batch")
		}
	})
}
