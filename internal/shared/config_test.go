package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func mustRead(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()
		if config.Server.BaseURL != "http://127.0.0.1:5000" {
			t.Errorf("expected base URL http://127.0.0.1:5000, got %s", config.Server.BaseURL)
		}
		if config.Server.CookieName != "user_session" {
			t.Errorf("expected cookie name user_session, got %s", config.Server.CookieName)
		}
		if config.Links.BaseURL != "https://open.spotify.com/" {
			t.Errorf("expected links base https://open.spotify.com/, got %s", config.Links.BaseURL)
		}
		if config.Callback.Port != 3000 {
			t.Errorf("expected callback port 3000, got %d", config.Callback.Port)
		}
		if config.Credentials.Spotify.Token() != nil {
			t.Error("expected no token in default config")
		}
	})

	t.Run("LoginURL", func(t *testing.T) {
		tc := []struct {
			base, path, want string
		}{
			{"http://127.0.0.1:5000", "/auth/login", "http://127.0.0.1:5000/auth/login"},
			{"http://127.0.0.1:5000/", "auth/login", "http://127.0.0.1:5000/auth/login"},
		}
		for _, tt := range tc {
			s := ServerConfig{BaseURL: tt.base, LoginPath: tt.path}
			if got := s.LoginURL(); got != tt.want {
				t.Errorf("LoginURL() = %s, want %s", got, tt.want)
			}
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}
		if config.Server.BaseURL != DefaultConfig().Server.BaseURL {
			t.Errorf("created config base URL doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		testConfig := `[server]
base_url = "https://rantify.example.com"
session_cookie = "abc123"

[rant.fields]
csrf_token = "tok"

[credentials.spotify]
client_id = "test_client_id"
client_secret = "test_secret"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Server.BaseURL != "https://rantify.example.com" {
			t.Errorf("expected custom base URL, got %s", config.Server.BaseURL)
		}
		if config.Server.SessionCookie != "abc123" {
			t.Errorf("expected session cookie abc123, got %s", config.Server.SessionCookie)
		}
		if config.Server.LoginPath != "/auth/login" {
			t.Errorf("expected default login path to be kept, got %s", config.Server.LoginPath)
		}
		if config.Rant.Fields["csrf_token"] != "tok" {
			t.Errorf("expected csrf_token field, got %v", config.Rant.Fields)
		}
		if !config.Credentials.Spotify.HasCredentials() {
			t.Error("expected spotify credentials")
		}
	})

	t.Run("LoadConfig Invalid", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[server\nbase_url="), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("LoadOrDefault Missing File", func(t *testing.T) {
		config, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.Server.BaseURL != DefaultConfig().Server.BaseURL {
			t.Error("expected default config")
		}
	})

	t.Run("SaveConfig Round Trip", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		expiry := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

		config := DefaultConfig()
		config.Server.SessionCookie = "saved"
		if err := config.Credentials.Spotify.Update(&oauth2.Token{
			AccessToken:  "access",
			RefreshToken: "refresh",
			TokenType:    "Bearer",
			Expiry:       expiry,
		}); err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		if err := SaveConfig(configPath, config); err != nil {
			t.Fatalf("SaveConfig() error = %v", err)
		}

		loaded, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		if loaded.Server.SessionCookie != "saved" {
			t.Errorf("expected session cookie saved, got %s", loaded.Server.SessionCookie)
		}
		token := loaded.Credentials.Spotify.Token()
		if token == nil || token.AccessToken != "access" || token.RefreshToken != "refresh" {
			t.Fatalf("expected token round trip, got %+v", token)
		}
		if !token.Expiry.Equal(expiry) {
			t.Errorf("expected expiry %v, got %v", expiry, token.Expiry)
		}
	})

	t.Run("Update Keeps Refresh Token", func(t *testing.T) {
		s := SpotifyConfig{RefreshToken: "old"}
		if err := s.Update(&oauth2.Token{AccessToken: "new"}); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if s.RefreshToken != "old" {
			t.Errorf("expected refresh token to be kept, got %s", s.RefreshToken)
		}
		if err := s.Update(nil); err == nil {
			t.Error("expected error for nil token")
		}
	})
}
