// package services defines the HTTP collaborators of the client
//
// The rant server (via [RantAPI]) and Spotify (via [SpotifyService]) as a playlist source.
package services

import (
	"context"

	"golang.org/x/oauth2"
)

// PlaylistSource supplies the selectable playlists offered to the user.
type PlaylistSource interface {
	// GetPlaylists retrieves all playlists for the authenticated user.
	GetPlaylists(ctx context.Context) ([]Playlist, error)

	// Name returns the name of the source (e.g., "Spotify")
	Name() string
}

// OAuthService extends [PlaylistSource] for providers authorized with the OAuth2 code flow.
type OAuthService interface {
	PlaylistSource

	// GetAuthURL returns the authorization URL the user is sent to.
	GetAuthURL(state string) string

	// GetOAuthConfig exposes the [oauth2.Config] used to exchange authorization codes.
	GetOAuthConfig() *oauth2.Config

	// OAuthenticate installs token, refreshing it automatically when it expires.
	OAuthenticate(ctx context.Context, token *oauth2.Token) error
}

// Playlist represents a playlist offered for selection
type Playlist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Owner       string `json:"owner,omitempty"`
	TrackCount  int    `json:"track_count"`
	Public      bool   `json:"public"`
}
