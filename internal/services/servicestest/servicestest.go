// Package servicestest provides test doubles for the services package.
package servicestest

import (
	"context"

	"github.com/desertthunder/rantify/internal/services"
)

// MockPlaylistSource is a test double for [services.PlaylistSource]
type MockPlaylistSource struct {
	Playlists []services.Playlist
	Err       error
}

func (m *MockPlaylistSource) GetPlaylists(ctx context.Context) ([]services.Playlist, error) {
	return m.Playlists, m.Err
}

func (m *MockPlaylistSource) Name() string { return "mock" }
