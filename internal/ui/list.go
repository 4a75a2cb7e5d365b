package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/rantify/internal/services"
)

var _ list.Item = playlistItem{}

// placeholder is the first option of the selector and carries no playlist.
var placeholder = playlistItem{playlist: services.Playlist{Name: "Select a playlist"}}

// playlistItem wraps [services.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist services.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Name }
func (i playlistItem) Title() string       { return i.playlist.Name }
func (i playlistItem) Description() string {
	switch {
	case i.playlist.ID == "":
		return "no playlist"
	case i.playlist.TrackCount == 0 && i.playlist.Owner == "":
		return i.playlist.ID
	}

	desc := fmt.Sprintf("%d tracks", i.playlist.TrackCount)
	if i.playlist.Owner != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.playlist.Owner)
	}
	return desc
}

// playlistItems builds the selector options. A preset identifier missing from playlists is added as its own option.
// It returns the index to select.
func playlistItems(playlists []services.Playlist, preset string) ([]list.Item, int) {
	items := []list.Item{placeholder}
	selected := 0

	if preset != "" {
		found := false
		for _, pl := range playlists {
			if pl.ID == preset {
				found = true
				break
			}
		}
		if !found {
			items = append(items, playlistItem{playlist: services.Playlist{ID: preset, Name: preset}})
			selected = 1
		}
	}

	for _, pl := range playlists {
		if preset != "" && pl.ID == preset {
			selected = len(items)
		}
		items = append(items, playlistItem{playlist: pl})
	}
	return items, selected
}
