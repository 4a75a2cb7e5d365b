package rant

import "strings"

// SpotifyBaseURL is the default base of playlist links.
const SpotifyBaseURL = "https://open.spotify.com/"

// Link keeps a playlist hyperlink in sync with the selection.
type Link struct {
	base string
	href string
}

// NewLink creates a link pointing at base (default [SpotifyBaseURL]).
func NewLink(base string) *Link {
	if base == "" {
		base = SpotifyBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &Link{base: base, href: base}
}

// Update points the link at the selected playlist, or back at the base when nothing is selected.
func (l *Link) Update(selection string) string {
	if selection == "" {
		l.href = l.base
	} else {
		l.href = l.base + "playlist/" + selection
	}
	return l.href
}

// Href returns the current link target.
func (l *Link) Href() string {
	return l.href
}
