package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/rantify/internal/rant"
	"github.com/desertthunder/rantify/internal/services"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgPlaylistsFetched MsgKind = iota
	MsgRantCompleted
	MsgLinkOpened
)

// Kind reports which variant the message carries.
func (m Msg) Kind() MsgKind { return m.kind }

type playlistsFetched struct {
	playlists []services.Playlist
	err       error
}

type rantCompleted struct {
	request rant.Request
	outcome rant.Outcome
}

// playlistsFetchedMsg is the constructor for [MsgPlaylistsFetched]
func playlistsFetchedMsg(playlists []services.Playlist, err error) Msg {
	return Msg{kind: MsgPlaylistsFetched, data: playlistsFetched{playlists, err}}
}

// rantCompletedMsg is the constructor for [MsgRantCompleted]
func rantCompletedMsg(req rant.Request, outcome rant.Outcome) Msg {
	return Msg{kind: MsgRantCompleted, data: rantCompleted{req, outcome}}
}

// linkOpenedMsg is the constructor for [MsgLinkOpened]; err is nil when the browser started.
func linkOpenedMsg(err error) Msg {
	return Msg{kind: MsgLinkOpened, data: err}
}
