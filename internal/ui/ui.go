package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/rantify/internal/rant"
	"github.com/desertthunder/rantify/internal/services"
	"github.com/desertthunder/rantify/internal/shared"
)

const (
	defaultWidth  = 60
	defaultHeight = 14
)

// Options holds the dependencies of a [Model].
type Options struct {
	Source    services.PlaylistSource // optional; the selector only holds the preset when nil
	Client    *rant.Client
	Navigator rant.Navigator
	Form      rant.Form // static fields sent with every submission
	LinkBase  string
	Preset    string // playlist selected at startup
	Logger    *log.Logger
}

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	source     services.PlaylistSource
	client     *rant.Client
	navigator  rant.Navigator
	controls   *rant.Controls
	submitters []*rant.Submitter
	link       *rant.Link
	playlists  list.Model
	spinner    spinner.Model
	help       help.Model
	keys       keyMap
	preset     string
	location   string
	err        error
	logger     *log.Logger
}

// NewModel creates a new TUI model with one submitter per action sharing a single set of controls.
func NewModel(ctx context.Context, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	navigator := opts.Navigator
	if navigator == nil {
		navigator = rant.NavigatorFunc(shared.OpenBrowser)
	}

	controls := rant.NewControls()
	items, selected := playlistItems(nil, opts.Preset)

	playlists := list.New(items, list.NewDefaultDelegate(), defaultWidth, defaultHeight)
	playlists.Title = "Playlists"
	playlists.SetShowHelp(false)
	playlists.Select(selected)

	m := &Model{
		ctx:        ctx,
		source:     opts.Source,
		client:     opts.Client,
		navigator:  navigator,
		controls:   controls,
		submitters: rant.NewSubmitters(controls, opts.Form),
		link:       rant.NewLink(opts.LinkBase),
		playlists:  playlists,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:       help.New(),
		keys:       newKeyMap(),
		preset:     opts.Preset,
		logger:     logger,
	}
	m.syncLink()
	return m
}

// Init loads the playlist options.
func (m *Model) Init() tea.Cmd {
	return m.fetchPlaylists()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.playlists.SetSize(max(msg.Width-4, 10), max(msg.Height-12, 4))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case spinner.TickMsg:
		if !m.controls.View().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateList(msg)
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.playlists.FilterState() == list.Filtering {
		return m.updateList(msg)
	}

	if action, ok := m.keys.action(msg); ok {
		return m, m.click(action)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.open):
		return m, m.openLink(m.link.Href())
	}

	return m.updateList(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgPlaylistsFetched:
		data := msg.data.(playlistsFetched)
		if data.err != nil {
			m.logger.Error("failed to load playlists", "error", data.err)
			m.err = data.err
			return m, nil
		}
		m.err = nil
		items, selected := playlistItems(data.playlists, m.preset)
		cmd := m.playlists.SetItems(items)
		m.playlists.Select(selected)
		m.syncLink()
		m.logger.Debug("playlists loaded", "count", len(data.playlists))
		return m, cmd

	case MsgRantCompleted:
		data := msg.data.(rantCompleted)
		location := m.controls.Complete(data.outcome)
		if location == "" {
			return m, nil
		}
		m.location = location
		m.logger.Info("session expired, opening login", "id", data.request.ID, "location", location)
		return m, m.navigateAndQuit(location)

	case MsgLinkOpened:
		if err, _ := msg.data.(error); err != nil {
			m.logger.Error("failed to open link", "error", err)
			m.err = err
		}
		return m, nil
	}
	return m, nil
}

// click runs the submitter bound to action against the current selection.
func (m *Model) click(action rant.Action) tea.Cmd {
	for _, s := range m.submitters {
		if s.Action() != action {
			continue
		}
		req, ok := s.Click(m.Selection())
		if !ok {
			return nil
		}
		m.logger.Debug("rant requested", "id", req.ID, "action", action, "playlist", req.Form.Playlist())
		return tea.Batch(m.spinner.Tick, m.submit(req))
	}
	return nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.playlists, cmd = m.playlists.Update(msg)
	m.syncLink()
	return m, cmd
}

func (m *Model) syncLink() {
	m.link.Update(m.Selection())
}

func (m *Model) fetchPlaylists() tea.Cmd {
	source := m.source
	if source == nil {
		return nil
	}
	return func() tea.Msg {
		playlists, err := source.GetPlaylists(m.ctx)
		return playlistsFetchedMsg(playlists, err)
	}
}

func (m *Model) submit(req rant.Request) tea.Cmd {
	return func() tea.Msg {
		return rantCompletedMsg(req, m.client.Submit(m.ctx, req))
	}
}

func (m *Model) openLink(href string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg(m.navigator.Navigate(href))
	}
}

func (m *Model) navigateAndQuit(location string) tea.Cmd {
	return func() tea.Msg {
		if err := m.navigator.Navigate(location); err != nil {
			m.logger.Error("failed to open login page", "location", location, "error", err)
		}
		return tea.Quit()
	}
}

// Selection returns the selected playlist identifier, or "" when none is selected.
func (m *Model) Selection() string {
	if item, ok := m.playlists.SelectedItem().(playlistItem); ok {
		return item.playlist.ID
	}
	return ""
}

// Controls returns the current state of the action controls.
func (m *Model) Controls() rant.View {
	return m.controls.View()
}

// Location is the login URL the user was sent to, set when a submission came back unauthenticated.
func (m *Model) Location() string {
	return m.location
}

// Link returns the current playlist link target.
func (m *Model) Link() string {
	return m.link.Href()
}

// Err returns the last playlist loading or link error.
func (m *Model) Err() error {
	return m.err
}

// View renders the selector, controls, result area, link and help.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("rantify"))
	b.WriteString("\n")
	b.WriteString(m.playlists.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n\n")

	if out := m.renderOutput(); out != "" {
		b.WriteString(out)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "Playlist: %s\n", styles.link.Render(m.link.Href()))

	if m.err != nil {
		b.WriteString(styles.warn.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderControls() string {
	style := styles.control
	if !m.controls.Enabled() {
		style = styles.disabled
	}

	buttons := make([]string, len(m.submitters))
	for i, s := range m.submitters {
		a := s.Action()
		buttons[i] = style.Render(fmt.Sprintf("[%s] %s", a.Key(), a.Title()))
	}
	return strings.Join(buttons, " ")
}

func (m *Model) renderOutput() string {
	view := m.controls.View()
	switch {
	case view.Loading:
		return m.spinner.View() + " Generating..."
	case view.Error != "":
		return styles.err.Render(view.Error)
	default:
		return view.Result
	}
}
