package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/rantify/internal/rant"
	"github.com/desertthunder/rantify/internal/shared"
	"github.com/desertthunder/rantify/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	form, err := r.rantForm(nil)
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Log.TUIFile)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	fileLogger.SetLevel(r.logger.GetLevel())
	r.SetLogger(fileLogger)

	if r.playlists == nil {
		r.logger.Warn("no playlist source configured; run `rantify spotify auth` to list playlists")
	}

	model := ui.NewModel(ctx, ui.Options{
		Source:    r.playlists,
		Client:    rant.NewClient(r.api, r.config.Server.LoginPath, r.logger),
		Navigator: r.navigator,
		Form:      form,
		LinkBase:  r.config.Links.BaseURL,
		Preset:    cmd.String("playlist"),
		Logger:    r.logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if location := model.Location(); location != "" {
		return fmt.Errorf("%w: session expired, log in at %s", shared.ErrNotAuthenticated, location)
	}
	return nil
}
