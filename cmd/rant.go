package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/rantify/internal/rant"
	"github.com/desertthunder/rantify/internal/shared"
	"github.com/urfave/cli/v3"
)

// rantResult is the --json output of a rant command.
type rantResult struct {
	ID       string `json:"id"`
	Action   string `json:"action"`
	Playlist string `json:"playlist"`
	Result   string `json:"result"`
}

// Rant returns the action of the command bound to action.
//
// It runs one click-to-completion cycle through a [rant.Submitter] and prints the server's reply.
func (r *Runner) Rant(action rant.Action) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		form, err := r.rantForm(cmd.StringSlice("field"))
		if err != nil {
			return err
		}

		controls := rant.NewControls()
		submitter := rant.NewSubmitter(action, controls, form)

		req, ok := submitter.Click(cmd.String("playlist"))
		if !ok {
			return fmt.Errorf("%w: %s", shared.ErrMissingArgument, controls.View().Error)
		}

		r.logger.Info("submitting rant", "id", req.ID, "action", action, "playlist", req.Form.Playlist())

		client := rant.NewClient(r.api, r.config.Server.LoginPath, r.logger)
		outcome := client.Submit(ctx, req)

		if location := controls.Complete(outcome); location != "" {
			r.writePlain("Session expired. Opening %s\n", location)
			if err := r.navigator.Navigate(location); err != nil {
				r.logger.Warn("failed to open browser", "error", err)
			}
			return fmt.Errorf("%w: log in at %s", shared.ErrNotAuthenticated, location)
		}

		view := controls.View()
		if view.Error != "" {
			if failure, ok := outcome.(rant.Failure); ok && failure.Err != nil {
				return fmt.Errorf("%w: %s: %v", shared.ErrAPIRequest, view.Error, failure.Err)
			}
			return fmt.Errorf("%w: %s", shared.ErrAPIRequest, view.Error)
		}

		if cmd.Bool("json") {
			return r.writeJSON(rantResult{
				ID:       req.ID,
				Action:   action.String(),
				Playlist: req.Form.Playlist(),
				Result:   view.Result,
			}, true)
		}
		return r.writePlain("%s\n", view.Result)
	}
}

// rantForm merges the configured form fields with --field pairs; flags win.
func (r *Runner) rantForm(pairs []string) (rant.Form, error) {
	extra, err := rant.ParseFields(pairs)
	if err != nil {
		return rant.Form{}, fmt.Errorf("%w: %v", shared.ErrInvalidArgument, err)
	}

	fields := make(map[string]string, len(r.config.Rant.Fields)+len(extra))
	for k, v := range r.config.Rant.Fields {
		fields[k] = v
	}
	for k, v := range extra {
		fields[k] = v
	}
	return rant.NewForm(fields), nil
}

// Link prints the link target for --playlist, optionally opening it.
func (r *Runner) Link(ctx context.Context, cmd *cli.Command) error {
	href := rant.NewLink(r.config.Links.BaseURL).Update(cmd.String("playlist"))

	if cmd.Bool("open") {
		if err := r.navigator.Navigate(href); err != nil {
			return fmt.Errorf("failed to open link: %w", err)
		}
	}
	return r.writePlain("%s\n", href)
}
