package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/desertthunder/rantify/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthStatus checks the stored session by requesting the server root without following redirects.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if !r.api.HasSession() {
		r.logger.Warn("no session cookie configured; run `rantify setup session`")
	}

	r.logger.Info("checking auth status", "server", r.api.URL("/"))

	resp, err := r.api.Get(ctx, "/")
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}

	loginPath := r.config.Server.LoginPath

	switch {
	case resp.StatusCode == http.StatusOK:
		return r.writePlain("✓ Authenticated with %s\n", r.api.URL("/"))
	case resp.StatusCode == http.StatusUnauthorized,
		isRedirect(resp.StatusCode) && strings.Contains(resp.Location(), loginPath):
		r.writePlain("✗ Not authenticated\n")
		return fmt.Errorf("%w: log in at %s", shared.ErrNotAuthenticated, r.api.URL(loginPath))
	default:
		return fmt.Errorf("%w: status %d", shared.ErrServiceUnavailable, resp.StatusCode)
	}
}

// AuthLogin opens the rant server's login page.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	location := r.api.URL(r.config.Server.LoginPath)
	r.logger.Info("opening login page", "location", location)
	r.writePlain("→ Opening login page %s ...\n", location)

	if err := r.navigator.Navigate(location); err != nil {
		r.logger.Warn("failed to open browser automatically", "error", err)
		return r.writePlain("Please open this URL in your browser:\n%s\n", location)
	}
	return r.writePlain("→ Log in, then run `rantify setup session` with the copied request\n")
}

func isRedirect(status int) bool {
	return status >= 300 && status < 400
}
