package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/rantify/internal/services"
	"github.com/desertthunder/rantify/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the example configuration file.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := r.resolveConfigPath(cmd)

	if err := shared.CreateConfigFile(path); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidConfig, err)
	}

	r.logger.Info("config file created", "path", path)
	r.writePlain("✓ Config written to %s\n", path)
	r.writePlain("Next: add your Spotify credentials, then run `rantify setup session`\n")
	return nil
}

// SetupSession stores the rant server session cookie taken from a browser "Copy as cURL" command.
func (r *Runner) SetupSession(ctx context.Context, cmd *cli.Command) error {
	curlCmd := cmd.String("curl")
	curlFile := cmd.String("curl-file")

	if curlCmd == "" && curlFile == "" {
		return fmt.Errorf("%w: either --curl or --curl-file must be provided", shared.ErrMissingArgument)
	}

	if curlCmd != "" && curlFile != "" {
		return fmt.Errorf("%w: cannot specify both --curl and --curl-file", shared.ErrInvalidArgument)
	}

	path, err := r.useConfigAt(cmd)
	if err != nil {
		return err
	}

	var curlHeaders *shared.CurlHeaders

	if curlFile != "" {
		curlHeaders, err = shared.ParseCurlFile(curlFile)
		if err != nil {
			return fmt.Errorf("failed to parse cURL file: %w", err)
		}
		r.logger.Info("parsed cURL from file", "file", curlFile)
	} else {
		curlHeaders, err = shared.ParseCurlCommand([]byte(curlCmd))
		if err != nil {
			return fmt.Errorf("failed to parse cURL command: %w", err)
		}
		r.logger.Info("parsed cURL command")
	}

	cookieName := r.config.Server.CookieName
	if cookieName == "" {
		cookieName = services.DefaultCookieName
	}

	session, err := curlHeaders.CookieValue(cookieName)
	if err != nil {
		return err
	}

	r.config.Server.SessionCookie = session
	if cmd.Bool("set-base-url") {
		if origin := curlHeaders.Origin(); origin != "" {
			r.config.Server.BaseURL = origin
		} else {
			r.logger.Warn("cURL command has no URL; keeping base URL", "base_url", r.config.Server.BaseURL)
		}
	}

	if err := shared.SaveConfig(path, r.config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	r.logger.Debug("session stored", "cookie", cookieName, "length", len(session))

	r.writePlain("✓ Session saved to %s\n", path)
	r.writePlain("Server: %s (login at %s)\n", r.config.Server.BaseURL, r.config.Server.LoginURL())
	r.writePlain("Check it with: rantify auth status\n")
	return nil
}
