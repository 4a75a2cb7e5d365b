package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/rantify/internal/services"
	"github.com/desertthunder/rantify/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config, err := shared.LoadOrDefault(defaultConfigPath)
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		config = shared.DefaultConfig()
	}

	if err := shared.SetLogLevel(logger, config.Log.Level); err != nil {
		logger.Warn("ignoring log level", "error", err)
	}

	logger.Debug("rant server", "base_url", config.Server.BaseURL, "login", config.Server.LoginURL())

	var playlists services.PlaylistSource
	if config.Credentials.Spotify.HasCredentials() {
		if svc, err := services.NewSpotifyService(config.Credentials.Spotify.Map()); err == nil {
			if token := config.Credentials.Spotify.Token(); token != nil {
				if err := svc.OAuthenticate(context.Background(), token); err != nil {
					logger.Warn("failed to restore spotify token", "error", err)
				}
			}
			playlists = svc.OwnedOnly(config.Credentials.Spotify.OwnedOnly)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: defaultConfigPath,
		Playlists:  playlists,
		Logger:     logger,
	})

	if err := rootCommand(runner).Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		}
		logger.Fatalf("application error: %v", err)
	}
}
