// submodule cmd contains command definitions
package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/rantify/internal/rant"
	"github.com/desertthunder/rantify/internal/shared"
	"github.com/urfave/cli/v3"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   defaultConfigPath,
	}
}

func playlistFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:     "playlist",
		Aliases:  []string{"p"},
		Usage:    "Spotify playlist ID",
		Required: required,
	}
}

// rootCommand assembles the application command.
func rootCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "rantify",
		Usage:   "Have your Spotify playlists rated, roasted or rhymed",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, shared.SetLogLevel(r.logger, cmd.String("log-level"))
		},
		Commands: r.register(),
	}
}

// rantCommands builds the rate, roast and rhyme commands.
func rantCommands(r *Runner) []*cli.Command {
	commands := make([]*cli.Command, 0, len(rant.Actions))
	for _, action := range rant.Actions {
		commands = append(commands, &cli.Command{
			Name:  action.String(),
			Usage: fmt.Sprintf("%s a playlist", action.Title()),
			Flags: []cli.Flag{
				playlistFlag(false),
				&cli.StringSliceFlag{
					Name:    "field",
					Aliases: []string{"f"},
					Usage:   "Extra form field as key=value (repeatable)",
				},
				&cli.BoolFlag{
					Name:  "json",
					Usage: "Output JSON",
				},
			},
			Action: r.Rant(action),
		})
	}
	return commands
}

// linkCommand prints (or opens) the link for a playlist.
func linkCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "link",
		Usage: "Print the Spotify link for a playlist",
		Flags: []cli.Flag{
			playlistFlag(false),
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the link in the browser",
			},
		},
		Action: r.Link,
	}
}

// tuiCommand returns the top-level TUI command.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive playlist ranter",
		Flags:   []cli.Flag{playlistFlag(false)},
		Action:  r.TUI,
	}
}

// authCommand handles rant server session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the rant server session",
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Check whether the stored session is still valid",
				Action: r.AuthStatus,
			},
			{
				Name:   "login",
				Usage:  "Open the rant server login page",
				Action: r.AuthLogin,
			},
		},
	}
}

// spotifyCommand handles Spotify operations
func spotifyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "spotify",
		Aliases: []string{"spot"},
		Usage:   "Spotify playlist operations",
		Commands: []*cli.Command{
			{
				Name:   "auth",
				Usage:  "Authenticate with Spotify using OAuth2",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SpotifyAuth,
			},
			{
				Name:  "playlists",
				Usage: "List Spotify playlists available for selection",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of playlists to return",
						Value: 50,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.SpotifyPlaylists,
			},
		},
	}
}

// setupCommand handles configuration and session setup.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write an example configuration file",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupConfig,
			},
			{
				Name:  "session",
				Usage: "Store the rant server session cookie from a browser request",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:  "curl",
						Usage: "cURL command from browser DevTools (Copy as cURL)",
					},
					&cli.StringFlag{
						Name:  "curl-file",
						Usage: "Path to .sh file containing cURL command",
					},
					&cli.BoolFlag{
						Name:  "set-base-url",
						Usage: "Also use the request's origin as the server base URL",
					},
				},
				Action: r.SetupSession,
			},
		},
	}
}
