package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/rantify/internal/rant"
	"github.com/desertthunder/rantify/internal/services"
	"github.com/desertthunder/rantify/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

const defaultConfigPath = "config.toml"

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	playlists  services.PlaylistSource
	api        *services.RantAPI
	navigator  rant.Navigator
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Playlists  services.PlaylistSource
	API        *services.RantAPI
	Navigator  rant.Navigator
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Navigator == nil {
		opts.Navigator = rant.NavigatorFunc(shared.OpenBrowser)
	}
	if opts.API == nil {
		server := opts.Config.Server
		opts.API = services.NewRantAPI(server.BaseURL, server.SessionCookie, opts.HTTPClient).
			WithCookieName(server.CookieName)
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		playlists:  opts.Playlists,
		api:        opts.API,
		navigator:  opts.Navigator,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := rantCommands(r)
	for _, fn := range [](func(*Runner) *cli.Command){
		linkCommand, tuiCommand, authCommand, spotifyCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// resolveConfigPath prefers the --config flag, then the runner's path, then config.toml.
func (r *Runner) resolveConfigPath(cmd *cli.Command) string {
	if path := cmd.String("config"); path != "" {
		return path
	}
	if r.configPath != "" {
		return r.configPath
	}
	return defaultConfigPath
}

// useConfigAt switches the runner to the config stored at the path resolved from cmd.
func (r *Runner) useConfigAt(cmd *cli.Command) (string, error) {
	path := r.resolveConfigPath(cmd)

	current := r.configPath
	if current == "" {
		current = defaultConfigPath
	}

	if path != current {
		config, err := shared.LoadOrDefault(path)
		if err != nil {
			return "", fmt.Errorf("%w: %v", shared.ErrInvalidConfig, err)
		}
		r.logger.Debug("switched config", "from", current, "to", path)
		r.config = config
	}

	r.configPath = path
	return path, nil
}

// saveTokens stores token in the Spotify credentials and writes the config file.
func (r *Runner) saveTokens(token *oauth2.Token) error {
	if err := r.config.Credentials.Spotify.Update(token); err != nil {
		return fmt.Errorf("failed to update spotify configuration: %w", err)
	}

	path := r.configPath
	if path == "" {
		path = defaultConfigPath
	}
	if err := shared.SaveConfig(path, r.config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
