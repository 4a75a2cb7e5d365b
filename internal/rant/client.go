package rant

import (
	"context"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/rantify/internal/services"
	"github.com/desertthunder/rantify/internal/shared"
)

// Poster sends form submissions to the rant server.
type Poster interface {
	PostForm(ctx context.Context, path string, form url.Values) (*services.APIResponse, error)
	URL(path string) string
}

// Navigator opens a URL outside the client, typically in the system browser.
type Navigator interface {
	Navigate(url string) error
}

// NavigatorFunc adapts a function to [Navigator].
type NavigatorFunc func(url string) error

func (f NavigatorFunc) Navigate(url string) error { return f(url) }

// Client reduces a submission's HTTP exchange to an [Outcome].
type Client struct {
	poster    Poster
	loginPath string
	logger    *log.Logger
}

// NewClient creates a client posting through poster. An empty loginPath defaults to [LoginPath].
func NewClient(poster Poster, loginPath string, logger *log.Logger) *Client {
	if loginPath == "" {
		loginPath = LoginPath
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{poster: poster, loginPath: loginPath, logger: logger}
}

// Submit posts req and classifies the response. It never retries and sets no timeout of its own.
func (c *Client) Submit(ctx context.Context, req Request) Outcome {
	logger := shared.WithLogger(c.logger, "id", req.ID, "action", req.Action)
	logger.Debug("submitting rant", "endpoint", req.Endpoint(), "playlist", req.Form.Playlist())

	resp, err := c.poster.PostForm(ctx, req.Endpoint(), req.Form.Values())
	if err != nil {
		logger.Debug("rant submission failed", "error", err)
		return Failure{Message: FailureMessage, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		logger.Info("session expired", "status", resp.StatusCode)
		return Unauthenticated{Location: c.poster.URL(c.loginPath)}
	case resp.OK():
		logger.Info("rant received", "status", resp.StatusCode, "bytes", len(resp.Body))
		return Success{Content: string(resp.Body)}
	default:
		logger.Debug("rant rejected", "status", resp.StatusCode)
		return Failure{Message: FailureMessage}
	}
}
