// HTTP transport for the rant server
package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultCookieName is the name of the rant server's session cookie.
const DefaultCookieName = "user_session"

// RantAPI performs raw HTTP requests against the rant server on behalf of a logged-in session.
type RantAPI struct {
	baseURL    string
	cookieName string
	session    string
	httpClient *http.Client
}

// NewRantAPI creates a new rant server client.
//
// An empty baseURL defaults to the local development server and a nil client to [http.DefaultClient].
func NewRantAPI(baseURL, session string, client *http.Client) *RantAPI {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:5000"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &RantAPI{
		baseURL:    strings.TrimRight(baseURL, "/"),
		cookieName: DefaultCookieName,
		session:    session,
		httpClient: client,
	}
}

// WithCookieName overrides the session cookie name.
func (a *RantAPI) WithCookieName(name string) *RantAPI {
	if name != "" {
		a.cookieName = name
	}
	return a
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// OK reports whether the status code is 2xx.
func (r *APIResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Location returns the Location header, if any.
func (r *APIResponse) Location() string {
	return r.Headers.Get("Location")
}

// URL resolves path against the base URL.
func (a *RantAPI) URL(path string) string {
	return a.baseURL + "/" + strings.TrimLeft(path, "/")
}

// HasSession reports whether a session cookie is configured.
func (a *RantAPI) HasSession() bool {
	return a.session != ""
}

// Get performs a GET request to the specified path without following redirects.
func (a *RantAPI) Get(ctx context.Context, path string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.URL(path), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	client := *a.httpClient
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return a.do(&client, req)
}

// PostForm performs a POST with form as an application/x-www-form-urlencoded body.
func (a *RantAPI) PostForm(ctx context.Context, path string, form url.Values) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.URL(path), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	return a.do(a.httpClient, req)
}

func (a *RantAPI) do(client *http.Client, req *http.Request) (*APIResponse, error) {
	if a.session != "" {
		req.AddCookie(&http.Cookie{Name: a.cookieName, Value: a.session})
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}
