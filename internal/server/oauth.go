package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"sync/atomic"

	"golang.org/x/oauth2"
)

var (
	ErrStateMismatch    = errors.New("callback state does not match")
	ErrAccessDenied     = errors.New("authorization denied")
	ErrExchangeFailed   = errors.New("token exchange failed")
	ErrCallbackConsumed = errors.New("callback already processed")
)

// OAuthResult is what the callback delivered: a token or the reason there is none.
type OAuthResult struct {
	Token *oauth2.Token
	err   error
}

func (o OAuthResult) Error() error {
	return o.err
}

// Exchanger trades an authorization code for a token. [oauth2.Config] satisfies it.
type Exchanger interface {
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
}

// OAuthHandler serves the Spotify redirect of the authorization code flow.
// It accepts exactly one callback and publishes its result on [OAuthHandler.Result].
type OAuthHandler struct {
	exchanger Exchanger
	state     string
	consumed  atomic.Bool
	results   chan OAuthResult
	once      sync.Once
}

// NewOAuthHandler creates a handler that only accepts callbacks carrying state.
func NewOAuthHandler(exchanger Exchanger, state string) *OAuthHandler {
	return &OAuthHandler{
		exchanger: exchanger,
		state:     state,
		results:   make(chan OAuthResult, 1),
	}
}

func (h *OAuthHandler) Routes() []string {
	return []string{"/callback"}
}

func (h *OAuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.consumed.CompareAndSwap(false, true) {
		renderCallback(w, http.StatusBadRequest, ErrCallbackConsumed)
		return
	}

	token, status, err := h.callback(r)
	h.Send(OAuthResult{Token: token, err: err})
	renderCallback(w, status, err)
}

// callback validates the redirect and exchanges its code.
func (h *OAuthHandler) callback(r *http.Request) (*oauth2.Token, int, error) {
	query := r.URL.Query()

	if query.Get("state") != h.state {
		return nil, http.StatusBadRequest, ErrStateMismatch
	}

	code := query.Get("code")
	if code == "" {
		return nil, http.StatusBadRequest, fmt.Errorf("%w: %s - %s",
			ErrAccessDenied, query.Get("error"), query.Get("error_description"))
	}

	token, err := h.exchanger.Exchange(r.Context(), code)
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("%w: %w", ErrExchangeFailed, err)
	}
	return token, http.StatusOK, nil
}

// Send publishes result; only the first call has an effect.
func (h *OAuthHandler) Send(result OAuthResult) {
	h.once.Do(func() {
		h.results <- result
		close(h.results)
	})
}

// Result yields exactly one result and is then closed.
func (h *OAuthHandler) Result() <-chan OAuthResult {
	return h.results
}

var callbackPage = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html>
<head><title>rantify</title></head>
<body style="font-family: sans-serif; text-align: center; margin-top: 20vh">
{{- if .Err}}
    <h1 style="color: #e22134">Spotify not connected</h1>
    <p>{{.Err}}</p>
    <p>Run <code>rantify spotify auth</code> to try again.</p>
{{- else}}
    <h1 style="color: #1DB954">Spotify connected</h1>
    <p>Your playlists are now available in rantify. You can close this window.</p>
{{- end}}
</body>
</html>
`))

func renderCallback(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	callbackPage.Execute(w, struct{ Err error }{err})
}
