// Package services implements the network collaborators of the rantify client.
//
// # Rant Server
//
// [RantAPI] is a thin HTTP client for the rant server. It attaches the session cookie to every request,
// posts form-encoded bodies, and returns raw [APIResponse] values. Interpreting status codes is left to
// package rant, which maps them onto its outcome variants.
//
// [RantAPI.Get] does not follow redirects so that callers can tell a login redirect from a rendered page.
//
// No client-side timeout is configured by default: requests run until the server answers or the caller's
// context is cancelled.
//
// # Spotify Playlist Source
//
// [SpotifyService] implements [PlaylistSource] and [OAuthService] on top of the Spotify Web API.
// It uses OAuth2 for authentication with automatic token refresh via [oauth2.Config.Client].
//
// Playlist pages are fetched through a [rate.Limiter] to stay under the API's request budget.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrNotAuthenticated] : no token installed
//   - [shared.ErrTokenExpired] : Spotify answered 401, reauthorization needed
//   - [shared.ErrAPIRequest] : HTTP request failed or returned an error status
package services
