// Package auth runs the OAuth2 installed-app flow for Google Calendar and
// caches the resulting token next to the client credentials.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/harrisonrobin/planus/pkg/logging"
)

const (
	// ClientSecretsFile holds the downloaded Google API credentials.
	ClientSecretsFile = "credentials.json"

	// TokenFile caches the access and refresh token.
	TokenFile = "token.json"

	// LocalhostAuthPort receives the OAuth redirect.
	LocalhostAuthPort = "6789"

	authTimeout = 5 * time.Minute
)

// Scopes are the Calendar scopes the export needs.
var Scopes = []string{calendar.CalendarEventsScope, calendar.CalendarReadonlyScope}

// Config reads {dir}/credentials.json and pins its redirect to the local callback.
func Config(dir string, logger *logging.Logger, scopes []string) (*oauth2.Config, error) {
	secretsFile := filepath.Join(dir, ClientSecretsFile)
	b, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file %s: %w", secretsFile, err)
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}
	config.RedirectURL = normalizeRedirect(config.RedirectURL, logger)
	return config, nil
}

// normalizeRedirect forces localhost and out-of-band redirects onto
// LocalhostAuthPort, where the callback server listens.
func normalizeRedirect(redirect string, logger *logging.Logger) string {
	if redirect == "urn:ietf:wg:oauth:2.0:oob" {
		forced := fmt.Sprintf("http://localhost:%s/oauth2callback", LocalhostAuthPort)
		logger.Info("overriding out-of-band redirect", "redirect_url", forced)
		return forced
	}

	parsed, err := url.Parse(redirect)
	if err != nil {
		logger.Warn("could not parse redirect URL, using it as is", "redirect_url", redirect, "error", err)
		return redirect
	}
	if parsed.Hostname() != "localhost" && parsed.Hostname() != "127.0.0.1" {
		logger.Warn("redirect URL is not a localhost callback", "redirect_url", redirect)
		return redirect
	}
	if port := parsed.Port(); port != LocalhostAuthPort {
		if port != "" {
			logger.Warn("redirect port mismatch, forcing callback port", "configured", port, "expected", LocalhostAuthPort)
		}
		parsed.Host = net.JoinHostPort(parsed.Hostname(), LocalhostAuthPort)
	}
	return parsed.String()
}

// Client returns an authorized HTTP client. It uses the cached token in dir
// and runs the browser flow when there is none.
func Client(ctx context.Context, dir string, logger *logging.Logger, scopes []string) (*http.Client, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}
	config, err := Config(dir, logger, scopes)
	if err != nil {
		return nil, err
	}

	tokenFile := filepath.Join(dir, TokenFile)
	tok, err := LoadToken(tokenFile)
	if err != nil {
		logger.Info("no cached token, starting web authorization", "token_file", tokenFile)
		tok, err = tokenFromWeb(ctx, config, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to get token from web: %w", err)
		}
		if err := SaveToken(tokenFile, tok); err != nil {
			return nil, err
		}
	}

	source := config.TokenSource(ctx, tok)
	current, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	if current.AccessToken != tok.AccessToken || current.RefreshToken != tok.RefreshToken {
		logger.Info("token refreshed, updating cache", "token_file", tokenFile)
		if err := SaveToken(tokenFile, current); err != nil {
			logger.Warn("could not cache refreshed token", "error", err)
		}
	}
	return oauth2.NewClient(ctx, oauth2.ReuseTokenSource(current, source)), nil
}

// CalendarService returns an authorized Calendar service.
func CalendarService(ctx context.Context, dir string, logger *logging.Logger) (*calendar.Service, error) {
	client, err := Client(ctx, dir, logger, Scopes)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated client for Calendar API: %w", err)
	}
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve Google Calendar service: %w", err)
	}
	return srv, nil
}

// ResetToken deletes the cached token so the next Client call re-authorizes.
// A missing token is not an error.
func ResetToken(dir string) (bool, error) {
	err := os.Remove(filepath.Join(dir, TokenFile))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("could not delete token file: %w", err)
	}
}

func tokenFromWeb(ctx context.Context, config *oauth2.Config, logger *logging.Logger) (*oauth2.Token, error) {
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	listener, err := net.Listen("tcp", ":"+LocalhostAuthPort)
	if err != nil {
		return nil, fmt.Errorf("failed to start listener on port %s: %w", LocalhostAuthPort, err)
	}

	server := &http.Server{
		Handler:      callbackHandler(codeCh, errCh),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()
	defer server.Shutdown(context.Background())

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	fmt.Printf("Open the following URL in your browser to authorize planus:\n%s\n", authURL)
	logger.Info("waiting for authorization code", "redirect_url", config.RedirectURL)

	ctx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	select {
	case code := <-codeCh:
		tok, err := config.Exchange(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve token from Google: %w", err)
		}
		return tok, nil
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, fmt.Errorf("authorization aborted: %w", ctx.Err())
	}
}

func callbackHandler(codeCh chan<- string, errCh chan<- error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "Authorization code not found", http.StatusBadRequest)
			select {
			case errCh <- errors.New("authorization code not found in redirect URL"):
			default:
			}
			return
		}
		fmt.Fprint(w, "Authentication successful! You can close this window.")
		select {
		case codeCh <- code:
		default:
		}
	})
}

// LoadToken reads a cached token.
func LoadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token from file %s: %w", path, err)
	}
	return tok, nil
}

// SaveToken writes a token readable only by its owner.
func SaveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("could not create token directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth token to %s: %w", path, err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}
