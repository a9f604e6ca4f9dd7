package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/quornholt/sheetlist/internal/server"
	"github.com/quornholt/sheetlist/internal/services"
	"github.com/quornholt/sheetlist/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// authTimeout bounds how long the login command waits for the browser callback.
const authTimeout = 3 * time.Minute

// AuthLogin performs the OAuth2 authorization-code flow for Spotify.
//
// Starts a loopback HTTP server on the configured redirect URI, opens the
// browser for user authorization, and saves the exchanged tokens back to
// the config file.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	config := r.config
	if _, err := os.Stat(configPath); err == nil {
		if loaded, err := shared.LoadConfig(configPath); err == nil {
			config = loaded
		} else {
			r.logger.Warn("failed to load config, using current", "error", err)
		}
	}

	if config.Credentials.Spotify.ClientID == "" || config.Credentials.Spotify.ClientSecret == "" {
		return fmt.Errorf("%w: Spotify client_id and client_secret must be set in %s", shared.ErrMissingCredentials, configPath)
	}

	svc, err := services.NewSpotifyService(config.Credentials.Spotify.Map())
	if err != nil {
		return fmt.Errorf("failed to create Spotify service: %w", err)
	}

	token, err := r.doOAuth(ctx, svc, cmd.Bool("no-browser"))
	if err != nil {
		return err
	}

	if err := config.Credentials.Spotify.Update(token); err != nil {
		return fmt.Errorf("failed to update spotify configuration: %w", err)
	}

	if err := shared.SaveConfig(configPath, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	r.config = config
	r.spotify = svc

	r.writePlainln("✓ Authorization successful")
	r.writePlain("✓ Tokens saved to %s\n\n", configPath)
	r.writePlain("You can now use: sheetlist create <file.tsv> --name \"My Playlist\"\n")

	return nil
}

// doOAuth drives the authorization-code flow against the loopback callback
// server and installs the exchanged token on the service.
func (r *Runner) doOAuth(ctx context.Context, svc *services.SpotifyService, noBrowser bool) (*oauth2.Token, error) {
	oauthConfig := svc.OAuthConfig()

	addr, path, err := callbackAddr(oauthConfig.RedirectURL)
	if err != nil {
		return nil, err
	}

	state := shared.GenerateID()
	handler := server.NewOAuthHandler(oauthConfig, state)
	callback := server.NewCallbackServer(addr, path, handler)
	serverErr := callback.Start()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := callback.Shutdown(shutdownCtx); err != nil {
			r.logger.Debug("callback server shutdown", "error", err)
		}
	}()

	authURL := svc.GetAuthURL(state)
	if noBrowser {
		r.writePlain("Open this URL in your browser to authorize:\n\n%s\n\n", authURL)
	} else {
		r.writePlain("Opening browser for Spotify authorization...\n")
		if err := shared.OpenBrowser(authURL); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
			r.writePlain("Open this URL in your browser to authorize:\n\n%s\n\n", authURL)
		}
	}

	r.writePlain("Waiting for authorization callback on %s...\n", addr)

	select {
	case result := <-handler.Result():
		if err := result.Error(); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
		}
		svc.UseToken(ctx, result.Token)
		return result.Token, nil
	case err := <-serverErr:
		return nil, fmt.Errorf("%w: callback server failed: %v", shared.ErrAuthFailed, err)
	case <-time.After(authTimeout):
		return nil, fmt.Errorf("%w: no authorization callback received within %s", shared.ErrTimeout, authTimeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// AuthStatus reports whether a token is saved and when it expires.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	spotify := r.config.Credentials.Spotify

	if spotify.ClientID == "" || spotify.ClientSecret == "" {
		r.writePlain("✗ Spotify credentials not configured\n")
		r.writePlain("Run 'sheetlist setup' and add your client_id and client_secret.\n")
		return nil
	}

	token := spotify.Token()
	if token == nil {
		r.writePlain("✗ Not authenticated\n")
		r.writePlain("Run 'sheetlist auth login' to authorize.\n")
		return nil
	}

	r.writePlain("✓ Token saved\n")
	switch {
	case token.Expiry.IsZero():
		r.writePlain("Expiry: unknown\n")
	case time.Now().After(token.Expiry):
		if token.RefreshToken != "" {
			r.writePlain("Expiry: %s (expired; will refresh automatically)\n", token.Expiry.Format(time.RFC3339))
		} else {
			r.writePlain("Expiry: %s (expired; run 'sheetlist auth login')\n", token.Expiry.Format(time.RFC3339))
		}
	default:
		r.writePlain("Expiry: %s\n", token.Expiry.Format(time.RFC3339))
	}

	return nil
}

// callbackAddr extracts the host:port and path the loopback server should
// bind from the configured redirect URI.
func callbackAddr(redirectURI string) (addr, path string, err error) {
	parsed, err := url.Parse(redirectURI)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid redirect_uri: %v", shared.ErrInvalidConfig, err)
	}
	if parsed.Host == "" {
		return "", "", fmt.Errorf("%w: redirect_uri missing host", shared.ErrInvalidConfig)
	}
	path = parsed.Path
	if path == "" {
		path = "/callback"
	}
	return parsed.Host, path, nil
}
