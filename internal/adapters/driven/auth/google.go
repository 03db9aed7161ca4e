// Package auth implements the Google OAuth authorizer backed by a
// persistent token store.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"github.com/calmskies/deskboard/internal/adapters/driving/oauth"
	"github.com/calmskies/deskboard/internal/core/domain"
	"github.com/calmskies/deskboard/internal/core/ports/driven"
	"github.com/calmskies/deskboard/internal/logger"
)

// ProviderID identifies the Google Calendar session in the token store.
const ProviderID = "google-calendar"

// callbackTimeout bounds how long sign-in waits for the browser redirect.
const callbackTimeout = 3 * time.Minute

// Ensure Google implements the Authorizer interface.
var _ driven.Authorizer = (*Google)(nil)

// Google runs the OAuth authorization code flow with PKCE against
// Google's endpoints and persists the resulting tokens.
type Google struct {
	clientID     string
	clientSecret string
	tokens       driven.TokenStore

	mu sync.Mutex
}

// NewGoogle creates a Google authorizer. The client ID and secret come
// from the user's own OAuth app registration.
func NewGoogle(clientID, clientSecret string, tokens driven.TokenStore) *Google {
	return &Google{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokens:       tokens,
	}
}

// config builds the oauth2 configuration for the given redirect URI.
func (g *Google) config(redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     g.clientID,
		ClientSecret: g.clientSecret,
		Endpoint:     googleoauth.Endpoint,
		RedirectURL:  redirectURI,
		Scopes:       []string{calendar.CalendarReadonlyScope},
	}
}

// SignIn runs the interactive authorization flow: it opens the browser
// to Google's consent page, receives the code on a local callback
// server, exchanges it for tokens and persists them.
func (g *Google) SignIn(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	state, err := generateState()
	if err != nil {
		return fmt.Errorf("generate state: %w", err)
	}

	server := oauth.NewCallbackServer(0, state)
	if err := server.Start(); err != nil {
		return fmt.Errorf("start callback server: %w", err)
	}
	defer func() {
		if err := server.Stop(); err != nil {
			logger.Debug("failed to stop callback server: %v", err)
		}
	}()

	cfg := g.config(server.RedirectURI())
	verifier := oauth2.GenerateVerifier()

	authURL := cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
	)

	if err := oauth.OpenBrowser(authURL); err != nil {
		logger.Warn("could not open browser: %v", err)
		fmt.Printf("Open this URL in your browser to sign in:\n\n%s\n\n", authURL)
	}

	code, err := server.WaitForCode(callbackTimeout)
	if err != nil {
		return fmt.Errorf("wait for authorization: %w", err)
	}

	token, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	if err := g.saveToken(ctx, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	logger.Info("signed in to Google Calendar")
	return nil
}

// SignOut discards the persisted tokens. Signing out when no session
// exists is not an error.
func (g *Google) SignOut(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.tokens.DeleteToken(ctx, ProviderID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("delete token: %w", err)
	}

	logger.Info("signed out of Google Calendar")
	return nil
}

// SignedIn reports whether a persisted token exists.
func (g *Google) SignedIn(ctx context.Context) bool {
	_, err := g.tokens.GetToken(ctx, ProviderID)
	return err == nil
}

// TokenSource returns an oauth2.TokenSource backed by the persisted
// token. Refreshed tokens are written back to the store so the session
// survives access token expiry.
func (g *Google) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	token, err := g.loadToken(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotSignedIn
		}
		return nil, err
	}

	cfg := g.config("")
	return &savingTokenSource{
		ctx:    ctx,
		google: g,
		base:   cfg.TokenSource(ctx, token),
		last:   token,
	}, nil
}

func (g *Google) saveToken(ctx context.Context, token *oauth2.Token) error {
	blob, err := json.Marshal(token)
	if err != nil {
		return err
	}
	return g.tokens.SaveToken(ctx, ProviderID, blob)
}

func (g *Google) loadToken(ctx context.Context) (*oauth2.Token, error) {
	blob, err := g.tokens.GetToken(ctx, ProviderID)
	if err != nil {
		return nil, err
	}

	var token oauth2.Token
	if err := json.Unmarshal(blob, &token); err != nil {
		return nil, fmt.Errorf("decode stored token: %w", err)
	}
	return &token, nil
}

// savingTokenSource wraps an oauth2.TokenSource and persists rotated
// tokens back to the store.
type savingTokenSource struct {
	ctx    context.Context
	google *Google
	base   oauth2.TokenSource

	mu   sync.Mutex
	last *oauth2.Token
}

// Token implements oauth2.TokenSource.
func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	if s.last == nil || token.AccessToken != s.last.AccessToken {
		if err := s.google.saveToken(s.ctx, token); err != nil {
			logger.Warn("failed to persist refreshed token: %v", err)
		}
		s.last = token
	}

	return token, nil
}

// generateState creates a random state parameter for CSRF protection.
func generateState() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
