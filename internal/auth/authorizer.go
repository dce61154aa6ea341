// Package auth obtains and manages OAuth2 credentials for the Slides API.
// There is no global auth state: an Authorizer is constructed once and
// passed explicitly to every call site that needs tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/browser"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// DefaultScopes cover the Slides API, Drive (for the picker and search)
// and the authenticated user's email.
var DefaultScopes = []string{
	"https://www.googleapis.com/auth/presentations",
	"https://www.googleapis.com/auth/drive",
	"https://www.googleapis.com/auth/userinfo.email",
}

// Sentinel errors for the authorization flow.
var (
	ErrAuthorizationFailed = errors.New("authorization failed")
	ErrFlowTimeout         = errors.New("authorization flow timed out")
	ErrNotAuthorized       = errors.New("not authorized")
)

const defaultFlowTimeout = 5 * time.Minute

// Config holds Authorizer configuration.
type Config struct {
	// OAuth is the OAuth2 client configuration. Required.
	OAuth *oauth2.Config
	// Store persists tokens across runs. Required.
	Store TokenStore
	// FlowTimeout bounds the interactive browser flow.
	FlowTimeout time.Duration
	// ListenAddr is the loopback address for the redirect listener.
	// Default "127.0.0.1:0".
	ListenAddr string
	Logger     *slog.Logger
	// OpenBrowser opens the user's browser on a URL. Default pkg/browser.
	OpenBrowser func(url string) error
}

// Authorizer acquires, refreshes and revokes OAuth2 tokens.
type Authorizer struct {
	config Config
	logger *slog.Logger
}

// New creates an Authorizer.
func New(config Config) (*Authorizer, error) {
	if config.OAuth == nil {
		return nil, errors.New("oauth config is required")
	}
	if config.Store == nil {
		return nil, errors.New("token store is required")
	}
	if config.FlowTimeout <= 0 {
		config.FlowTimeout = defaultFlowTimeout
	}
	if config.ListenAddr == "" {
		config.ListenAddr = "127.0.0.1:0"
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.OpenBrowser == nil {
		config.OpenBrowser = browser.OpenURL
	}
	return &Authorizer{config: config, logger: config.Logger}, nil
}

// FromCredentialsJSON creates an Authorizer from a client credentials JSON
// blob as downloaded from the Google Cloud console. Empty scopes means
// DefaultScopes.
func FromCredentialsJSON(creds []byte, store TokenStore, scopes ...string) (*Authorizer, error) {
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}
	oauthConfig, err := google.ConfigFromJSON(creds, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parsing oauth credentials: %w", err)
	}
	return New(Config{OAuth: oauthConfig, Store: store})
}

// Token returns a valid token, running the interactive browser flow when
// no stored token can be used.
func (a *Authorizer) Token(ctx context.Context) (*oauth2.Token, error) {
	stored, err := a.config.Store.Load(ctx)
	if err != nil && !errors.Is(err, ErrNoStoredToken) {
		return nil, fmt.Errorf("loading stored token: %w", err)
	}

	if stored != nil {
		// Refresh through the token source; oauth2 handles expiry.
		token, err := a.config.OAuth.TokenSource(ctx, stored).Token()
		if err == nil {
			if token.AccessToken != stored.AccessToken {
				if err := a.config.Store.Save(ctx, token); err != nil {
					a.logger.Warn("failed to persist refreshed token", slog.Any("error", err))
				}
			}
			return token, nil
		}
		a.logger.Warn("stored token unusable, reauthorizing", slog.Any("error", err))
	}

	token, err := a.authorize(ctx)
	if err != nil {
		return nil, err
	}
	if err := a.config.Store.Save(ctx, token); err != nil {
		return nil, fmt.Errorf("persisting token: %w", err)
	}

	a.logger.Info("authorization complete",
		slog.Bool("has_refresh_token", token.RefreshToken != ""),
		slog.Time("expiry", token.Expiry),
	)
	return token, nil
}

// TokenSource returns an auto-refreshing token source backed by Token.
func (a *Authorizer) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	token, err := a.Token(ctx)
	if err != nil {
		return nil, err
	}
	return oauth2.ReuseTokenSource(token, a.config.OAuth.TokenSource(ctx, token)), nil
}

// Deauthorize forgets the stored token. The next Token call runs the
// interactive flow again.
func (a *Authorizer) Deauthorize(ctx context.Context) error {
	if err := a.config.Store.Delete(ctx); err != nil {
		return fmt.Errorf("deleting stored token: %w", err)
	}
	a.logger.Info("deauthorized")
	return nil
}

// Identity returns the email address of the authenticated user.
func (a *Authorizer) Identity(ctx context.Context) (string, error) {
	tokenSource, err := a.TokenSource(ctx)
	if err != nil {
		return "", err
	}
	service, err := goauth2.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return "", fmt.Errorf("creating userinfo service: %w", err)
	}
	info, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: fetching identity: %v", ErrNotAuthorized, err)
	}
	return info.Email, nil
}
