package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// tokenEndpoint fakes the OAuth2 token exchange.
func tokenEndpoint(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "exchanged-access",
			"refresh_token": "exchanged-refresh",
			"token_type":    "Bearer",
			"expires_in":    3600,
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func flowConfig(t *testing.T, store TokenStore) Config {
	t.Helper()
	tokens := tokenEndpoint(t)
	return Config{
		OAuth: &oauth2.Config{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			Scopes:       []string{"scope-a"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  tokens.URL + "/auth",
				TokenURL: tokens.URL + "/token",
			},
		},
		Store:       store,
		FlowTimeout: 5 * time.Second,
	}
}

// completeFlow returns an OpenBrowser func that plays the user's part:
// follow the consent URL's redirect_uri back with the expected state and
// an authorization code.
func completeFlow(t *testing.T, code string) func(string) error {
	t.Helper()
	return func(authURL string) error {
		u, err := url.Parse(authURL)
		require.NoError(t, err)
		redirect := u.Query().Get("redirect_uri")
		state := u.Query().Get("state")

		go func() {
			resp, err := http.Get(redirect + "/?state=" + url.QueryEscape(state) + "&code=" + url.QueryEscape(code))
			if err == nil {
				resp.Body.Close()
			}
		}()
		return nil
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New(Config{Store: NewMockStore()})
	require.Error(t, err)

	_, err = New(Config{OAuth: &oauth2.Config{}})
	require.Error(t, err)
}

func TestTokenUsesStoredToken(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &oauth2.Token{
		AccessToken: "stored-access",
		Expiry:      time.Now().Add(time.Hour),
	}))

	config := flowConfig(t, store)
	config.OpenBrowser = func(string) error {
		t.Fatal("browser must not open when a valid token is stored")
		return nil
	}
	authorizer, err := New(config)
	require.NoError(t, err)

	token, err := authorizer.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "stored-access", token.AccessToken)
}

func TestTokenRunsFlowWhenNothingStored(t *testing.T) {
	store := NewMockStore()
	config := flowConfig(t, store)
	config.OpenBrowser = completeFlow(t, "auth-code-1")

	authorizer, err := New(config)
	require.NoError(t, err)

	token, err := authorizer.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "exchanged-access", token.AccessToken)

	// The new token must be persisted.
	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "exchanged-access", saved.AccessToken)
}

func TestFlowRejectsStateMismatch(t *testing.T) {
	config := flowConfig(t, NewMockStore())
	config.OpenBrowser = func(authURL string) error {
		u, err := url.Parse(authURL)
		require.NoError(t, err)
		redirect := u.Query().Get("redirect_uri")
		go func() {
			resp, err := http.Get(redirect + "/?state=wrong&code=auth-code")
			if err == nil {
				resp.Body.Close()
			}
		}()
		return nil
	}

	authorizer, err := New(config)
	require.NoError(t, err)

	_, err = authorizer.Token(context.Background())
	assert.ErrorIs(t, err, ErrAuthorizationFailed)
}

func TestFlowReportsProviderError(t *testing.T) {
	config := flowConfig(t, NewMockStore())
	config.OpenBrowser = func(authURL string) error {
		u, err := url.Parse(authURL)
		require.NoError(t, err)
		redirect := u.Query().Get("redirect_uri")
		go func() {
			resp, err := http.Get(redirect + "/?error=access_denied")
			if err == nil {
				resp.Body.Close()
			}
		}()
		return nil
	}

	authorizer, err := New(config)
	require.NoError(t, err)

	_, err = authorizer.Token(context.Background())
	require.ErrorIs(t, err, ErrAuthorizationFailed)
	assert.Contains(t, err.Error(), "access_denied")
}

func TestFlowTimesOut(t *testing.T) {
	config := flowConfig(t, NewMockStore())
	config.FlowTimeout = 50 * time.Millisecond
	config.OpenBrowser = func(string) error { return nil } // user never responds

	authorizer, err := New(config)
	require.NoError(t, err)

	_, err = authorizer.Token(context.Background())
	assert.ErrorIs(t, err, ErrFlowTimeout)
}

func TestFlowHonorsContextCancellation(t *testing.T) {
	config := flowConfig(t, NewMockStore())
	config.OpenBrowser = func(string) error { return nil }

	authorizer, err := New(config)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = authorizer.Token(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDeauthorize(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &oauth2.Token{AccessToken: "a"}))

	config := flowConfig(t, store)
	authorizer, err := New(config)
	require.NoError(t, err)

	require.NoError(t, authorizer.Deauthorize(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoStoredToken)
}

func TestFromCredentialsJSON(t *testing.T) {
	creds := []byte(`{"installed":{"client_id":"id-1","client_secret":"secret-1","redirect_uris":["http://localhost"],"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token"}}`)

	authorizer, err := FromCredentialsJSON(creds, NewMockStore())
	require.NoError(t, err)
	assert.Equal(t, "id-1", authorizer.config.OAuth.ClientID)
	assert.Equal(t, DefaultScopes, authorizer.config.OAuth.Scopes)

	_, err = FromCredentialsJSON([]byte("not json"), NewMockStore())
	require.Error(t, err)
}
