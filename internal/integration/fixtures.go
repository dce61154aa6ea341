package integration

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/smorand/google-slides-client/internal/slides"
)

// Environment variable names for integration tests.
const (
	EnvIntegrationTest    = "INTEGRATION_TEST"
	EnvGoogleClientID     = "GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret = "GOOGLE_CLIENT_SECRET"
	EnvGoogleRefreshToken = "GOOGLE_REFRESH_TOKEN"
)

const testTimeout = 2 * time.Minute

// SkipIfNoIntegration skips the test unless integration tests are enabled.
func SkipIfNoIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv(EnvIntegrationTest) != "1" {
		t.Skip("integration tests disabled, set INTEGRATION_TEST=1 to enable")
	}
}

// Fixtures wires a real client from environment credentials and tracks
// created presentations for cleanup.
type Fixtures struct {
	t           *testing.T
	tokenSource oauth2.TokenSource
	client      *slides.Client
	drive       *drive.Service

	mu      sync.Mutex
	created []string
}

// NewFixtures builds a client from GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET
// and GOOGLE_REFRESH_TOKEN, skipping the test when any is missing.
func NewFixtures(t *testing.T) *Fixtures {
	t.Helper()

	clientID := os.Getenv(EnvGoogleClientID)
	clientSecret := os.Getenv(EnvGoogleClientSecret)
	refreshToken := os.Getenv(EnvGoogleRefreshToken)
	if clientID == "" || clientSecret == "" || refreshToken == "" {
		t.Skipf("missing required environment variables (%s, %s, %s)",
			EnvGoogleClientID, EnvGoogleClientSecret, EnvGoogleRefreshToken)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes: []string{
			"https://www.googleapis.com/auth/presentations",
			"https://www.googleapis.com/auth/drive",
		},
	}
	tokenSource := oauthConfig.TokenSource(context.Background(),
		&oauth2.Token{RefreshToken: refreshToken})

	clientConfig := slides.DefaultConfig()
	clientConfig.TokenSource = tokenSource

	driveService, err := drive.NewService(context.Background(), option.WithTokenSource(tokenSource))
	if err != nil {
		t.Fatalf("creating drive service: %v", err)
	}

	f := &Fixtures{
		t:           t,
		tokenSource: tokenSource,
		client:      slides.New(clientConfig),
		drive:       driveService,
	}
	t.Cleanup(f.cleanup)
	return f
}

// Client returns the configured Slides client.
func (f *Fixtures) Client() *slides.Client {
	return f.client
}

// TokenSource returns the test account's token source.
func (f *Fixtures) TokenSource() oauth2.TokenSource {
	return f.tokenSource
}

// Context returns a context with the standard integration test timeout.
func (f *Fixtures) Context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), testTimeout)
}

// CreatePresentation creates a presentation and registers it for cleanup.
func (f *Fixtures) CreatePresentation(ctx context.Context, title string) *slides.Presentation {
	f.t.Helper()
	presentation, err := f.client.Create(ctx, title)
	if err != nil {
		f.t.Fatalf("creating test presentation: %v", err)
	}
	f.mu.Lock()
	f.created = append(f.created, presentation.PresentationID)
	f.mu.Unlock()
	return presentation
}

func (f *Fixtures) cleanup() {
	f.mu.Lock()
	created := f.created
	f.created = nil
	f.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	for _, id := range created {
		if err := f.drive.Files.Delete(id).Context(ctx).Do(); err != nil {
			f.t.Logf("failed to delete test presentation %s: %v", id, err)
		}
	}
}
