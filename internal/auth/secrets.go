package auth

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// SecretLoader fetches the OAuth client credentials from Google Secret
// Manager instead of a local file. This is the deployment variant where
// no credentials are packaged with the binary.
type SecretLoader struct {
	client    *secretmanager.Client
	projectID string
}

// NewSecretLoader creates a SecretLoader.
func NewSecretLoader(ctx context.Context, projectID string) (*SecretLoader, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating secret manager client: %w", err)
	}
	return &SecretLoader{client: client, projectID: projectID}, nil
}

// Close closes the secret manager client.
func (l *SecretLoader) Close() error {
	return l.client.Close()
}

// Secret retrieves the latest version of a secret.
func (l *SecretLoader) Secret(ctx context.Context, secretID string) ([]byte, error) {
	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", l.projectID, secretID)
	result, err := l.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, fmt.Errorf("accessing secret %s: %w", secretID, err)
	}
	return result.Payload.Data, nil
}

// Credentials retrieves the OAuth client credentials JSON from the named
// secret, in the same format FromCredentialsJSON expects.
func (l *SecretLoader) Credentials(ctx context.Context, secretID string) ([]byte, error) {
	return l.Secret(ctx, secretID)
}
