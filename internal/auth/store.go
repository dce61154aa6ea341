package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// ErrNoStoredToken is returned by TokenStore.Load when nothing is stored.
var ErrNoStoredToken = errors.New("no stored token")

// TokenStore persists OAuth2 tokens between runs.
type TokenStore interface {
	Load(ctx context.Context) (*oauth2.Token, error)
	Save(ctx context.Context, token *oauth2.Token) error
	Delete(ctx context.Context) error
}

// FileStore keeps the token as JSON in a single file.
type FileStore struct {
	Path string
}

// NewFileStore creates a file-backed token store.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load implements TokenStore.
func (s *FileStore) Load(ctx context.Context) (*oauth2.Token, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoStoredToken
		}
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("decoding token in %s: %w", s.Path, err)
	}
	return &token, nil
}

// Save implements TokenStore. The file is written with owner-only
// permissions.
func (s *FileStore) Save(ctx context.Context, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path, err)
	}
	return nil
}

// Delete implements TokenStore. Deleting an absent token is not an error.
func (s *FileStore) Delete(ctx context.Context) error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", s.Path, err)
	}
	return nil
}

var _ TokenStore = (*FileStore)(nil)
