package auth

import (
	"context"
	"sync"

	"golang.org/x/oauth2"
)

// MockStore is an in-memory TokenStore for tests.
type MockStore struct {
	mu    sync.Mutex
	token *oauth2.Token

	LoadFunc   func(ctx context.Context) (*oauth2.Token, error)
	SaveFunc   func(ctx context.Context, token *oauth2.Token) error
	DeleteFunc func(ctx context.Context) error
}

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Load implements TokenStore.
func (m *MockStore) Load(ctx context.Context) (*oauth2.Token, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == nil {
		return nil, ErrNoStoredToken
	}
	return m.token, nil
}

// Save implements TokenStore.
func (m *MockStore) Save(ctx context.Context, token *oauth2.Token) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

// Delete implements TokenStore.
func (m *MockStore) Delete(ctx context.Context) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = nil
	return nil
}

var _ TokenStore = (*MockStore)(nil)
