package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"golang.org/x/oauth2"
)

// tokenRecord is the Firestore document shape for a stored token.
type tokenRecord struct {
	AccessToken  string    `firestore:"access_token"`
	RefreshToken string    `firestore:"refresh_token"`
	TokenType    string    `firestore:"token_type,omitempty"`
	Expiry       time.Time `firestore:"expiry"`
	UpdatedAt    time.Time `firestore:"updated_at"`
}

// FirestoreStore keeps tokens in a Firestore collection, keyed by a
// profile name. Useful when the client runs on several machines sharing
// one authorization.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
	profile    string
}

// NewFirestoreStore creates a Firestore-backed token store.
func NewFirestoreStore(ctx context.Context, projectID, collection, profile string) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}
	return NewFirestoreStoreWithClient(client, collection, profile), nil
}

// NewFirestoreStoreWithClient creates a store with an existing client,
// mainly for testing and dependency injection.
func NewFirestoreStoreWithClient(client *firestore.Client, collection, profile string) *FirestoreStore {
	if collection == "" {
		collection = "slides_tokens"
	}
	if profile == "" {
		profile = "default"
	}
	return &FirestoreStore{client: client, collection: collection, profile: profile}
}

// Close closes the underlying Firestore client.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

// Load implements TokenStore.
func (s *FirestoreStore) Load(ctx context.Context) (*oauth2.Token, error) {
	doc, err := s.client.Collection(s.collection).Doc(s.profile).Get(ctx)
	if err != nil {
		if isFirestoreNotFound(err) {
			return nil, ErrNoStoredToken
		}
		return nil, fmt.Errorf("loading token: %w", err)
	}

	var record tokenRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, fmt.Errorf("decoding token record: %w", err)
	}
	return &oauth2.Token{
		AccessToken:  record.AccessToken,
		RefreshToken: record.RefreshToken,
		TokenType:    record.TokenType,
		Expiry:       record.Expiry,
	}, nil
}

// Save implements TokenStore.
func (s *FirestoreStore) Save(ctx context.Context, token *oauth2.Token) error {
	record := tokenRecord{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
		UpdatedAt:    time.Now(),
	}
	if _, err := s.client.Collection(s.collection).Doc(s.profile).Set(ctx, record); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

// Delete implements TokenStore.
func (s *FirestoreStore) Delete(ctx context.Context) error {
	if _, err := s.client.Collection(s.collection).Doc(s.profile).Delete(ctx); err != nil {
		return fmt.Errorf("deleting token: %w", err)
	}
	return nil
}

// isFirestoreNotFound checks for a Firestore "not found" error.
func isFirestoreNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "NotFound") || strings.Contains(msg, "not found")
}

var _ TokenStore = (*FirestoreStore)(nil)
