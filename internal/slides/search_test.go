package slides

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
)

type mockDriveFiles struct {
	ListFunc func(ctx context.Context, query string, pageSize int64) (*drive.FileList, error)
}

func (m *mockDriveFiles) List(ctx context.Context, query string, pageSize int64) (*drive.FileList, error) {
	return m.ListFunc(ctx, query, pageSize)
}

func searchClient(mock *mockDriveFiles) *Client {
	c := New(Config{HTTPClient: http.DefaultClient})
	c.driveFactory = func(ctx context.Context, c *Client) (driveFiles, error) {
		return mock, nil
	}
	return c
}

func TestSearch(t *testing.T) {
	var gotQuery string
	var gotPageSize int64
	client := searchClient(&mockDriveFiles{
		ListFunc: func(ctx context.Context, query string, pageSize int64) (*drive.FileList, error) {
			gotQuery = query
			gotPageSize = pageSize
			return &drive.FileList{Files: []*drive.File{
				{
					Id:           "pres-1",
					Name:         "Roadmap",
					ModifiedTime: "2026-08-01T12:00:00Z",
					Owners:       []*drive.User{{EmailAddress: "owner@example.com"}},
				},
				{Id: "pres-2", Name: "Budget"},
			}}, nil
		},
	})

	results, err := client.Search(context.Background(), "roadmap", 25)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "pres-1", results[0].ID)
	assert.Equal(t, "owner@example.com", results[0].Owner)
	assert.Equal(t, "Budget", results[1].Title)
	assert.Equal(t, int64(25), gotPageSize)
	assert.Contains(t, gotQuery, presentationMimeType)
	assert.Contains(t, gotQuery, "fullText contains 'roadmap'")
}

func TestSearchDefaultsAndCaps(t *testing.T) {
	var gotPageSize int64
	client := searchClient(&mockDriveFiles{
		ListFunc: func(ctx context.Context, query string, pageSize int64) (*drive.FileList, error) {
			gotPageSize = pageSize
			return &drive.FileList{}, nil
		},
	})

	_, err := client.Search(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(10), gotPageSize)

	_, err = client.Search(context.Background(), "", 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(100), gotPageSize)
}

func TestSearchError(t *testing.T) {
	client := searchClient(&mockDriveFiles{
		ListFunc: func(ctx context.Context, query string, pageSize int64) (*drive.FileList, error) {
			return nil, errors.New("quota exceeded")
		},
	})

	_, err := client.Search(context.Background(), "x", 10)
	assert.ErrorIs(t, err, ErrDriveAPIError)
}

func TestBuildDriveQuery(t *testing.T) {
	q := buildDriveQuery("")
	assert.Equal(t, "mimeType = 'application/vnd.google-apps.presentation' and trashed = false", q)

	q = buildDriveQuery("bob's deck")
	assert.Contains(t, q, `fullText contains 'bob\'s deck'`)
}
