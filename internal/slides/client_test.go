package slides

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

	"github.com/smorand/google-slides-client/internal/retry"
)

// testClient returns a client pointed at a test server, with throttling
// and retry waits tuned down.
func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(Config{
		BaseURL:    server.URL + "/v1",
		HTTPClient: server.Client(),
		Retry: retry.Policy{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
			MaxDelay:    time.Millisecond,
		},
		CacheTTL: time.Minute,
	})
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   map[string]string
		want     string
		wantErr  bool
	}{
		{
			name:     "single placeholder",
			template: "/presentations/{presentationId}",
			params:   map[string]string{"presentationId": "abc123"},
			want:     "/presentations/abc123",
		},
		{
			name:     "multiple placeholders",
			template: "/presentations/{presentationId}/pages/{pageObjectId}",
			params:   map[string]string{"presentationId": "p1", "pageObjectId": "g2"},
			want:     "/presentations/p1/pages/g2",
		},
		{
			name:     "value escaped",
			template: "/presentations/{presentationId}",
			params:   map[string]string{"presentationId": "a/b c"},
			want:     "/presentations/a%2Fb%20c",
		},
		{
			name:     "empty value rejected",
			template: "/presentations/{presentationId}",
			params:   map[string]string{"presentationId": ""},
			wantErr:  true,
		},
		{
			name:     "unknown parameter rejected",
			template: "/presentations/{presentationId}",
			params:   map[string]string{"presentationId": "x", "extra": "y"},
			wantErr:  true,
		},
		{
			name:     "unresolved placeholder rejected",
			template: "/presentations/{presentationId}/pages/{pageObjectId}",
			params:   map[string]string{"presentationId": "x"},
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandPath(tt.template, tt.params)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Explicitly empty parameters are excluded from the query string rather
// than serialized as empty values.
func TestCleanQueryStripsEmptyValues(t *testing.T) {
	query := url.Values{}
	query.Set("fields", "title,revisionId")
	query.Set("pageSize", "")
	query.Add("extra", "")
	query.Add("extra", "kept")

	cleaned := cleanQuery(query)
	assert.Equal(t, "title,revisionId", cleaned.Get("fields"))
	_, hasPageSize := cleaned["pageSize"]
	assert.False(t, hasPageSize)
	assert.Equal(t, []string{"kept"}, cleaned["extra"])
}

func TestGetPresentation(t *testing.T) {
	var gotPath, gotQuery string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(Presentation{
			PresentationID: "pres-1",
			Title:          "Q3 Review",
			RevisionID:     "rev-9",
		})
	}))

	got, err := client.Get(context.Background(), "pres-1")
	require.NoError(t, err)
	assert.Equal(t, "/v1/presentations/pres-1", gotPath)
	assert.Equal(t, "", gotQuery, "empty fields param must be stripped")
	assert.Equal(t, "Q3 Review", got.Title)
	assert.Equal(t, "rev-9", got.RevisionID)
}

func TestGetPresentationWithFields(t *testing.T) {
	var gotFields string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFields = r.URL.Query().Get("fields")
		json.NewEncoder(w).Encode(Presentation{PresentationID: "pres-1"})
	}))

	_, err := client.Get(context.Background(), "pres-1", "title", "", "revisionId")
	require.NoError(t, err)
	assert.Equal(t, "title,revisionId", gotFields)
}

func TestGetPresentationRequiresID(t *testing.T) {
	client := New(Config{HTTPClient: http.DefaultClient})
	_, err := client.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGetPresentationCached(t *testing.T) {
	calls := 0
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(Presentation{PresentationID: "pres-1"})
	}))

	ctx := context.Background()
	_, err := client.Get(ctx, "pres-1")
	require.NoError(t, err)
	_, err = client.Get(ctx, "pres-1")
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "second get must come from cache")

	// Field-restricted gets bypass the cache.
	_, err = client.Get(ctx, "pres-1", "title")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCreatePresentation(t *testing.T) {
	var gotBody map[string]any
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/presentations", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(Presentation{PresentationID: "new-pres", Title: "Fresh"})
	}))

	got, err := client.Create(context.Background(), "Fresh")
	require.NoError(t, err)
	assert.Equal(t, "new-pres", got.PresentationID)
	assert.Equal(t, map[string]any{"title": "Fresh"}, gotBody)
}

func TestBatchUpdateForwardsRequestsAndWriteControl(t *testing.T) {
	var gotBody struct {
		Requests     []map[string]json.RawMessage `json:"requests"`
		WriteControl *WriteControl                `json:"writeControl"`
	}
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/presentations/pres-1:batchUpdate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(BatchUpdateResponse{PresentationID: "pres-1"})
	}))

	insert, err := NewInsertText("shape-1", "Hello", 0)
	require.NoError(t, err)
	del, err := NewDeleteObject("shape-2")
	require.NoError(t, err)

	resp, err := client.BatchUpdate(context.Background(), "pres-1", []Request{insert, del}, "rev-42")
	require.NoError(t, err)
	assert.Equal(t, "pres-1", resp.PresentationID)

	require.Len(t, gotBody.Requests, 2)
	_, ok := gotBody.Requests[0]["insertText"]
	assert.True(t, ok)
	_, ok = gotBody.Requests[1]["deleteObject"]
	assert.True(t, ok)
	require.NotNil(t, gotBody.WriteControl)
	assert.Equal(t, "rev-42", gotBody.WriteControl.RequiredRevisionID)
}

func TestBatchUpdateOmitsWriteControlWhenUnset(t *testing.T) {
	var gotBody map[string]json.RawMessage
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(BatchUpdateResponse{})
	}))

	req, err := NewDeleteObject("shape-1")
	require.NoError(t, err)
	_, err = client.BatchUpdate(context.Background(), "pres-1", []Request{req}, "")
	require.NoError(t, err)

	_, hasWriteControl := gotBody["writeControl"]
	assert.False(t, hasWriteControl)
}

func TestBatchUpdateValidatesRequests(t *testing.T) {
	client := New(Config{HTTPClient: http.DefaultClient})

	_, err := client.BatchUpdate(context.Background(), "pres-1", nil, "")
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = client.BatchUpdate(context.Background(), "pres-1", []Request{{}}, "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestBatchUpdateInvalidatesCache(t *testing.T) {
	gets := 0
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets++
			json.NewEncoder(w).Encode(Presentation{PresentationID: "pres-1"})
			return
		}
		json.NewEncoder(w).Encode(BatchUpdateResponse{})
	}))

	ctx := context.Background()
	_, err := client.Get(ctx, "pres-1")
	require.NoError(t, err)

	req, err := NewDeleteObject("shape-1")
	require.NoError(t, err)
	_, err = client.BatchUpdate(ctx, "pres-1", []Request{req}, "")
	require.NoError(t, err)

	_, err = client.Get(ctx, "pres-1")
	require.NoError(t, err)
	assert.Equal(t, 2, gets, "cache must be invalidated by a write")
}

func TestErrorTranslation(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: ErrPresentationNotFound},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrAccessDenied},
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrAPIError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"code": tt.status, "message": "nope"},
				})
			}))

			_, err := client.Get(context.Background(), "pres-1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransientErrorsRetried(t *testing.T) {
	calls := 0
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(Presentation{PresentationID: "pres-1"})
	}))

	got, err := client.Get(context.Background(), "pres-1")
	require.NoError(t, err)
	assert.Equal(t, "pres-1", got.PresentationID)
	assert.Equal(t, 3, calls)
}

func TestNonRetryableErrorsNotRetried(t *testing.T) {
	calls := 0
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.Get(context.Background(), "pres-1")
	assert.ErrorIs(t, err, ErrPresentationNotFound)
	assert.Equal(t, 1, calls)
}
