package slides

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPage(t *testing.T) {
	var gotPath string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(Page{ObjectID: "slide-3", PageType: "SLIDE"})
	}))

	page, err := client.GetPage(context.Background(), "pres-1", "slide-3")
	require.NoError(t, err)
	assert.Equal(t, "/v1/presentations/pres-1/pages/slide-3", gotPath)
	assert.Equal(t, "slide-3", page.ObjectID)
}

func TestGetPageValidation(t *testing.T) {
	client := New(Config{HTTPClient: http.DefaultClient})

	_, err := client.GetPage(context.Background(), "", "slide-1")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	_, err = client.GetPage(context.Background(), "pres-1", "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGetThumbnail(t *testing.T) {
	var gotSize string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSize = r.URL.Query().Get("thumbnailProperties.thumbnailSize")
		json.NewEncoder(w).Encode(Thumbnail{ContentURL: "https://img.example/t.png", Width: 1600})
	}))

	thumb, err := client.GetThumbnail(context.Background(), "pres-1", "slide-1", ThumbnailLarge)
	require.NoError(t, err)
	assert.Equal(t, "LARGE", gotSize)
	assert.Equal(t, int64(1600), thumb.Width)
}

func TestGetThumbnailSizeOmittedWhenEmpty(t *testing.T) {
	var gotQuery string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(Thumbnail{})
	}))

	_, err := client.GetThumbnail(context.Background(), "pres-1", "slide-1", "")
	require.NoError(t, err)
	assert.Equal(t, "", gotQuery)
}

func TestGetThumbnailRejectsBadSize(t *testing.T) {
	client := New(Config{HTTPClient: http.DefaultClient})
	_, err := client.GetThumbnail(context.Background(), "pres-1", "slide-1", "ENORMOUS")
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestDownloadThumbnail(t *testing.T) {
	var server *Client
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/presentations/pres-1/pages/slide-1/thumbnail", func(w http.ResponseWriter, r *http.Request) {
		base := "http://" + r.Host
		json.NewEncoder(w).Encode(Thumbnail{ContentURL: base + "/image.png"})
	})
	mux.HandleFunc("/image.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("png-bytes"))
	})
	server = testClient(t, mux)

	data, err := server.DownloadThumbnail(context.Background(), "pres-1", "slide-1", ThumbnailMedium)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestDownloadThumbnailMissingURL(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Thumbnail{})
	}))

	_, err := client.DownloadThumbnail(context.Background(), "pres-1", "slide-1", "")
	assert.ErrorIs(t, err, ErrAPIError)
}
