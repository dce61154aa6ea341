package slides

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// GetPage retrieves a single page of a presentation.
func (c *Client) GetPage(ctx context.Context, presentationID, pageObjectID string) (*Page, error) {
	if presentationID == "" {
		return nil, errInvalidf("presentation ID is required")
	}
	if pageObjectID == "" {
		return nil, errInvalidf("page object ID is required")
	}

	var out Page
	err := c.call(ctx, http.MethodGet, "/presentations/{presentationId}/pages/{pageObjectId}",
		map[string]string{
			"presentationId": presentationID,
			"pageObjectId":   pageObjectID,
		}, nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetThumbnail renders a page thumbnail. size is one of the Thumbnail*
// constants; empty lets the server default apply and is dropped from the
// query.
func (c *Client) GetThumbnail(ctx context.Context, presentationID, pageObjectID, size string) (*Thumbnail, error) {
	if presentationID == "" {
		return nil, errInvalidf("presentation ID is required")
	}
	if pageObjectID == "" {
		return nil, errInvalidf("page object ID is required")
	}
	if err := checkEnum("thumbnail size", size, validThumbnailSizes); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("thumbnailProperties.thumbnailSize", size)

	var out Thumbnail
	err := c.call(ctx, http.MethodGet, "/presentations/{presentationId}/pages/{pageObjectId}/thumbnail",
		map[string]string{
			"presentationId": presentationID,
			"pageObjectId":   pageObjectID,
		}, query, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadThumbnail renders a page thumbnail and fetches the image bytes
// from its content URL.
func (c *Client) DownloadThumbnail(ctx context.Context, presentationID, pageObjectID, size string) ([]byte, error) {
	thumbnail, err := c.GetThumbnail(ctx, presentationID, pageObjectID, size)
	if err != nil {
		return nil, err
	}
	if thumbnail.ContentURL == "" {
		return nil, fmt.Errorf("%w: thumbnail has no content URL", ErrAPIError)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, thumbnail.ContentURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building thumbnail request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: thumbnail fetch returned status %d", ErrAPIError, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading thumbnail: %w", err)
	}

	c.logger.Debug("thumbnail downloaded",
		slog.String("presentation_id", presentationID),
		slog.String("page_object_id", pageObjectID),
		slog.Int("bytes", len(data)),
	)
	return data, nil
}
