package slides

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const presentationMimeType = "application/vnd.google-apps.presentation"

// driveFiles abstracts the Drive files.list call for testing.
type driveFiles interface {
	List(ctx context.Context, query string, pageSize int64) (*drive.FileList, error)
}

// driveFactory creates a driveFiles implementation for a client.
type driveFactory func(ctx context.Context, c *Client) (driveFiles, error)

type realDriveFiles struct {
	service *drive.Service
}

func (d *realDriveFiles) List(ctx context.Context, query string, pageSize int64) (*drive.FileList, error) {
	return d.service.Files.List().
		Q(query).
		PageSize(pageSize).
		Fields(googleapi.Field("files(id,name,owners,modifiedTime,thumbnailLink)")).
		Context(ctx).
		Do()
}

func newDriveFiles(ctx context.Context, c *Client) (driveFiles, error) {
	var opts []option.ClientOption
	if c.config.TokenSource != nil {
		opts = append(opts, option.WithTokenSource(c.config.TokenSource))
	} else {
		opts = append(opts, option.WithHTTPClient(c.httpClient))
	}
	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &realDriveFiles{service: service}, nil
}

// FoundPresentation is one Drive search result.
type FoundPresentation struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Owner        string `json:"owner,omitempty"`
	ModifiedTime string `json:"modified_time,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// Search finds presentations in Drive whose name or content matches query.
// An empty query lists the caller's presentations. maxResults is capped at
// 100; zero means 10.
func (c *Client) Search(ctx context.Context, query string, maxResults int64) ([]FoundPresentation, error) {
	if maxResults <= 0 {
		maxResults = 10
	}
	if maxResults > 100 {
		maxResults = 100
	}

	c.logger.Info("searching presentations",
		slog.String("query", query),
		slog.Int64("max_results", maxResults),
	)

	files, err := c.driveFactory(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("%w: creating drive service: %v", ErrDriveAPIError, err)
	}

	list, err := files.List(ctx, buildDriveQuery(query), maxResults)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDriveAPIError, err)
	}

	results := make([]FoundPresentation, 0, len(list.Files))
	for _, file := range list.Files {
		found := FoundPresentation{
			ID:           file.Id,
			Title:        file.Name,
			ModifiedTime: file.ModifiedTime,
			ThumbnailURL: file.ThumbnailLink,
		}
		if len(file.Owners) > 0 && file.Owners[0] != nil {
			found.Owner = file.Owners[0].EmailAddress
		}
		results = append(results, found)
	}
	return results, nil
}

// buildDriveQuery restricts a Drive search to presentations, escaping the
// user's term for the query language.
func buildDriveQuery(query string) string {
	q := fmt.Sprintf("mimeType = '%s' and trashed = false", presentationMimeType)
	if query != "" {
		escaped := strings.ReplaceAll(query, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, `'`, `\'`)
		q += fmt.Sprintf(" and fullText contains '%s'", escaped)
	}
	return q
}
