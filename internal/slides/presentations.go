package slides

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// createPresentationBody is the body of presentations.create. Only the
// title is sent; everything else is server-assigned.
type createPresentationBody struct {
	Title string `json:"title,omitempty"`
}

// Create creates a blank presentation with the given title.
func (c *Client) Create(ctx context.Context, title string) (*Presentation, error) {
	c.logger.Info("creating presentation", slog.String("title", title))

	var out Presentation
	err := c.call(ctx, http.MethodPost, "/presentations", nil, nil,
		createPresentationBody{Title: title}, &out)
	if err != nil {
		return nil, err
	}

	c.logger.Info("presentation created",
		slog.String("presentation_id", out.PresentationID),
	)
	return &out, nil
}

// Get retrieves a presentation. fields restricts the response to the named
// FieldMask paths; empty fields are dropped from the query rather than
// sent. Results are served from the client cache when one is configured.
func (c *Client) Get(ctx context.Context, presentationID string, fields ...string) (*Presentation, error) {
	if presentationID == "" {
		return nil, errInvalidf("presentation ID is required")
	}

	// Only full gets are cached; field-restricted responses are partial.
	fieldMask := joinFields(fields)
	if c.presentations != nil && fieldMask == "" {
		if cached, ok := c.presentations.Get(presentationID); ok {
			c.logger.Debug("presentation served from cache",
				slog.String("presentation_id", presentationID),
			)
			return cached.(*Presentation), nil
		}
	}

	query := url.Values{}
	query.Set("fields", fieldMask)

	var out Presentation
	err := c.call(ctx, http.MethodGet, "/presentations/{presentationId}",
		map[string]string{"presentationId": presentationID}, query, nil, &out)
	if err != nil {
		return nil, err
	}

	if c.presentations != nil && fieldMask == "" {
		c.presentations.Set(presentationID, &out)
	}
	return &out, nil
}

// batchUpdateBody is the body of presentations.batchUpdate. The requests
// array and the write control are forwarded verbatim; applying the batch
// atomically and checking the revision ID happen server-side.
type batchUpdateBody struct {
	Requests     []Request     `json:"requests"`
	WriteControl *WriteControl `json:"writeControl,omitempty"`
}

// BatchUpdate applies requests to a presentation in one atomic batch.
// requiredRevisionID, when non-empty, makes the server reject the batch if
// the presentation has moved past that revision.
func (c *Client) BatchUpdate(ctx context.Context, presentationID string, requests []Request, requiredRevisionID string) (*BatchUpdateResponse, error) {
	if presentationID == "" {
		return nil, errInvalidf("presentation ID is required")
	}
	if len(requests) == 0 {
		return nil, errInvalidf("at least one request is required")
	}
	for i, req := range requests {
		if err := req.Validate(); err != nil {
			return nil, errInvalidf("request %d: %v", i, err)
		}
	}

	body := batchUpdateBody{Requests: requests}
	if requiredRevisionID != "" {
		body.WriteControl = &WriteControl{RequiredRevisionID: requiredRevisionID}
	}

	c.logger.Info("applying batch update",
		slog.String("presentation_id", presentationID),
		slog.Int("requests", len(requests)),
		slog.Bool("revision_checked", requiredRevisionID != ""),
	)

	var out BatchUpdateResponse
	err := c.call(ctx, http.MethodPost, "/presentations/{presentationId}:batchUpdate",
		map[string]string{"presentationId": presentationID}, nil, body, &out)
	if err != nil {
		return nil, err
	}

	c.invalidatePresentation(presentationID)
	return &out, nil
}

// invalidatePresentation drops the cached copy of a presentation after a
// write.
func (c *Client) invalidatePresentation(presentationID string) {
	if c.presentations == nil {
		return
	}
	c.presentations.Delete(presentationID)
}

func joinFields(fields []string) string {
	var nonEmpty []string
	for _, f := range fields {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.Join(nonEmpty, ",")
}
