package slides

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/smorand/google-slides-client/internal/cache"
	"github.com/smorand/google-slides-client/internal/ratelimit"
	"github.com/smorand/google-slides-client/internal/retry"
)

const defaultBaseURL = "https://slides.googleapis.com/v1"

// Config holds client configuration.
type Config struct {
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// TokenSource supplies OAuth2 tokens. Ignored when HTTPClient is set.
	TokenSource oauth2.TokenSource
	// HTTPClient overrides the transport. When nil, an oauth2 client is
	// built from TokenSource.
	HTTPClient *http.Client
	// Retry is the backoff policy for transient failures.
	Retry retry.Policy
	// Throttle keeps the client under the API quota. Nil disables it.
	Throttle *ratelimit.Throttle
	// CacheTTL is the lifetime of cached presentation GETs. Zero disables
	// caching.
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// DefaultConfig returns configuration with default values. The token
// source still has to be supplied.
func DefaultConfig() Config {
	return Config{
		BaseURL:  defaultBaseURL,
		Retry:    retry.DefaultPolicy(),
		Throttle: ratelimit.New(ratelimit.DefaultConfig()),
		CacheTTL: 5 * time.Minute,
		Logger:   slog.Default(),
	}
}

// Client issues requests against the Slides REST API. Every call is an
// independent request/response round trip; atomicity of batched updates
// and revision conflict detection are server-side concerns.
type Client struct {
	config        Config
	httpClient    *http.Client
	presentations *cache.LRU
	driveFactory  driveFactory
	logger        *slog.Logger
}

// New creates a Client.
func New(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Retry.MaxAttempts == 0 {
		config.Retry = retry.DefaultPolicy()
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		if config.TokenSource != nil {
			httpClient = oauth2.NewClient(context.Background(), config.TokenSource)
		} else {
			httpClient = http.DefaultClient
		}
	}

	c := &Client{
		config:       config,
		httpClient:   httpClient,
		driveFactory: newDriveFiles,
		logger:       config.Logger,
	}
	if config.CacheTTL > 0 {
		c.presentations = cache.NewLRU(cache.Config{
			MaxEntries: 100,
			TTL:        config.CacheTTL,
			Logger:     config.Logger,
		})
	}
	return c
}

// buildRequest assembles an HTTP request from a method, a path template
// with {placeholder} segments, query parameters and an optional JSON body.
// Empty query values are stripped rather than serialized.
func (c *Client) buildRequest(ctx context.Context, method, pathTemplate string, pathParams map[string]string, query url.Values, body []byte) (*http.Request, error) {
	path, err := expandPath(pathTemplate, pathParams)
	if err != nil {
		return nil, err
	}

	u := strings.TrimSuffix(c.config.BaseURL, "/") + path
	if encoded := cleanQuery(query).Encode(); encoded != "" {
		u += "?" + encoded
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// expandPath substitutes {name} placeholders in a path template. Every
// placeholder must have a value and every value must match a placeholder.
func expandPath(template string, params map[string]string) (string, error) {
	path := template
	for name, value := range params {
		if value == "" {
			return "", errInvalidf("path parameter %q is empty", name)
		}
		placeholder := "{" + name + "}"
		if !strings.Contains(path, placeholder) {
			return "", errInvalidf("path template %q has no parameter %q", template, name)
		}
		path = strings.ReplaceAll(path, placeholder, url.PathEscape(value))
	}
	if i := strings.IndexByte(path, '{'); i >= 0 {
		return "", errInvalidf("path template %q has unresolved placeholders", template)
	}
	return path, nil
}

// cleanQuery returns a copy of query without empty values.
func cleanQuery(query url.Values) url.Values {
	cleaned := url.Values{}
	for key, values := range query {
		for _, v := range values {
			if v != "" {
				cleaned.Add(key, v)
			}
		}
	}
	return cleaned
}

// call runs the shared build/execute/process pipeline: marshal the body,
// throttle, issue the request with retries, translate HTTP errors, decode
// into out.
func (c *Client) call(ctx context.Context, method, pathTemplate string, pathParams map[string]string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	start := time.Now()
	var data []byte
	err := c.config.Retry.Do(ctx, func(ctx context.Context) (int, error) {
		if c.config.Throttle != nil {
			if err := c.config.Throttle.Wait(ctx); err != nil {
				return 0, err
			}
		}

		req, err := c.buildRequest(ctx, method, pathTemplate, pathParams, query, payload)
		if err != nil {
			return 0, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrAPIError, err)
		}
		defer resp.Body.Close()

		if err := googleapi.CheckResponse(resp); err != nil {
			return resp.StatusCode, translateAPIError(err)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return resp.StatusCode, fmt.Errorf("reading response: %w", err)
		}
		return resp.StatusCode, nil
	})
	if err != nil {
		return err
	}

	c.logger.Debug("API call completed",
		slog.String("method", method),
		slog.String("path", pathTemplate),
		slog.Duration("elapsed", time.Since(start)),
	)

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
