// Package permissions resolves the authorized user's access level on a
// presentation through the Drive API before the client attempts writes.
package permissions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/smorand/google-slides-client/internal/cache"
)

// Level is the user's access level on a presentation.
type Level int

const (
	// LevelNone means no access.
	LevelNone Level = iota
	// LevelRead means the presentation can be fetched but not modified.
	LevelRead
	// LevelWrite means batchUpdate calls are allowed.
	LevelWrite
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelRead:
		return "read"
	case LevelWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Sentinel errors for permission checks.
var (
	ErrNoWriteAccess = errors.New("no write access to this presentation")
	ErrNoReadAccess  = errors.New("no read access to this presentation")
	ErrCheckFailed   = errors.New("permission check failed")
	ErrFileNotFound  = errors.New("presentation not found")
)

const defaultCacheTTL = 5 * time.Minute

// fileGetter fetches file capabilities. Satisfied by the Drive API and by
// mocks in tests.
type fileGetter interface {
	Capabilities(ctx context.Context, fileID string) (*drive.FileCapabilities, error)
}

type realFileGetter struct {
	service *drive.Service
}

func (g *realFileGetter) Capabilities(ctx context.Context, fileID string) (*drive.FileCapabilities, error) {
	file, err := g.service.Files.Get(fileID).
		Fields("id,capabilities").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return file.Capabilities, nil
}

// CheckerConfig holds Checker configuration.
type CheckerConfig struct {
	// TokenSource authenticates Drive API calls. Required unless a custom
	// HTTP client is supplied.
	TokenSource oauth2.TokenSource
	// HTTPClient overrides the Drive transport, used in tests.
	HTTPClient *http.Client
	// CacheTTL bounds how long a resolved level is reused. Default 5 minutes.
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// Checker resolves and caches access levels.
type Checker struct {
	files  fileGetter
	levels *cache.LRU
	logger *slog.Logger
}

// NewChecker creates a Checker backed by the Drive API.
func NewChecker(ctx context.Context, config CheckerConfig) (*Checker, error) {
	var opts []option.ClientOption
	switch {
	case config.HTTPClient != nil:
		opts = append(opts, option.WithHTTPClient(config.HTTPClient))
	case config.TokenSource != nil:
		opts = append(opts, option.WithTokenSource(config.TokenSource))
	default:
		return nil, errors.New("token source is required")
	}
	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating drive service: %w", err)
	}
	return newChecker(&realFileGetter{service: service}, config), nil
}

func newChecker(files fileGetter, config CheckerConfig) *Checker {
	if config.CacheTTL <= 0 {
		config.CacheTTL = defaultCacheTTL
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Checker{
		files: files,
		levels: cache.NewLRU(cache.Config{
			TTL:    config.CacheTTL,
			Logger: config.Logger,
		}),
		logger: config.Logger,
	}
}

// Check returns the user's access level on the presentation. Results are
// cached for the configured TTL.
func (c *Checker) Check(ctx context.Context, presentationID string) (Level, error) {
	if cached, ok := c.levels.Get(presentationID); ok {
		return cached.(Level), nil
	}

	capabilities, err := c.files.Capabilities(ctx, presentationID)
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return LevelNone, fmt.Errorf("%w: %s", ErrFileNotFound, presentationID)
		}
		return LevelNone, fmt.Errorf("%w: %v", ErrCheckFailed, err)
	}

	// Being able to fetch the file at all implies read access.
	level := LevelRead
	if capabilities != nil && capabilities.CanEdit {
		level = LevelWrite
	}

	c.levels.Set(presentationID, level)
	c.logger.Debug("permission check complete",
		slog.String("presentation_id", presentationID),
		slog.String("level", level.String()),
	)
	return level, nil
}

// EnsureRead errors unless the user can read the presentation.
func (c *Checker) EnsureRead(ctx context.Context, presentationID string) error {
	level, err := c.Check(ctx, presentationID)
	if err != nil {
		return err
	}
	if level < LevelRead {
		return fmt.Errorf("%w: %s", ErrNoReadAccess, presentationID)
	}
	return nil
}

// EnsureWrite errors unless the user can modify the presentation.
func (c *Checker) EnsureWrite(ctx context.Context, presentationID string) error {
	level, err := c.Check(ctx, presentationID)
	if err != nil {
		return err
	}
	if level < LevelWrite {
		return fmt.Errorf("%w: %s", ErrNoWriteAccess, presentationID)
	}
	return nil
}

// Invalidate drops the cached level for a presentation, forcing the next
// Check to hit the Drive API.
func (c *Checker) Invalidate(presentationID string) {
	c.levels.Delete(presentationID)
}
