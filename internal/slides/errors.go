package slides

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// Sentinel errors shared across the binding.
var (
	ErrPresentationNotFound = errors.New("presentation not found")
	ErrAccessDenied         = errors.New("access denied to presentation")
	ErrAPIError             = errors.New("slides API error")
	ErrDriveAPIError        = errors.New("drive API error")
	ErrInvalidEnum          = errors.New("invalid enum value")
	ErrInvalidRequest       = errors.New("invalid request")
)

// errInvalidf wraps ErrInvalidRequest with a formatted message.
func errInvalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidRequest}, args...)...)
}

// translateAPIError maps a googleapi error to the binding's sentinels,
// keeping the server's message in the chain.
func translateAPIError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 404:
			return fmt.Errorf("%w: %v", ErrPresentationNotFound, err)
		case 403:
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrAPIError, err)
}
