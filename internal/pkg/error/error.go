// Package error classifies errors that cross package boundaries.
package error

import (
	"context"
	"errors"
)

// IsContextError reports whether err was caused by a canceled or expired
// context, e.g. a client that went away mid-request.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
