package error_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errx "github.com/ferdiebergado/boring/internal/pkg/error"
)

func TestIsContextError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("read items: %w", context.Canceled), true},
		{"other", errors.New("disk full"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := errx.IsContextError(tt.err); got != tt.want {
				t.Errorf("errx.IsContextError(%v) = %v, want: %v", tt.err, got, tt.want)
			}
		})
	}
}
