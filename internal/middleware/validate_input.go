package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/boring/internal/pkg/message"
	"github.com/ferdiebergado/boring/internal/pkg/web"
	"github.com/ferdiebergado/boring/internal/platform/validation"
)

// ValidateInput rejects the payload decoded by DecodePayload[T] with 400 when
// it breaks a field rule. Storage is never reached for invalid input.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Debug("Validating input...")
			payload, err := web.PayloadFromContext[T](r.Context())
			if err != nil {
				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			if fields := validator.ValidateStruct(payload); len(fields) > 0 {
				web.RespondBadRequest(w, errors.New("invalid input"), firstMessage(fields), fields)
				return
			}

			slog.Debug("Input is valid.")
			next.ServeHTTP(w, r)
		})
	}
}

// firstMessage picks a stable, descriptive top-level message for the
// envelope's error key.
func firstMessage(fields map[string]string) string {
	if len(fields) != 1 {
		return message.InvalidInput
	}
	for _, msg := range fields {
		return msg
	}
	return message.InvalidInput
}
