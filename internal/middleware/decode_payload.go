package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/boring/internal/pkg/message"
	"github.com/ferdiebergado/boring/internal/pkg/web"
)

// DecodePayload decodes the JSON body into a T and stores it in the request
// context.
//
// Decoding is lenient: an empty, malformed or mistyped body yields the zero
// T, leaving the field rules of ValidateInput to reject it. Bodies over
// bodySize bytes are refused with 413.
func DecodePayload[T any](bodySize int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Debug("Decoding json payload...")
			r.Body = http.MaxBytesReader(w, r.Body, bodySize)
			data, err := io.ReadAll(r.Body)
			if err != nil {
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					web.RespondRequestEntityTooLarge(w, err, message.PayloadTooLarge)
					return
				}

				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			var decoded T
			if len(data) > 0 {
				if err := json.Unmarshal(data, &decoded); err != nil {
					slog.Warn("Malformed json payload, continuing with an empty one.", "reason", err)
					var zero T
					decoded = zero
				}
			}

			ctx := web.NewContextWithPayload(r.Context(), decoded)
			r = r.WithContext(ctx)
			next.ServeHTTP(w, r)
		})
	}
}
