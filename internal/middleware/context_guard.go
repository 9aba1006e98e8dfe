package middleware

import (
	"net/http"

	"github.com/ferdiebergado/boring/internal/pkg/message"
	"github.com/ferdiebergado/boring/internal/pkg/web"
)

// ContextGuard answers 408 without calling next when the request context is
// already canceled or expired.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			web.RespondRequestTimeout(w, err, message.RequestTimeout)
			return
		}

		next.ServeHTTP(w, r)
	})
}
