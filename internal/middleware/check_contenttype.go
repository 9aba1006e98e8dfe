package middleware

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	ghttp "github.com/ferdiebergado/gopherkit/http"

	"github.com/ferdiebergado/boring/internal/pkg/message"
	"github.com/ferdiebergado/boring/internal/pkg/web"
)

// CheckContentType refuses POST, PUT and PATCH requests that carry a body
// with a media type other than application/json. Bodyless requests pass.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasBody(r) {
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get(ghttp.HeaderContentType)
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != ghttp.MimeJSON {
			web.RespondUnsupportedMediaType(w, fmt.Errorf("invalid content-type: %q", contentType), message.UnsupportedMedia)
			return
		}

		slog.Debug("Content-Type is valid.")
		next.ServeHTTP(w, r)
	})
}

func hasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return false
	}
	return r.ContentLength != 0 && r.Body != nil && r.Body != http.NoBody
}
