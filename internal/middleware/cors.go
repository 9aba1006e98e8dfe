package middleware

import (
	"net/http"
)

const (
	HeaderOrigin       = "Origin"
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderVary         = "Vary"

	AllowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	AllowedHeaders = "Content-Type"
)

// CORS allows cross-origin calls from allowedOrigin, e.g. a front-end dev
// server on another port. "*" allows any origin and an empty string disables
// the headers. Preflight requests from the allowed origin end with 204.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get(HeaderOrigin)
			allowed := allowedOrigin != "" && origin != "" && (allowedOrigin == "*" || origin == allowedOrigin)
			if !allowed {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(HeaderAllowOrigin, allowedOrigin)
			w.Header().Set(HeaderAllowMethods, AllowedMethods)
			w.Header().Set(HeaderAllowHeaders, AllowedHeaders)
			w.Header().Add(HeaderVary, HeaderOrigin)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
