// Package router mounts handlers on the server's top-level mux.
package router

import "net/http"

type Middleware = func(next http.Handler) http.Handler

type Router interface {
	http.Handler

	// Use registers a middleware applied to every request, outermost first.
	Use(middleware Middleware)
	Get(pattern string, handler http.HandlerFunc, middlewares ...Middleware)
	// Handle mounts handler for every method under pattern.
	Handle(pattern string, handler http.Handler, middlewares ...Middleware)
}
