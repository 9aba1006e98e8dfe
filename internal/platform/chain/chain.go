// Package chain dispatches requests through an ordered list of
// (predicate, handler) pairs. The first pair whose predicate accepts the
// request handles it; registration order breaks ties.
package chain

import (
	"context"
	"errors"
	"net/http"

	"github.com/ferdiebergado/boring/internal/pkg/message"
	"github.com/ferdiebergado/boring/internal/pkg/route"
	"github.com/ferdiebergado/boring/internal/pkg/web"
)

// Handler answers a request it recognizes and reports whether it did.
// Returning false leaves the response untouched for the next handler.
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request) bool
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) bool

func (f HandlerFunc) Handle(w http.ResponseWriter, r *http.Request) bool {
	return f(w, r)
}

// Predicate decides whether a request belongs to a handler and returns the
// path parameters it bound.
type Predicate func(r *http.Request) (route.Params, bool)

// Chain is a prioritized list of handlers. It implements http.Handler.
type Chain struct {
	handlers []Handler
	notFound http.Handler
}

var _ http.Handler = (*Chain)(nil)

// New returns a chain that answers unmatched requests with
// 404 {"error":"Not found."}.
func New(handlers ...Handler) *Chain {
	return &Chain{
		handlers: handlers,
		notFound: http.HandlerFunc(notFound),
	}
}

// Add appends handlers after the ones already registered.
func (c *Chain) Add(handlers ...Handler) {
	c.handlers = append(c.handlers, handlers...)
}

// NotFound replaces the handler used when nothing in the chain matches.
func (c *Chain) NotFound(h http.Handler) {
	c.notFound = h
}

// Handle lets a chain be nested inside another chain.
func (c *Chain) Handle(w http.ResponseWriter, r *http.Request) bool {
	for _, h := range c.handlers {
		if h.Handle(w, r) {
			return true
		}
	}
	return false
}

func (c *Chain) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if c.Handle(w, r) {
		return
	}
	c.notFound.ServeHTTP(w, r)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	web.RespondNotFound(w, errors.New("no handler for "+r.Method+" "+r.URL.Path), message.NotFound)
}

// Pair couples a predicate with the handler it guards.
type Pair struct {
	Match   Predicate
	Handler http.Handler
}

var _ Handler = Pair{}

// Handle runs the handler when the predicate matches, exposing the bound
// parameters through Param.
func (p Pair) Handle(w http.ResponseWriter, r *http.Request) bool {
	params, ok := p.Match(r)
	if !ok {
		return false
	}

	ctx := context.WithValue(r.Context(), paramsCtxKey, params)
	p.Handler.ServeHTTP(w, r.WithContext(ctx))
	return true
}

// Method returns a predicate accepting requests with the given method whose
// path matches pattern segment by segment (see route.Match).
func Method(method, pattern string) Predicate {
	return func(r *http.Request) (route.Params, bool) {
		if r.Method != method {
			return nil, false
		}
		return route.Match(pattern, r.URL.Path)
	}
}

// Route builds the pair for method and pattern. Middlewares wrap the handler
// in the given order, the first one being the outermost.
func Route(method, pattern string, handler http.HandlerFunc, middlewares ...func(http.Handler) http.Handler) Pair {
	var h http.Handler = handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}

	return Pair{
		Match:   Method(method, pattern),
		Handler: h,
	}
}

// Group bundles the routes of one resource so they occupy a single position
// in a chain.
type Group []Pair

var _ Handler = Group{}

func (g Group) Handle(w http.ResponseWriter, r *http.Request) bool {
	for _, p := range g {
		if p.Handle(w, r) {
			return true
		}
	}
	return false
}

type ctxKey int

const paramsCtxKey ctxKey = iota

// Param returns the path parameter name bound by the matching route.
func Param(r *http.Request, name string) string {
	params, _ := r.Context().Value(paramsCtxKey).(route.Params)
	return params.Get(name)
}
