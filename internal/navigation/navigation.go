// Package navigation is a client-side router: it maps locations to views and
// keeps exactly one view mounted, running the previous view's cleanup before
// the next one renders.
package navigation

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/ferdiebergado/boring/internal/pkg/route"
)

// Request describes the location a view is rendered for.
type Request struct {
	Path   string
	Params route.Params
	Query  url.Values
}

// Cleanup releases what a view acquired (timers, subscriptions, pending
// calls). It runs before the next view renders.
type Cleanup func(ctx context.Context) error

// View renders itself for req. ctx is canceled as soon as another navigation
// starts, so work still in flight for this view can tell it is stale. A nil
// Cleanup means there is nothing to release.
//
// A view redirects by calling Navigate with its ctx before it returns; the
// router renders the new target once the view is done. A Cleanup must not
// call Navigate, Back or Forward on its router.
type View func(ctx context.Context, req Request) (Cleanup, error)

const maxRedirects = 10

type mountKey struct{}

// mount collects a redirect requested while its view is still rendering.
type mount struct {
	mu       sync.Mutex
	done     bool
	redirect string
}

func (m *mount) requestRedirect(target string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done {
		return false
	}
	m.redirect = target
	return true
}

func (m *mount) finish() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.done = true
	return m.redirect, m.redirect != ""
}

type entry struct {
	pattern string
	view    View
}

type Router struct {
	mu       sync.Mutex
	routes   []entry
	notFound View

	cleanup Cleanup
	cancel  context.CancelFunc

	history []string
	pos     int
}

func New() *Router {
	return &Router{
		notFound: func(context.Context, Request) (Cleanup, error) { return nil, nil },
		pos:      -1,
	}
}

// Handle registers view for pattern. Patterns are tried in registration
// order, see route.Match.
func (r *Router) Handle(pattern string, view View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, entry{pattern: pattern, view: view})
}

// NotFound sets the view rendered when no pattern matches.
func (r *Router) NotFound(view View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notFound = view
}

// Navigate renders the view for target and pushes it onto the history,
// dropping any forward entries. Called from a rendering view with the view's
// ctx, it records a redirect and returns immediately.
func (r *Router) Navigate(ctx context.Context, target string) error {
	if m, ok := ctx.Value(mountKey{}).(*mount); ok && m.requestRedirect(target) {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	mounted, err := r.render(ctx, target)
	if err != nil {
		return err
	}

	r.history = append(r.history[:r.pos+1], mounted)
	r.pos = len(r.history) - 1
	return nil
}

// Back renders the previous history entry. It reports false when there is
// none.
func (r *Router) Back(ctx context.Context) (bool, error) {
	return r.step(ctx, -1)
}

// Forward renders the next history entry. It reports false when there is
// none.
func (r *Router) Forward(ctx context.Context) (bool, error) {
	return r.step(ctx, 1)
}

func (r *Router) step(ctx context.Context, delta int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.pos + delta
	if next < 0 || next >= len(r.history) {
		return false, nil
	}

	mounted, err := r.render(ctx, r.history[next])
	if err != nil {
		return false, err
	}
	r.history[next] = mounted
	r.pos = next
	return true, nil
}

// Current returns the location of the mounted view, or "" before the first
// navigation.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pos < 0 {
		return ""
	}
	return r.history[r.pos]
}

// Close unmounts the current view.
func (r *Router) Close(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unmount(ctx)
}

// render mounts the view for target and follows its redirects. It returns
// the location that ended up mounted.
func (r *Router) render(ctx context.Context, target string) (string, error) {
	for range maxRedirects {
		u, err := url.Parse(target)
		if err != nil {
			return "", fmt.Errorf("navigate to %q: %w", target, err)
		}

		r.unmount(ctx)

		req := Request{
			Path:  u.Path,
			Query: u.Query(),
		}
		view := r.notFound
		for _, e := range r.routes {
			if params, ok := route.Match(e.pattern, u.Path); ok {
				req.Params = params
				view = e.view
				break
			}
		}

		// the mount outlives ctx, which only bounds this navigation.
		m := &mount{}
		mountCtx, cancel := context.WithCancel(context.WithValue(context.WithoutCancel(ctx), mountKey{}, m))
		cleanup, err := view(mountCtx, req)
		redirect, redirected := m.finish()
		if err != nil {
			cancel()
			return "", fmt.Errorf("render %q: %w", target, err)
		}

		r.cleanup = cleanup
		r.cancel = cancel
		if !redirected {
			return target, nil
		}
		target = redirect
	}

	r.unmount(ctx)
	return "", fmt.Errorf("navigate to %q: more than %d redirects", target, maxRedirects)
}

func (r *Router) unmount(ctx context.Context) {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}

	if r.cleanup == nil {
		return
	}

	cleanup := r.cleanup
	r.cleanup = nil
	if err := cleanup(ctx); err != nil {
		slog.Warn("View cleanup failed.", "reason", err)
	}
}
