package navigation

import (
	"context"
	"net/url"
)

const buttonPrimary = 0

// Link is an activated anchor together with the state of the pointer event
// that activated it.
type Link struct {
	Href     string
	Target   string
	Download bool
	Button   int

	Meta, Ctrl, Shift, Alt bool
}

// ShouldIntercept reports whether activating link should be handled by the
// router instead of the host. Only plain primary clicks on same-origin links
// that open in place qualify.
func ShouldIntercept(origin *url.URL, link Link) bool {
	if link.Button != buttonPrimary || link.Meta || link.Ctrl || link.Shift || link.Alt {
		return false
	}
	if link.Download || link.Target == "_blank" {
		return false
	}

	u, ok := resolve(origin, link.Href)
	if !ok {
		return false
	}
	return u.Scheme == origin.Scheme && u.Host == origin.Host
}

// Intercept navigates to link when ShouldIntercept accepts it and reports
// whether it did.
func (r *Router) Intercept(ctx context.Context, origin *url.URL, link Link) (bool, error) {
	if !ShouldIntercept(origin, link) {
		return false, nil
	}

	u, _ := resolve(origin, link.Href)
	target := u.EscapedPath()
	if target == "" {
		target = "/"
	}
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}

	if err := r.Navigate(ctx, target); err != nil {
		return true, err
	}
	return true, nil
}

func resolve(origin *url.URL, href string) (*url.URL, bool) {
	if origin == nil || href == "" {
		return nil, false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return nil, false
	}
	return origin.ResolveReference(ref), true
}
