// Package route matches request paths against segment patterns such as
// /api/items/:id.
package route

import "strings"

const (
	sep         = "/"
	paramPrefix = ":"
)

// Params holds the values bound to the :name segments of a pattern.
type Params map[string]string

// Get returns the value bound to name, or an empty string.
func (p Params) Get(name string) string {
	return p[name]
}

// Match compares pattern and path segment by segment.
//
// Segments starting with a colon bind the corresponding path segment to a
// parameter, every other segment must be equal. Both sides must have the same
// number of segments, so "/api/items/:id" matches "/api/items/42" but neither
// "/api/items" nor "/api/items/42/extra". A parameter never binds an empty
// segment.
func Match(pattern, path string) (Params, bool) {
	patternSegs := strings.Split(pattern, sep)
	pathSegs := strings.Split(path, sep)

	if len(patternSegs) != len(pathSegs) {
		return nil, false
	}

	params := Params{}
	for i, seg := range patternSegs {
		if name, ok := strings.CutPrefix(seg, paramPrefix); ok && name != "" {
			if pathSegs[i] == "" {
				return nil, false
			}
			params[name] = pathSegs[i]
			continue
		}

		if seg != pathSegs[i] {
			return nil, false
		}
	}

	return params, true
}
