package routes

import (
	"fmt"
	"net/url"
	"strings"
)

// Static is an immutable route table.
type Static struct {
	byName map[string]*url.URL
	byKey  map[string]string
	byPath map[string]string
}

// NewStatic builds a table from route names to absolute URLs.
// URLs may carry a query string; it becomes part of every link for that route.
func NewStatic(table map[string]string) (*Static, error) {
	s := &Static{
		byName: make(map[string]*url.URL, len(table)),
		byKey:  make(map[string]string, len(table)),
		byPath: make(map[string]string, len(table)),
	}

	for name, raw := range table {
		if name == "" {
			return nil, fmt.Errorf("%w: empty route name", ErrUnknownRoute)
		}
		u, err := url.Parse(raw)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidRouteURL, name, raw)
		}

		key := matchKey(u)
		if other, ok := s.byKey[key]; ok {
			return nil, fmt.Errorf("%w: %s and %s", ErrDuplicateRoute, other, name)
		}
		s.byName[name] = u
		s.byKey[key] = name

		// Path-only lookups are ambiguous when two hosts serve the same path.
		if _, ok := s.byPath[normalizePath(u.Path)]; ok {
			s.byPath[normalizePath(u.Path)] = ""
		} else {
			s.byPath[normalizePath(u.Path)] = name
		}
	}

	return s, nil
}

// URL returns a copy of the route's absolute URL.
func (s *Static) URL(route string) (*url.URL, error) {
	u, ok := s.byName[route]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}
	cp := *u
	return &cp, nil
}

// Route returns the name of the route u points at.
func (s *Static) Route(u *url.URL) (string, bool) {
	if u == nil {
		return "", false
	}
	if u.Host == "" {
		name := s.byPath[normalizePath(u.Path)]
		return name, name != ""
	}
	name, ok := s.byKey[matchKey(u)]
	return name, ok
}

func matchKey(u *url.URL) string {
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host) + normalizePath(u.Path)
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
