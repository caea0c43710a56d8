package routes

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
)

// Mux resolves routes through the named routes of a gorilla/mux router.
type Mux struct {
	router *mux.Router
	base   *url.URL
}

// NewMux wraps r. baseURL supplies the scheme and host for routes that do not
// declare a host matcher themselves.
func NewMux(r *mux.Router, baseURL string) (*Mux, error) {
	if r == nil {
		return nil, ErrMissingRouter
	}
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("%w: base %q", ErrInvalidRouteURL, baseURL)
	}
	return &Mux{router: r, base: base}, nil
}

// URL builds the absolute URL of the named route.
// Routes with path variables cannot be resolved without values and return the mux error.
func (m *Mux) URL(route string) (*url.URL, error) {
	rt := m.router.Get(route)
	if rt == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}
	u, err := rt.URL()
	if err != nil {
		return nil, fmt.Errorf("routes: build %q: %w", route, err)
	}
	if u.Host == "" {
		u.Scheme = m.base.Scheme
		u.Host = m.base.Host
	}
	if u.Scheme == "" {
		u.Scheme = m.base.Scheme
	}
	return u, nil
}

// Route matches u against the router the way an incoming GET request would be.
func (m *Mux) Route(u *url.URL) (string, bool) {
	if u == nil {
		return "", false
	}

	target := *u
	if target.Host == "" {
		target.Scheme = m.base.Scheme
		target.Host = m.base.Host
	} else if !strings.EqualFold(target.Scheme, m.base.Scheme) {
		return "", false
	}

	req := &http.Request{
		Method: http.MethodGet,
		URL:    &target,
		Host:   target.Host,
		Header: make(http.Header),
	}

	var match mux.RouteMatch
	if !m.router.Match(req, &match) || match.MatchErr != nil || match.Route == nil {
		return "", false
	}
	// Routes without a host matcher accept any host; pin them to the base host.
	if _, err := match.Route.GetHostTemplate(); err != nil && !strings.EqualFold(target.Host, m.base.Host) {
		return "", false
	}
	name := match.Route.GetName()
	return name, name != ""
}
