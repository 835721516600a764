// Package router owns the route table and matches incoming
// (method, path) pairs against registered patterns.
package router

import (
	"net/url"

	"github.com/wisp-dev/wisp/pkg/protocol"
	"github.com/wisp-dev/wisp/pkg/routepattern"
)

// Handler processes one request and produces one response.
type Handler func(*protocol.Request) protocol.Response

// Route is one (method, pattern, handler) registration. Routes are
// created at registration time and never mutated afterwards.
type Route struct {
	Method  protocol.Method
	Pattern routepattern.Pattern
	Handler Handler
}

// Router holds registered routes and matches requests against them.
//
// The table is built during setup and treated as read-only once the
// server starts serving, which is what makes concurrent matching safe
// without locks.
type Router struct {
	routes []Route
}

// New creates an empty router.
func New() *Router {
	return &Router{}
}

// Add compiles the template and appends a route. A malformed template
// surfaces the *routepattern.PatternError; the table is unchanged.
func (r *Router) Add(method protocol.Method, template string, handler Handler) error {
	pattern, err := routepattern.Compile(template)
	if err != nil {
		return err
	}
	r.routes = append(r.routes, Route{Method: method, Pattern: pattern, Handler: handler})
	return nil
}

// Len returns the number of registered routes.
func (r *Router) Len() int { return len(r.routes) }

// Routes returns a copy of the route table in registration order.
func (r *Router) Routes() []Route {
	routes := make([]Route, len(r.routes))
	copy(routes, r.routes)
	return routes
}

// Match finds the first registered route satisfying method and path.
//
// The path is percent-decoded, then split into segments the same way
// templates are. Candidates are tried in registration order; literal
// segments must match the decoded text exactly, parameter segments
// match any non-empty segment and bind it. There is no specificity
// scoring, so registration order is the tie-break.
//
// A path that matches a route under a different method is still a
// non-match; the dispatch layer treats every non-match as not-found.
func (r *Router) Match(method protocol.Method, path string) (Handler, protocol.Params, bool) {
	decoded, err := url.PathUnescape(path)
	if err != nil {
		// Undecodable escapes can never equal a decoded literal.
		return nil, protocol.Params{}, false
	}
	segments := routepattern.SplitPath(decoded)

	var params protocol.Params
	for _, route := range r.routes {
		if route.Method != method {
			continue
		}
		params.Reset()
		if matchSegments(route.Pattern.Segments(), segments, &params) {
			return route.Handler, params, true
		}
	}
	return nil, protocol.Params{}, false
}

// matchSegments compares pattern segments against path segments,
// binding parameters as it goes. Segment counts must be equal; empty
// path segments (from "//") satisfy nothing.
func matchSegments(pattern []routepattern.Segment, segments []string, params *protocol.Params) bool {
	if len(pattern) != len(segments) {
		return false
	}
	for i, seg := range pattern {
		if seg.IsParam {
			if segments[i] == "" {
				return false
			}
			params.Add(seg.Name, segments[i])
			continue
		}
		if seg.Literal != segments[i] {
			return false
		}
	}
	return true
}
