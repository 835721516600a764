// Package routepattern compiles route templates like /greet/{name} into
// ordered segment sequences used by the router for matching.
package routepattern

import (
	"fmt"
	"strings"
)

// Segment is one /-delimited component of a compiled pattern.
// A segment is either a literal matched verbatim or a named parameter.
type Segment struct {
	// Literal is the exact text to match when IsParam is false.
	Literal string

	// IsParam indicates this is a parameter segment ({name}).
	IsParam bool

	// Name is the parameter name (without braces).
	Name string
}

// Pattern is a compiled route template: an ordered sequence of segments.
// The root template "/" compiles to an empty sequence.
type Pattern struct {
	template string
	segments []Segment
}

// Template returns the template text the pattern was compiled from.
func (p Pattern) Template() string { return p.template }

// Segments returns the compiled segment sequence.
func (p Pattern) Segments() []Segment { return p.segments }

// PatternError reports a malformed route template. It is returned at
// registration time; a server never starts with a malformed pattern.
type PatternError struct {
	Template string
	Segment  string
	Reason   string
}

// Error returns the error message.
func (e *PatternError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("routepattern: template %q: %s", e.Template, e.Reason)
	}
	return fmt.Sprintf("routepattern: template %q, segment %q: %s", e.Template, e.Segment, e.Reason)
}

// Compile parses a route template into a Pattern.
//
// The template is split on "/", one segment per non-empty component, so
// leading and trailing slashes carry no meaning. A component wrapped in
// braces becomes a parameter segment; any other text is a literal matched
// verbatim (case-sensitive).
//
// Compile fails with a *PatternError when a parameter has an empty name,
// a parameter name repeats within the template, or a component mixes
// literal text with brace syntax (e.g. "abc{name}").
func Compile(template string) (Pattern, error) {
	parts := strings.Split(strings.Trim(template, "/"), "/")

	var segments []Segment
	seen := map[string]bool{}

	for _, part := range parts {
		if part == "" {
			// Collapses "//" and the root template to nothing.
			continue
		}

		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			name := part[1 : len(part)-1]
			if name == "" {
				return Pattern{}, &PatternError{Template: template, Segment: part, Reason: "empty parameter name"}
			}
			if strings.ContainsAny(name, "{}") {
				return Pattern{}, &PatternError{Template: template, Segment: part, Reason: "nested braces in parameter name"}
			}
			if seen[name] {
				return Pattern{}, &PatternError{Template: template, Segment: part, Reason: fmt.Sprintf("duplicate parameter name %q", name)}
			}
			seen[name] = true
			segments = append(segments, Segment{IsParam: true, Name: name})
			continue
		}

		if strings.ContainsAny(part, "{}") {
			// Mixed forms like abc{name} are rejected outright, never
			// partially matched.
			return Pattern{}, &PatternError{Template: template, Segment: part, Reason: "segment mixes literal and parameter syntax"}
		}

		segments = append(segments, Segment{Literal: part})
	}

	return Pattern{template: template, segments: segments}, nil
}

// SplitPath splits a request path into segments the way templates are
// split: leading and trailing slashes are normalized away, so /greet/bob
// and /greet/bob/ produce the same segments. Interior empty components
// ("//") are kept; they are zero-length and never satisfy a matcher.
func SplitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
