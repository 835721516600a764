package protocol

// Params holds the parameter bindings produced by matching a request
// path against a route pattern. Bindings keep the pattern's segment
// order; lookups are by name.
//
// The zero value is an empty, ready-to-use Params.
type Params struct {
	names  []string
	values []string
}

// Add appends a binding. Called by the router during matching; route
// patterns guarantee names are unique.
func (p *Params) Add(name, value string) {
	p.names = append(p.names, name)
	p.values = append(p.values, value)
}

// Get returns the value bound under name. The second return is false
// when the pattern had no such parameter. A parameter can never bind an
// empty string, since empty path segments do not satisfy a parameter
// matcher.
func (p *Params) Get(name string) (string, bool) {
	for i, n := range p.names {
		if n == name {
			return p.values[i], true
		}
	}
	return "", false
}

// Len returns the number of bindings.
func (p *Params) Len() int { return len(p.names) }

// Names returns the bound parameter names in pattern order.
func (p *Params) Names() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// Reset drops all bindings, keeping capacity. Used by the router to
// backtrack between candidate routes.
func (p *Params) Reset() {
	p.names = p.names[:0]
	p.values = p.values[:0]
}
