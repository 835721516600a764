package protocol

import (
	"net/textproto"
	"sort"
)

// Header is a case-insensitive mapping from header name to value.
// Keys are stored in canonical MIME form (Content-Type), so lookups
// with any casing agree.
type Header map[string]string

// Set stores the value under the canonical form of name, replacing any
// existing value.
func (h Header) Set(name, value string) {
	h[textproto.CanonicalMIMEHeaderKey(name)] = value
}

// Get returns the value stored under name, case-insensitively.
func (h Header) Get(name string) string {
	return h[textproto.CanonicalMIMEHeaderKey(name)]
}

// Has reports whether a value is stored under name.
func (h Header) Has(name string) bool {
	_, ok := h[textproto.CanonicalMIMEHeaderKey(name)]
	return ok
}

// Del removes the value stored under name.
func (h Header) Del(name string) {
	delete(h, textproto.CanonicalMIMEHeaderKey(name))
}

// Clone returns a copy of the header map.
func (h Header) Clone() Header {
	if h == nil {
		return nil
	}
	clone := make(Header, len(h))
	for k, v := range h {
		clone[k] = v
	}
	return clone
}

// sortedNames returns the header names in lexicographic order.
// Serialization uses a stable order so responses are deterministic.
func (h Header) sortedNames() []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
