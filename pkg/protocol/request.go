package protocol

import "net/url"

// Request is one parsed HTTP request. A Request is created per
// connection by the server, handed to exactly one handler invocation,
// and discarded once the response is produced.
type Request struct {
	method   Method
	path     string // path as sent, no query string
	rawQuery string // query string as sent, never parsed by the core
	params   Params
	headers  Header
	body     []byte
}

// NewRequest builds a Request from parsed components. The server uses
// this after reading the wire form; tests use it to invoke handlers
// directly.
func NewRequest(method Method, path string, headers Header, body []byte) *Request {
	if headers == nil {
		headers = Header{}
	}
	return &Request{method: method, path: path, headers: headers, body: body}
}

// Method returns the request method.
func (r *Request) Method() Method { return r.method }

// Path returns the request path without the query string.
func (r *Request) Path() string { return r.path }

// RawQuery returns the query string as it appeared on the wire, without
// the leading "?". Empty when the request target had no query string.
func (r *Request) RawQuery() string { return r.rawQuery }

// Queries parses the raw query string into url.Values. Parsing happens
// on demand; the connection handler itself never touches the query
// string. Malformed pairs are dropped rather than failing the request.
func (r *Request) Queries() url.Values {
	values, err := url.ParseQuery(r.rawQuery)
	if err != nil {
		return url.Values{}
	}
	return values
}

// Params returns the route parameter bindings for the matched pattern.
func (r *Request) Params() *Params { return &r.params }

// SetParams installs the bindings produced by route matching.
func (r *Request) SetParams(p Params) { r.params = p }

// Headers returns the request headers. Lookups are case-insensitive.
func (r *Request) Headers() Header { return r.headers }

// Body returns the request body, or nil when no body was sent.
func (r *Request) Body() []byte { return r.body }
