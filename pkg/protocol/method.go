package protocol

import "fmt"

// Method is an HTTP request method. Only the closed set below is
// recognized; anything else fails request parsing.
type Method string

// Recognized request methods.
const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// ParseMethod converts a method token into a Method.
// Comparison is exact; method tokens are case-sensitive per HTTP/1.1.
func ParseMethod(token string) (Method, error) {
	switch Method(token) {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch, MethodHead, MethodOptions:
		return Method(token), nil
	}
	return "", &RequestError{Kind: KindMalformed, Op: "parse method", Message: fmt.Sprintf("unrecognized method %q", token)}
}

// String returns the method token.
func (m Method) String() string { return string(m) }
