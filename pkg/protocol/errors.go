package protocol

import "fmt"

// ErrorKind classifies a request parsing failure.
type ErrorKind int

const (
	// KindMalformed covers unparseable request lines, header lines
	// without a colon, bad Content-Length values, and bodies cut short.
	KindMalformed ErrorKind = iota

	// KindUnsupportedEncoding is reported when a request declares a
	// chunked transfer encoding, which this server does not implement.
	KindUnsupportedEncoding
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindMalformed:
		return "malformed request"
	case KindUnsupportedEncoding:
		return "unsupported encoding"
	}
	return "unknown"
}

// RequestError reports a failure while reading one request from a
// connection. It carries enough context to pick a response status and
// log the failing parse stage.
type RequestError struct {
	Kind    ErrorKind
	Op      string // parse stage that failed
	Message string
	Err     error // underlying I/O error, if any
}

// Error returns the error message.
func (e *RequestError) Error() string {
	msg := fmt.Sprintf("protocol: %s: %s", e.Op, e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *RequestError) Unwrap() error { return e.Err }

// Status returns the response status code this error maps to.
func (e *RequestError) Status() int {
	if e.Kind == KindUnsupportedEncoding {
		return StatusNotImplemented
	}
	return StatusBadRequest
}
