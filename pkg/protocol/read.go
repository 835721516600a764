package protocol

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Limits bounds how much of a single request the reader will accept.
type Limits struct {
	// MaxHeaderBytes bounds the request line plus all header lines.
	// 0 means no limit.
	MaxHeaderBytes int

	// MaxBodyBytes bounds the declared Content-Length. 0 means no limit.
	MaxBodyBytes int
}

// readState tracks the per-connection parse progression. One request
// moves through the states in order; there is no keep-alive loop.
type readState int

const (
	stateRequestLine readState = iota
	stateHeaders
	stateBody
	stateDone
)

// ReadRequest reads exactly one HTTP/1.1 request from br.
//
// Failures surface as *RequestError: malformed request lines, header
// lines without a colon, bad Content-Length values, and bodies cut
// short are KindMalformed; a declared chunked transfer encoding is
// KindUnsupportedEncoding. A connection that closes or times out
// before sending any bytes returns the underlying error unchanged
// (io.EOF, a deadline error), so the caller can drop it silently.
func ReadRequest(br *bufio.Reader, limits Limits) (*Request, error) {
	var (
		method    Method
		target    string
		headers   = Header{}
		body      []byte
		headerLen int
	)

	state := stateRequestLine
	for state != stateDone {
		switch state {
		case stateRequestLine:
			line, err := readLine(br, limits.MaxHeaderBytes, &headerLen)
			if err != nil {
				if headerLen == 0 {
					// Nothing arrived before the connection ended or
					// the read deadline fired. Not a protocol fault.
					return nil, err
				}
				return nil, wrapRead("read request line", err)
			}
			method, target, err = parseRequestLine(line)
			if err != nil {
				return nil, err
			}
			state = stateHeaders

		case stateHeaders:
			line, err := readLine(br, limits.MaxHeaderBytes, &headerLen)
			if err != nil {
				return nil, wrapRead("read headers", err)
			}
			if line == "" {
				state = stateBody
				break
			}
			name, value, ok := strings.Cut(line, ":")
			if !ok {
				return nil, &RequestError{Kind: KindMalformed, Op: "read headers", Message: "header line lacks colon separator"}
			}
			headers.Set(strings.TrimSpace(name), strings.TrimSpace(value))

		case stateBody:
			var err error
			body, err = readBody(br, headers, limits)
			if err != nil {
				return nil, err
			}
			state = stateDone
		}
	}

	path, rawQuery, _ := strings.Cut(target, "?")
	req := NewRequest(method, path, headers, body)
	req.rawQuery = rawQuery
	return req, nil
}

// parseRequestLine splits "METHOD SP request-target SP HTTP-version".
func parseRequestLine(line string) (Method, string, error) {
	parts := strings.Split(line, " ")
	if len(parts) != 3 {
		return "", "", &RequestError{Kind: KindMalformed, Op: "parse request line", Message: "expected method, target and version"}
	}
	method, err := ParseMethod(parts[0])
	if err != nil {
		return "", "", err
	}
	if parts[1] == "" {
		return "", "", &RequestError{Kind: KindMalformed, Op: "parse request line", Message: "empty request target"}
	}
	if parts[2] != "HTTP/1.1" && parts[2] != "HTTP/1.0" {
		return "", "", &RequestError{Kind: KindMalformed, Op: "parse request line", Message: "unsupported protocol version " + strconv.Quote(parts[2])}
	}
	return method, parts[1], nil
}

// readBody reads the declared body, if any. Chunked transfer encoding
// is declared unsupported rather than half-parsed.
func readBody(br *bufio.Reader, headers Header, limits Limits) ([]byte, error) {
	if strings.Contains(strings.ToLower(headers.Get("Transfer-Encoding")), "chunked") {
		return nil, &RequestError{Kind: KindUnsupportedEncoding, Op: "read body", Message: "chunked transfer encoding declared"}
	}

	declared := headers.Get("Content-Length")
	if declared == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(declared)
	if err != nil || n < 0 {
		return nil, &RequestError{Kind: KindMalformed, Op: "read body", Message: "invalid Content-Length " + strconv.Quote(declared)}
	}
	if limits.MaxBodyBytes > 0 && n > limits.MaxBodyBytes {
		return nil, &RequestError{Kind: KindMalformed, Op: "read body", Message: "declared body exceeds limit"}
	}
	if n == 0 {
		return nil, nil
	}

	body := make([]byte, n)
	if _, err := io.ReadFull(br, body); err != nil {
		// The peer closed before delivering the declared byte count.
		return nil, &RequestError{Kind: KindMalformed, Op: "read body", Message: "body shorter than Content-Length", Err: err}
	}
	return body, nil
}

// readLine reads one CRLF- or LF-terminated line, without the
// terminator. total accumulates bytes read against max. The limit is
// checked per buffered chunk, so a terminator-free stream fails once
// the budget is spent instead of accumulating unbounded.
func readLine(br *bufio.Reader, max int, total *int) (string, error) {
	var buf []byte
	for {
		chunk, err := br.ReadSlice('\n')
		buf = append(buf, chunk...)
		*total += len(chunk)
		if max > 0 && *total > max {
			return "", &RequestError{Kind: KindMalformed, Op: "read line", Message: "header section exceeds limit"}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil {
			return "", err
		}
		break
	}
	line := strings.TrimSuffix(string(buf), "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// wrapRead converts an I/O error into a malformed-request error unless
// it already is a *RequestError.
func wrapRead(op string, err error) error {
	if reqErr, ok := err.(*RequestError); ok {
		return reqErr
	}
	return &RequestError{Kind: KindMalformed, Op: op, Message: "connection ended mid-request", Err: err}
}
