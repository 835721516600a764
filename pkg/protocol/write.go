package protocol

import (
	"bufio"
	"fmt"
	"io"
)

// WriteResponse serializes a Response to w: status line, headers
// including a computed Content-Length, blank line, body. Headers are
// written in sorted order so output is deterministic.
func WriteResponse(w io.Writer, resp Response) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "HTTP/1.1 %d %s\r\n", resp.StatusCode, ReasonPhrase(resp.StatusCode)); err != nil {
		return err
	}

	headers := resp.Headers
	if headers == nil {
		headers = Header{}
	}
	// Content-Length is always computed from the actual body, never
	// trusted from the handler.
	headers = headers.Clone()
	headers.Del("Content-Length")

	for _, name := range headers.sortedNames() {
		if _, err := fmt.Fprintf(bw, "%s: %s\r\n", name, headers[name]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "Content-Length: %d\r\n\r\n", len(resp.Body)); err != nil {
		return err
	}
	if _, err := bw.Write(resp.Body); err != nil {
		return err
	}
	return bw.Flush()
}
