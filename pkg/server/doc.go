// Package server is the embeddable HTTP/1.1 server core of wisp.
//
// A Server owns a route table and a TCP listener. Routes are
// registered builder-style before serving; the table is read-only once
// BindAndRun starts, so concurrent dispatch needs no locks. Each
// accepted connection is handled on its own goroutine and serves
// exactly one request/response cycle: parse, match, invoke, serialize,
// close. There is no keep-alive, TLS, HTTP/2 or chunked transfer
// support.
//
// Per-connection failures (malformed requests, handler panics, peer
// resets, read timeouts) are converted to an error response where
// possible and never disturb the accept loop or other connections.
// Only a bind failure is fatal to the serving attempt, and only a
// malformed route template is fatal to construction.
package server
