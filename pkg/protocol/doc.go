// Package protocol implements the HTTP/1.1 subset wisp speaks on the
// wire: the closed method set, case-insensitive headers, the Request
// and Response value types with their ergonomic constructors, request
// parsing from a buffered connection, and response serialization.
//
// The package is transport-agnostic: it reads from an io source and
// writes to an io sink. Sockets, deadlines and dispatch belong to
// pkg/server.
//
// Parsing moves through the request line, the header block, then an
// optional Content-Length body. Chunked transfer encoding is declared
// unsupported rather than half-parsed, and connections serve exactly
// one request each, so there is no keep-alive state to track.
package protocol
