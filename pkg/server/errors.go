package server

import (
	"errors"
	"fmt"
)

// Sentinel errors for server lifecycle conditions.
var (
	// ErrServerClosed is returned by BindAndRun and Serve after Close.
	ErrServerClosed = errors.New("server: closed")

	// ErrAlreadyServing is returned when BindAndRun or Serve is called
	// on a server that is already serving.
	ErrAlreadyServing = errors.New("server: already serving")
)

// BindError reports that the listener could not be created: address in
// use, permission denied, or an unresolvable address. It is surfaced to
// the caller of BindAndRun before the accept loop starts.
type BindError struct {
	Addr string
	Err  error
}

// Error returns the error message.
func (e *BindError) Error() string {
	return fmt.Sprintf("server: bind %s: %v", e.Addr, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *BindError) Unwrap() error { return e.Err }
