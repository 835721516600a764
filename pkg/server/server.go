package server

import (
	"errors"
	"log/slog"
	"net"
	"runtime/debug"
	"sync"

	"github.com/wisp-dev/wisp/pkg/protocol"
	"github.com/wisp-dev/wisp/pkg/router"
)

// Middleware wraps the dispatch handler. Middleware observes every
// request, including ones that end in 404 or 500.
type Middleware func(router.Handler) router.Handler

// Server is an embeddable HTTP/1.1 server: routes are registered
// builder-style, then BindAndRun blocks serving connections, one
// goroutine per accepted connection.
//
//	err := server.New(nil).
//		AddRoute(protocol.MethodGet, "/", index).
//		AddRoute(protocol.MethodGet, "/greet/{name}", greet).
//		BindAndRun("127.0.0.1:8080")
//
// The route table is immutable once serving starts; AddRoute after
// that point is a programming error and panics.
type Server struct {
	router     *router.Router
	config     *Config
	logger     *slog.Logger
	middleware []Middleware

	// handler is the dispatch pipeline with middleware applied. Built
	// once when serving starts, read-only afterwards.
	handler router.Handler

	// registrationErr is the first pattern error recorded by AddRoute.
	// Registration is chainable, so the error is held until BindAndRun,
	// which refuses to bind while it is set.
	registrationErr error

	mu       sync.Mutex
	listener net.Listener
	serving  bool
	closed   bool
	wg       sync.WaitGroup
}

// New creates a Server with the given configuration. A nil config uses
// defaults; unset fields are filled in.
func New(config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	} else {
		config = config.Clone()
		config.fillDefaults()
	}

	return &Server{
		router: router.New(),
		config: config,
		logger: config.Logger,
	}
}

// AddRoute registers a handler for method and template, returning the
// server for chaining. A malformed template records the
// *routepattern.PatternError; further AddRoute calls are no-ops and
// BindAndRun surfaces the error instead of binding, so a server never
// starts with a broken route table.
func (s *Server) AddRoute(method protocol.Method, template string, handler router.Handler) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.serving {
		panic("server: AddRoute after BindAndRun")
	}
	if s.registrationErr != nil {
		return s
	}
	s.registrationErr = s.router.Add(method, template, handler)
	return s
}

// Err returns the error recorded during route registration, if any.
func (s *Server) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registrationErr
}

// Use appends middleware around dispatch. The first middleware added
// is outermost. Like AddRoute, Use must happen before serving starts.
func (s *Server) Use(mw Middleware) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.serving {
		panic("server: Use after BindAndRun")
	}
	s.middleware = append(s.middleware, mw)
	return s
}

// Router returns the route table.
func (s *Server) Router() *router.Router { return s.router }

// Config returns the server configuration.
func (s *Server) Config() *Config { return s.config }

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger { return s.logger }

// BindAndRun binds addr and serves until Close. An empty addr falls
// back to the configured address. Binding failures are returned as a
// *BindError without starting the accept loop; a recorded registration
// error is returned before binding is even attempted. On cooperative
// shutdown via Close, BindAndRun returns ErrServerClosed after
// in-flight connections finish.
func (s *Server) BindAndRun(addr string) error {
	if addr == "" {
		addr = s.config.Address
	}
	if err := s.Err(); err != nil {
		return err
	}
	if err := s.config.Validate(); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return &BindError{Addr: addr, Err: err}
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Close, dispatching each to its
// own goroutine. Embedders that need the bound address (tests, port 0)
// can listen themselves and hand the listener over.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		ln.Close()
		return ErrServerClosed
	}
	if s.serving {
		s.mu.Unlock()
		ln.Close()
		return ErrAlreadyServing
	}
	if err := s.registrationErr; err != nil {
		s.mu.Unlock()
		ln.Close()
		return err
	}
	s.serving = true
	s.listener = ln
	s.handler = s.buildHandler()
	s.mu.Unlock()

	s.logger.Info("server listening", "address", ln.Addr().String())

	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.isClosed() || errors.Is(err, net.ErrClosed) {
				// Cooperative shutdown: let in-flight connections
				// finish their request/response cycle.
				s.wg.Wait()
				s.logger.Info("server stopped", "address", ln.Addr().String())
				return ErrServerClosed
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				s.logger.Warn("transient accept failure", "error", err)
				continue
			}
			s.logger.Error("listener failed", "error", err)
			return err
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(conn)
		}()
	}
}

// Close stops accepting connections. Serve and BindAndRun return
// ErrServerClosed once in-flight connections drain.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// buildHandler wraps dispatch in the registered middleware,
// outermost-first.
func (s *Server) buildHandler() router.Handler {
	h := s.dispatch
	for i := len(s.middleware) - 1; i >= 0; i-- {
		h = s.middleware[i](h)
	}
	return h
}

// invoke runs the middleware-wrapped pipeline with a panic guard at
// the connection boundary. dispatch already contains handler panics;
// this one catches panics raised inside middleware itself, so a broken
// middleware costs one connection, not the process.
func (s *Server) invoke(req *protocol.Request) (resp protocol.Response) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("middleware panic",
				"method", req.Method().String(),
				"path", req.Path(),
				"panic", r,
				"stack", string(debug.Stack()))
			resp = protocol.Status(protocol.StatusInternalServerError)
		}
	}()
	return s.handler(req)
}

// dispatch matches the request against the route table and invokes the
// winning handler. Every non-match is a 404; a path registered under a
// different method gets no distinct 405 treatment. A handler panic is
// contained here and becomes a 500, never reaching the connection's
// I/O layer or the accept loop.
func (s *Server) dispatch(req *protocol.Request) (resp protocol.Response) {
	handler, params, ok := s.router.Match(req.Method(), req.Path())
	if !ok {
		return protocol.NotFound()
	}
	req.SetParams(params)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("handler panic",
				"method", req.Method().String(),
				"path", req.Path(),
				"panic", r,
				"stack", string(debug.Stack()))
			resp = protocol.Status(protocol.StatusInternalServerError)
		}
	}()
	return handler(req)
}
