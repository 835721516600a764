package server

import (
	"bufio"
	"errors"
	"net"
	"time"

	"github.com/wisp-dev/wisp/pkg/protocol"
)

// handleConn serves exactly one request/response cycle on conn, then
// closes it. Failures here are isolated to this connection: the accept
// loop and every other connection keep running.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()
	start := time.Now()

	if s.config.ReadTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	}

	req, err := protocol.ReadRequest(bufio.NewReader(conn), protocol.Limits{
		MaxHeaderBytes: s.config.MaxHeaderBytes,
		MaxBodyBytes:   s.config.MaxBodyBytes,
	})

	if s.config.WriteTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	}

	if err != nil {
		var reqErr *protocol.RequestError
		if errors.As(err, &reqErr) {
			s.logger.Debug("rejecting request",
				"remote", conn.RemoteAddr().String(),
				"error", err)
			s.writeError(conn, reqErr)
			return
		}
		// Nothing usable arrived: the peer hung up or the read
		// deadline fired before any bytes. Close silently.
		s.logger.Debug("connection ended before request",
			"remote", conn.RemoteAddr().String(),
			"error", err)
		return
	}

	resp := s.invoke(req)

	if err := protocol.WriteResponse(conn, resp); err != nil {
		// The peer is gone; there is no channel left to report on.
		s.logger.Debug("response write failed",
			"remote", conn.RemoteAddr().String(),
			"error", err)
		return
	}

	s.logger.Info("request served",
		"method", req.Method().String(),
		"path", req.Path(),
		"status", resp.StatusCode,
		"duration", time.Since(start))
}

// writeError turns a parse failure into an HTTP error response. A
// write failure here means the peer already disconnected; the
// connection just closes.
func (s *Server) writeError(conn net.Conn, reqErr *protocol.RequestError) {
	resp := protocol.Status(reqErr.Status())
	resp.Headers.Set("Content-Type", "text/plain")
	resp.Body = []byte(reqErr.Kind.String())

	if err := protocol.WriteResponse(conn, resp); err != nil {
		s.logger.Debug("error response write failed",
			"remote", conn.RemoteAddr().String(),
			"error", err)
	}
}
