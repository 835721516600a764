package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/wisp-dev/wisp/pkg/middleware"
	"github.com/wisp-dev/wisp/pkg/protocol"
	"github.com/wisp-dev/wisp/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		addr        string
		readTimeout time.Duration
		metrics     bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo server",
		Long: `Run a demo server with a couple of routes:

  GET /              a hello-world JSON body
  GET /greet/{name}  a plain-text greeting

The server runs until interrupted; SIGINT or SIGTERM triggers a
cooperative shutdown that lets in-flight requests finish.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			srv := server.New(&server.Config{
				Address:     addr,
				ReadTimeout: readTimeout,
			}).
				AddRoute(protocol.MethodGet, "/", index).
				AddRoute(protocol.MethodGet, "/greet/{name}", greet)
			if err := srv.Err(); err != nil {
				return err
			}

			if metrics {
				srv.Use(middleware.Prometheus())
			}

			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-shutdown
				logger.Info("shutting down...")
				srv.Close()
			}()

			if err := srv.BindAndRun(addr); !errors.Is(err, server.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Address to listen on")
	cmd.Flags().DurationVar(&readTimeout, "read-timeout", 10*time.Second, "Per-connection read timeout")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Collect Prometheus request metrics")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func index(*protocol.Request) protocol.Response {
	return protocol.JSON(`{"msg":"hello world"}`)
}

func greet(req *protocol.Request) protocol.Response {
	name, ok := req.Params().Get("name")
	return protocol.TextOrNotFound("Hello "+name+"!", ok)
}
