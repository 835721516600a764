package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wisp",
		Short: "A minimal embeddable HTTP/1.1 server",
		Long: `wisp is a small HTTP/1.1 server built for embedding.

Routes bind a method and path template to a handler function:

  srv := server.New(nil).
      AddRoute(protocol.MethodGet, "/greet/{name}", greet)
  srv.BindAndRun(":8080")

The wisp command runs a demo server for poking at the wire protocol.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
