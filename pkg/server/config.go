package server

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds configuration for the server.
type Config struct {
	// Address is the address to listen on (e.g. ":8080" or "localhost:3000").
	// Default: ":8080".
	Address string

	// ReadTimeout is the maximum time a connection may take to deliver
	// its request. A connection that produces no complete request in
	// time is closed; other connections are unaffected.
	// Default: 10 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to spend writing a response.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// MaxHeaderBytes bounds the request line plus header block.
	// Default: 64KB.
	MaxHeaderBytes int

	// MaxBodyBytes bounds the declared request body size.
	// Default: 1MB.
	MaxBodyBytes int

	// Logger is the structured logger for server events.
	// Default: slog.Default() scoped to the server component.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:        ":8080",
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 64 * 1024,
		MaxBodyBytes:   1 << 20, // 1MB
		Logger:         slog.Default().With("component", "server"),
	}
}

// fillDefaults replaces unset fields with their defaults.
func (c *Config) fillDefaults() {
	defaults := DefaultConfig()
	if c.Address == "" {
		c.Address = defaults.Address
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = defaults.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = defaults.WriteTimeout
	}
	if c.MaxHeaderBytes == 0 {
		c.MaxHeaderBytes = defaults.MaxHeaderBytes
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if c.Logger == nil {
		c.Logger = defaults.Logger
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.ReadTimeout < 0 {
		return fmt.Errorf("server: negative ReadTimeout %v", c.ReadTimeout)
	}
	if c.WriteTimeout < 0 {
		return fmt.Errorf("server: negative WriteTimeout %v", c.WriteTimeout)
	}
	if c.MaxHeaderBytes < 0 {
		return fmt.Errorf("server: negative MaxHeaderBytes %d", c.MaxHeaderBytes)
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("server: negative MaxBodyBytes %d", c.MaxBodyBytes)
	}
	return nil
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
