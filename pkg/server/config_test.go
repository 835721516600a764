package server

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Address != ":8080" {
		t.Errorf("Address = %q, want :8080", c.Address)
	}
	if c.ReadTimeout != 10*time.Second {
		t.Errorf("ReadTimeout = %v, want 10s", c.ReadTimeout)
	}
	if c.MaxHeaderBytes != 64*1024 {
		t.Errorf("MaxHeaderBytes = %d, want 64KB", c.MaxHeaderBytes)
	}
	if c.MaxBodyBytes != 1<<20 {
		t.Errorf("MaxBodyBytes = %d, want 1MB", c.MaxBodyBytes)
	}
	if c.Logger == nil {
		t.Error("Logger = nil, want default logger")
	}
}

func TestNewFillsDefaults(t *testing.T) {
	s := New(&Config{Address: "localhost:9090"})

	if s.config.Address != "localhost:9090" {
		t.Errorf("Address = %q, want localhost:9090", s.config.Address)
	}
	if s.config.ReadTimeout != 10*time.Second {
		t.Errorf("ReadTimeout = %v, want default 10s", s.config.ReadTimeout)
	}
	if s.config.Logger == nil {
		t.Error("Logger = nil, want default logger")
	}
}

func TestNewDoesNotMutateCaller(t *testing.T) {
	c := &Config{Address: "localhost:9090"}
	New(c)
	if c.ReadTimeout != 0 {
		t.Errorf("caller's config mutated: ReadTimeout = %v", c.ReadTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"defaults", *DefaultConfig(), false},
		{"negative read timeout", Config{ReadTimeout: -time.Second}, true},
		{"negative write timeout", Config{WriteTimeout: -time.Second}, true},
		{"negative header limit", Config{MaxHeaderBytes: -1}, true},
		{"negative body limit", Config{MaxBodyBytes: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
