package config

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 9440 {
		t.Errorf("Expected default port 9440, got %d", cfg.Port)
	}
	if cfg.DataDir != "./data" {
		t.Errorf("Expected default data dir ./data, got %s", cfg.DataDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.Offline {
		t.Error("Expected offline to default to false")
	}
	if cfg.InsecureSkipVerify {
		t.Error("Expected TLS verification to be on by default")
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PRISMCTL_ADDRESS", "192.168.1.50")
	t.Setenv("PRISMCTL_USERNAME", "admin")
	t.Setenv("PRISMCTL_LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Address != "192.168.1.50" {
		t.Errorf("Expected address from env, got %s", cfg.Address)
	}
	if cfg.Username != "admin" {
		t.Errorf("Expected username from env, got %s", cfg.Username)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level from env, got %s", cfg.LogLevel)
	}
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PRISMCTL_ADDRESS", "192.168.1.50")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("address", "", "")
	flags.Bool("offline", false, "")
	if err := flags.Parse([]string{"--address", "10.0.0.9", "--offline"}); err != nil {
		t.Fatalf("flag parse error: %v", err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Address != "10.0.0.9" {
		t.Errorf("Expected flag to override env, got %s", cfg.Address)
	}
	if !cfg.Offline {
		t.Error("Expected offline flag to be honored")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad port", func(c *Config) { c.Port = 0 }, true},
		{"port out of range", func(c *Config) { c.Port = 70000 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"offline without data dir", func(c *Config) { c.Offline = true; c.DataDir = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Port: 9440, DataDir: "./data", LogLevel: "info"}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestRequireSession(t *testing.T) {
	cfg := &Config{Port: 9440, LogLevel: "info"}
	if err := cfg.RequireSession(); err == nil {
		t.Error("Expected error with no address")
	}

	cfg.Address = "10.0.0.1"
	if err := cfg.RequireSession(); err == nil {
		t.Error("Expected error with no username")
	}

	cfg.Username = "admin"
	if err := cfg.RequireSession(); err != nil {
		t.Errorf("RequireSession() error = %v", err)
	}

	// Offline mode needs no connection fields at all.
	offline := &Config{Offline: true}
	if err := offline.RequireSession(); err != nil {
		t.Errorf("RequireSession() offline error = %v", err)
	}
}
