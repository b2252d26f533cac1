// Package config loads the prismctl configuration from flags, the
// environment and an optional config file.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config carries everything the session, the fetchers and the fixture
// store need. It is built once at startup and passed down explicitly;
// there are no process-wide mode flags.
type Config struct {
	// Address is the cluster virtual IP address or hostname. May be
	// empty at load time; the interactive shell prompts for it.
	Address string

	// Port is the Prism Gateway HTTPS port.
	Port int

	// Username and Password are the basic auth credentials. Like
	// Address, the shell prompts for missing values.
	Username string
	Password string

	// InsecureSkipVerify disables TLS certificate validation.
	InsecureSkipVerify bool

	// Offline switches all API reads to local JSON fixtures in DataDir
	// and suppresses the VM creation POST.
	Offline bool

	// DataDir is the fixture directory used in offline mode.
	DataDir string

	// DebugDir, when set, receives a JSON dump of every fetched or
	// submitted payload.
	DebugDir string

	// LogLevel is the logrus level name.
	LogLevel string
}

// Load reads the configuration. Precedence: flags, then PRISMCTL_*
// environment variables, then a prismctl.yaml config file in the
// current directory or ~/.config/prismctl, then defaults.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", 9440)
	v.SetDefault("data_dir", "./data")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("prismctl")
	v.AutomaticEnv()

	v.SetConfigName("prismctl")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/prismctl")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		bindings := map[string]string{
			"address":              "address",
			"port":                 "port",
			"username":             "username",
			"password":             "password",
			"insecure_skip_verify": "insecure",
			"offline":              "offline",
			"data_dir":             "data-dir",
			"debug_dir":            "debug-dir",
			"log_level":            "log-level",
		}
		for key, flagName := range bindings {
			if f := flags.Lookup(flagName); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", flagName, err)
				}
			}
		}
	}

	cfg := &Config{
		Address:            v.GetString("address"),
		Port:               v.GetInt("port"),
		Username:           v.GetString("username"),
		Password:           v.GetString("password"),
		InsecureSkipVerify: v.GetBool("insecure_skip_verify"),
		Offline:            v.GetBool("offline"),
		DataDir:            v.GetString("data_dir"),
		DebugDir:           v.GetString("debug_dir"),
		LogLevel:           v.GetString("log_level"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges. Connection fields are allowed to be
// empty here; commands that need a session enforce them via
// RequireSession or prompt interactively.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	validLogLevels := map[string]bool{
		"trace": true, "debug": true, "info": true,
		"warn": true, "error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (valid: trace, debug, info, warn, error)", c.LogLevel)
	}

	if c.Offline && c.DataDir == "" {
		return fmt.Errorf("offline mode requires a data directory")
	}

	return nil
}

// RequireSession verifies the connection fields needed to build an API
// session. Offline mode needs none of them.
func (c *Config) RequireSession() error {
	if c.Offline {
		return nil
	}
	if c.Address == "" {
		return fmt.Errorf("cluster address is required (flag --address or PRISMCTL_ADDRESS)")
	}
	if c.Username == "" {
		return fmt.Errorf("username is required (flag --username or PRISMCTL_USERNAME)")
	}
	return nil
}
