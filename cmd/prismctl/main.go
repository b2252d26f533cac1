package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ntnxlab/prismctl/internal/client"
	"github.com/ntnxlab/prismctl/internal/config"
	"github.com/ntnxlab/prismctl/internal/fixture"
	"github.com/ntnxlab/prismctl/internal/logging"
	"github.com/ntnxlab/prismctl/internal/prism"
)

var (
	version = "dev"
	commit  = "unknown"
)

// cfg is loaded once in the root PersistentPreRunE and read by every
// command.
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "prismctl",
	Short: "prismctl - Prism cluster management tool",
	Long: `prismctl is a CLI client for a Prism v2 cluster API.

It inspects cluster information, storage containers and networks, and
creates VMs either through an interactive wizard or from a YAML
definition file.`,
	Version:      fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd.Root().PersistentFlags())
		if err != nil {
			return err
		}
		return logging.Setup(cfg.LogLevel, os.Stderr)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("address", "", "Cluster virtual IP address or hostname")
	pf.Int("port", 9440, "Prism Gateway HTTPS port")
	pf.String("username", "", "API username")
	pf.String("password", "", "API password")
	pf.Bool("insecure", false, "Skip TLS certificate validation")
	pf.Bool("offline", false, "Serve API reads from local JSON fixtures")
	pf.String("data-dir", "./data", "Fixture directory for offline mode")
	pf.String("debug-dir", "", "Directory for JSON dumps of fetched and submitted payloads")
	pf.String("log-level", "info", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(clusterCmd)
	rootCmd.AddCommand(containersCmd)
	rootCmd.AddCommand(networksCmd)
	rootCmd.AddCommand(createCmd)
}

// newService builds the prism service for non-interactive commands. The
// connection fields must be complete; only the shell prompts for them.
func newService(c *config.Config) (*prism.Service, error) {
	store := fixture.NewStore(c.DataDir, c.DebugDir)

	if c.Offline {
		return prism.NewService(nil, store, true), nil
	}

	if err := c.RequireSession(); err != nil {
		return nil, err
	}
	session, err := client.New(client.Options{
		Address:            c.Address,
		Port:               c.Port,
		Username:           c.Username,
		Password:           c.Password,
		InsecureSkipVerify: c.InsecureSkipVerify,
	})
	if err != nil {
		return nil, err
	}
	return prism.NewService(session, store, false), nil
}
