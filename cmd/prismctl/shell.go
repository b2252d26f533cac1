package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ntnxlab/prismctl/internal/client"
	"github.com/ntnxlab/prismctl/internal/config"
	"github.com/ntnxlab/prismctl/internal/fixture"
	"github.com/ntnxlab/prismctl/internal/menu"
	"github.com/ntnxlab/prismctl/internal/prism"
	"github.com/ntnxlab/prismctl/internal/wizard"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run the interactive cluster operation menu",
	Long: `Run the interactive operation menu against a cluster.

Connection details missing from flags, environment and config file are
prompted for at startup. The menu then loops over cluster inspection
and VM creation until you exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := wizard.NewPrompter(os.Stdin, os.Stdout)

		svc, err := shellService(cfg, p)
		if err != nil {
			return err
		}
		return menu.New(svc, p).Run()
	},
}

// shellService builds the prism service for the interactive shell,
// prompting for any connection field the configuration left empty.
// Offline mode needs no connection and prompts for nothing.
func shellService(c *config.Config, p *wizard.Prompter) (*prism.Service, error) {
	store := fixture.NewStore(c.DataDir, c.DebugDir)

	if c.Offline {
		return prism.NewService(nil, store, true), nil
	}

	address := c.Address
	if address == "" {
		var err error
		address, err = p.NonEmptyLine("Please enter CVM or Cluster IP Address:")
		if err != nil {
			return nil, err
		}
	}

	username := c.Username
	if username == "" {
		var err error
		username, err = p.NonEmptyLine("Please enter user name:")
		if err != nil {
			return nil, err
		}
	}

	password := c.Password
	if password == "" {
		var err error
		password, err = p.NonEmptyLine("Please enter password:")
		if err != nil {
			return nil, err
		}
	}

	session, err := client.New(client.Options{
		Address:            address,
		Port:               c.Port,
		Username:           username,
		Password:           password,
		InsecureSkipVerify: c.InsecureSkipVerify,
	})
	if err != nil {
		return nil, err
	}
	return prism.NewService(session, store, false), nil
}
