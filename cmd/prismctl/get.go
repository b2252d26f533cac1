package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntnxlab/prismctl/internal/output"
)

var (
	outputFormat string
	noHeaders    bool
)

func init() {
	for _, cmd := range []*cobra.Command{clusterCmd, containersCmd, networksCmd} {
		cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, yaml, json)")
		cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Omit header rows in table output")
	}
}

func newOutputFormatter() (output.Formatter, error) {
	if err := output.ValidateFormat(outputFormat); err != nil {
		return nil, err
	}
	return output.NewFormatter(output.Options{
		Format:    output.Format(outputFormat),
		NoHeaders: noHeaders,
	})
}

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Show cluster information",
	Long: `Show the cluster information snapshot.

Output formats:
  -o table  Human-readable fields (default)
  -o yaml   Full YAML document
  -o json   Full JSON document`,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter, err := newOutputFormatter()
		if err != nil {
			return err
		}

		svc, err := newService(cfg)
		if err != nil {
			return err
		}
		cluster, err := svc.Cluster()
		if err != nil {
			return fmt.Errorf("failed to get cluster information: %w", err)
		}

		result, err := formatter.FormatCluster(cluster)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		fmt.Print(result)
		return nil
	},
}

var containersCmd = &cobra.Command{
	Use:   "containers",
	Short: "List storage containers",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter, err := newOutputFormatter()
		if err != nil {
			return err
		}

		svc, err := newService(cfg)
		if err != nil {
			return err
		}
		containers, err := svc.Containers()
		if err != nil {
			return fmt.Errorf("failed to list storage containers: %w", err)
		}

		result, err := formatter.FormatContainers(containers)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		fmt.Print(result)
		return nil
	},
}

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List networks",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter, err := newOutputFormatter()
		if err != nil {
			return err
		}

		svc, err := newService(cfg)
		if err != nil {
			return err
		}
		networks, err := svc.Networks()
		if err != nil {
			return fmt.Errorf("failed to list networks: %w", err)
		}

		result, err := formatter.FormatNetworks(networks)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		fmt.Print(result)
		return nil
	},
}
