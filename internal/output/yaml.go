package output

import (
	"fmt"

	"gopkg.in/yaml.v3"

	v2 "github.com/ntnxlab/prismctl/api/v2"
)

// YAMLFormatter formats inventory as YAML.
type YAMLFormatter struct{}

// FormatCluster formats the cluster record as YAML.
func (f *YAMLFormatter) FormatCluster(c *v2.Cluster) (string, error) {
	return marshalYAML(c)
}

// FormatContainers formats the storage container collection as YAML.
func (f *YAMLFormatter) FormatContainers(containers []v2.Container) (string, error) {
	return marshalYAML(containers)
}

// FormatNetworks formats the network collection as YAML.
func (f *YAMLFormatter) FormatNetworks(networks []v2.Network) (string, error) {
	return marshalYAML(networks)
}

func marshalYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal to YAML: %w", err)
	}
	return string(data), nil
}
