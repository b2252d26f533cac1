package output

import (
	"encoding/json"
	"fmt"

	v2 "github.com/ntnxlab/prismctl/api/v2"
)

// JSONFormatter formats inventory as JSON.
type JSONFormatter struct{}

// FormatCluster formats the cluster record as JSON.
func (f *JSONFormatter) FormatCluster(c *v2.Cluster) (string, error) {
	return marshalJSON(c)
}

// FormatContainers formats the storage container collection as a JSON array.
func (f *JSONFormatter) FormatContainers(containers []v2.Container) (string, error) {
	if len(containers) == 0 {
		return "[]\n", nil
	}
	return marshalJSON(containers)
}

// FormatNetworks formats the network collection as a JSON array.
func (f *JSONFormatter) FormatNetworks(networks []v2.Network) (string, error) {
	if len(networks) == 0 {
		return "[]\n", nil
	}
	return marshalJSON(networks)
}

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	return string(data) + "\n", nil
}
