package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	v2 "github.com/ntnxlab/prismctl/api/v2"
)

// TableFormatter formats inventory as human-readable tables.
type TableFormatter struct {
	// NoHeaders omits the header row.
	NoHeaders bool
}

// FormatCluster formats the cluster record as field-per-line output.
func (f *TableFormatter) FormatCluster(c *v2.Cluster) (string, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Name: %s\n", c.Name)
	fmt.Fprintf(&buf, "ID: %s\n", c.ID)
	fmt.Fprintf(&buf, "Cluster External IP Address: %s\n", c.ClusterExternalIPAddress)
	fmt.Fprintf(&buf, "Number of Nodes: %d\n", c.NumNodes)
	fmt.Fprintf(&buf, "Version: %s\n", c.Version)
	fmt.Fprintf(&buf, "Hypervisor Types: %s\n", strings.Join(c.HypervisorTypes, ", "))

	return buf.String(), nil
}

// FormatContainers formats the storage container collection as a table.
func (f *TableFormatter) FormatContainers(containers []v2.Container) (string, error) {
	if len(containers) == 0 {
		return "No storage containers found\n", nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	if !f.NoHeaders {
		_, _ = fmt.Fprintln(w, "NAME\tUUID\tCAPACITY")
	}

	for _, c := range containers {
		capacity := "-"
		if c.MaxCapacity > 0 {
			capacity = fmt.Sprintf("%.1fGB", c.MaxCapacityGB())
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.StorageContainerUUID, capacity)
	}

	_ = w.Flush()
	return buf.String(), nil
}

// FormatNetworks formats the network collection as a table.
func (f *TableFormatter) FormatNetworks(networks []v2.Network) (string, error) {
	if len(networks) == 0 {
		return "No networks found\n", nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	if !f.NoHeaders {
		_, _ = fmt.Fprintln(w, "NAME\tVLAN\tUUID\tNETWORK")
	}

	for _, n := range networks {
		address := n.IPConfig.NetworkAddress
		if address == "" {
			address = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", n.Name, n.VLANID, n.UUID, address)
	}

	_ = w.Flush()
	return buf.String(), nil
}
