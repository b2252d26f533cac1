// Package v2 contains the data model for the Prism Gateway v2.0 REST API
// as consumed by prismctl.
//
// Inventory types (Cluster, Container, Network) are read-only snapshots:
// each fetch replaces the previous one wholesale, there is no partial
// update. The VM creation types (VMSpec, DiskSpec, NicSpec) carry their
// invariants in smart constructors so that an invalid specification can
// never be handed to the API.
package v2

// Cluster is the cluster information record returned by GET cluster.
type Cluster struct {
	// Name is the cluster display name.
	Name string `json:"name"`

	// ID is the cluster identifier.
	ID string `json:"id"`

	// ClusterExternalIPAddress is the cluster virtual IP address.
	ClusterExternalIPAddress string `json:"cluster_external_ipaddress"`

	// NumNodes is the number of nodes in the cluster.
	NumNodes int `json:"num_nodes"`

	// Version is the cluster software version.
	Version string `json:"version"`

	// HypervisorTypes lists the hypervisor types present in the cluster.
	HypervisorTypes []string `json:"hypervisor_types"`
}

// Container is a storage container record returned by GET storage_containers.
// Virtual disks are placed on a container by UUID.
type Container struct {
	// StorageContainerUUID uniquely identifies the container.
	StorageContainerUUID string `json:"storage_container_uuid"`

	// Name is the container display name. Uniqueness is not guaranteed
	// by the API; lookups by name must handle duplicates.
	Name string `json:"name"`

	// MaxCapacity is the container capacity in bytes.
	MaxCapacity int64 `json:"max_capacity"`
}

// MaxCapacityGB returns the container capacity in gigabytes.
func (c Container) MaxCapacityGB() float64 {
	return float64(c.MaxCapacity) / float64(BytesPerGB)
}

// Network is a VLAN-backed logical network record returned by GET networks.
// NICs attach to a network by UUID.
type Network struct {
	// UUID uniquely identifies the network.
	UUID string `json:"uuid"`

	// Name is the network display name. Uniqueness is not guaranteed
	// by the API; lookups by name must handle duplicates.
	Name string `json:"name"`

	// VLANID is the VLAN tag of the network.
	VLANID int `json:"vlan_id"`

	// IPConfig carries the managed IP configuration, if any.
	IPConfig IPConfig `json:"ip_config"`
}

// IPConfig is the managed IP configuration of a Network.
type IPConfig struct {
	// NetworkAddress is the network address of the managed subnet.
	NetworkAddress string `json:"network_address"`
}

// ContainerList is the envelope returned by GET storage_containers.
type ContainerList struct {
	Entities []Container `json:"entities"`
}

// NetworkList is the envelope returned by GET networks.
type NetworkList struct {
	Entities []Network `json:"entities"`
}

// TaskReference is the response body of a mutating call such as POST vms.
// The referenced task is not polled by prismctl.
type TaskReference struct {
	// TaskUUID identifies the asynchronous task scheduled on the cluster.
	TaskUUID string `json:"task_uuid"`
}
