// Package loader loads VM definitions from YAML files for
// non-interactive creation. Definitions go through the same smart
// constructors as the interactive wizard, so an invalid file can never
// produce a request the API would consider malformed.
package loader

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	v2 "github.com/ntnxlab/prismctl/api/v2"
)

// VMDefinition is the YAML shape of a VM creation request.
type VMDefinition struct {
	Name         string          `yaml:"name"`
	VCPUs        int             `yaml:"vcpus"`
	CoresPerVCPU int             `yaml:"cores_per_vcpu"`
	MemoryMB     int             `yaml:"memory_mb"`
	Disks        []DiskDefinition `yaml:"disks,omitempty"`
	Nics         []NicDefinition  `yaml:"nics,omitempty"`
}

// DiskDefinition is a single disk entry. IDE disks are empty CD-ROM
// placeholders and must not carry a container or size; SCSI and PCI
// disks require both.
type DiskDefinition struct {
	Bus           string `yaml:"bus"`
	ContainerUUID string `yaml:"container_uuid,omitempty"`
	SizeGB        int64  `yaml:"size_gb,omitempty"`
}

// NicDefinition is a single NIC entry. A non-empty requested_ip turns
// on the IP request.
type NicDefinition struct {
	NetworkUUID string `yaml:"network_uuid"`
	RequestedIP string `yaml:"requested_ip,omitempty"`
}

// LoadFromFile loads and validates a VM definition from a YAML file.
func LoadFromFile(path string) (*v2.VMSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return LoadFromYAML(data)
}

// LoadFromYAML loads and validates a VM definition from YAML bytes.
func LoadFromYAML(data []byte) (*v2.VMSpec, error) {
	var def VMDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	spec, err := v2.NewVMSpec(def.Name, def.VCPUs, def.CoresPerVCPU, def.MemoryMB)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	for i, d := range def.Disks {
		disk, err := buildDisk(d)
		if err != nil {
			return nil, fmt.Errorf("disks[%d]: %w", i, err)
		}
		spec.AddDisk(disk)
	}

	for i, n := range def.Nics {
		nic, err := buildNic(n)
		if err != nil {
			return nil, fmt.Errorf("nics[%d]: %w", i, err)
		}
		spec.AddNic(nic)
	}

	return spec, nil
}

func buildDisk(d DiskDefinition) (v2.DiskSpec, error) {
	bus, err := v2.ParseDeviceBus(d.Bus)
	if err != nil {
		return v2.DiskSpec{}, err
	}

	if bus == v2.DeviceBusIDE {
		if d.ContainerUUID != "" || d.SizeGB != 0 {
			return v2.DiskSpec{}, fmt.Errorf("IDE disks are empty CD-ROM placeholders and take no container_uuid or size_gb")
		}
		return v2.NewCDROMDisk(), nil
	}

	if _, err := uuid.Parse(d.ContainerUUID); err != nil {
		return v2.DiskSpec{}, fmt.Errorf("container_uuid %q is not a valid UUID: %w", d.ContainerUUID, err)
	}
	return v2.NewDataDisk(bus, d.ContainerUUID, d.SizeGB)
}

func buildNic(n NicDefinition) (v2.NicSpec, error) {
	if _, err := uuid.Parse(n.NetworkUUID); err != nil {
		return v2.NicSpec{}, fmt.Errorf("network_uuid %q is not a valid UUID: %w", n.NetworkUUID, err)
	}

	if n.RequestedIP != "" {
		return v2.NewNicWithRequestedIP(n.NetworkUUID, n.RequestedIP)
	}
	return v2.NewNic(n.NetworkUUID)
}
