package v2

import (
	"encoding/json"
	"fmt"
)

// BytesPerGB is the byte size of one gigabyte as understood by the
// Prism v2 API (1024^3). User-entered disk sizes in GB are converted
// with this factor exactly.
const BytesPerGB int64 = 1024 * 1024 * 1024

// DeviceBus is the bus a virtual disk is attached to.
type DeviceBus string

const (
	// DeviceBusSCSI attaches the disk to the SCSI bus.
	DeviceBusSCSI DeviceBus = "SCSI"

	// DeviceBusIDE attaches the disk to the IDE bus. IDE disks are
	// always empty CD-ROM placeholders without a backing container.
	DeviceBusIDE DeviceBus = "IDE"

	// DeviceBusPCI attaches the disk to the PCI bus.
	DeviceBusPCI DeviceBus = "PCI"
)

// ParseDeviceBus parses a user-entered bus name. Only the exact tokens
// SCSI, IDE and PCI are accepted.
func ParseDeviceBus(s string) (DeviceBus, error) {
	switch DeviceBus(s) {
	case DeviceBusSCSI, DeviceBusIDE, DeviceBusPCI:
		return DeviceBus(s), nil
	default:
		return "", &ValidationError{Field: "device_bus", Reason: fmt.Sprintf("unknown bus %q (valid: SCSI, IDE, PCI)", s)}
	}
}

// ValidationError reports a specification field that failed validation
// at construction time. Callers recover from it locally, typically by
// re-prompting the user.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DiskAddress locates a disk on a device bus.
type DiskAddress struct {
	DeviceBus DeviceBus `json:"device_bus"`
}

// VMDiskCreate describes a disk to be allocated on a storage container.
type VMDiskCreate struct {
	// StorageContainerUUID is the container the disk is placed on.
	StorageContainerUUID string `json:"storage_container_uuid"`

	// Size is the disk size in bytes.
	Size int64 `json:"size"`
}

// DiskSpec is a single virtual disk in a VM creation request.
//
// Invariant: VMDiskCreate is present exactly when the device bus is not
// IDE. Construct through NewCDROMDisk or NewDataDisk; the zero value is
// not a valid spec.
type DiskSpec struct {
	IsCDROM           bool          `json:"is_cdrom"`
	IsEmpty           bool          `json:"is_empty"`
	IsSCSIPassThrough bool          `json:"is_scsi_pass_through"`
	DiskAddress       DiskAddress   `json:"disk_address"`
	VMDiskCreate      *VMDiskCreate `json:"vm_disk_create,omitempty"`
}

// NewCDROMDisk returns an empty CD-ROM placeholder on the IDE bus.
// IDE disks never carry a container or a size.
func NewCDROMDisk() DiskSpec {
	return DiskSpec{
		IsCDROM:     true,
		IsEmpty:     true,
		DiskAddress: DiskAddress{DeviceBus: DeviceBusIDE},
	}
}

// NewDataDisk returns a disk of sizeGB gigabytes allocated on the given
// storage container, attached to the SCSI or PCI bus.
func NewDataDisk(bus DeviceBus, containerUUID string, sizeGB int64) (DiskSpec, error) {
	if bus != DeviceBusSCSI && bus != DeviceBusPCI {
		return DiskSpec{}, &ValidationError{Field: "device_bus", Reason: fmt.Sprintf("data disks require SCSI or PCI, got %q", bus)}
	}
	if containerUUID == "" {
		return DiskSpec{}, &ValidationError{Field: "storage_container_uuid", Reason: "must not be empty"}
	}
	if sizeGB <= 0 {
		return DiskSpec{}, &ValidationError{Field: "size", Reason: "must be a positive number of gigabytes"}
	}

	return DiskSpec{
		DiskAddress: DiskAddress{DeviceBus: bus},
		VMDiskCreate: &VMDiskCreate{
			StorageContainerUUID: containerUUID,
			Size:                 sizeGB * BytesPerGB,
		},
	}, nil
}

// NicSpec is a single virtual NIC in a VM creation request.
//
// Invariant: RequestedIPAddress is present exactly when RequestIP is
// true. Construct through NewNic or NewNicWithRequestedIP.
type NicSpec struct {
	NetworkUUID        string `json:"network_uuid"`
	RequestIP          bool   `json:"request_ip"`
	RequestedIPAddress string `json:"requested_ip_address,omitempty"`
}

// NewNic returns a NIC attached to the given network with no IP request.
func NewNic(networkUUID string) (NicSpec, error) {
	if networkUUID == "" {
		return NicSpec{}, &ValidationError{Field: "network_uuid", Reason: "must not be empty"}
	}
	return NicSpec{NetworkUUID: networkUUID}, nil
}

// NewNicWithRequestedIP returns a NIC attached to the given network
// that requests a specific IP address from the managed network.
func NewNicWithRequestedIP(networkUUID, ip string) (NicSpec, error) {
	if networkUUID == "" {
		return NicSpec{}, &ValidationError{Field: "network_uuid", Reason: "must not be empty"}
	}
	if ip == "" {
		return NicSpec{}, &ValidationError{Field: "requested_ip_address", Reason: "must not be empty"}
	}
	return NicSpec{NetworkUUID: networkUUID, RequestIP: true, RequestedIPAddress: ip}, nil
}

// VMSpec accumulates a VM creation request across wizard steps.
//
// Identity fields are fixed at construction; disks and NICs are append
// only. Abandoning a specification is simply dropping the value: nothing
// is sent until the caller serializes and submits the payload.
type VMSpec struct {
	name            string
	numVCPUs        int
	numCoresPerVCPU int
	memoryMB        int
	disks           []DiskSpec
	nics            []NicSpec
}

// NewVMSpec validates and fixes the identity fields of a VM specification.
func NewVMSpec(name string, numVCPUs, numCoresPerVCPU, memoryMB int) (*VMSpec, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if numVCPUs <= 0 {
		return nil, &ValidationError{Field: "num_vcpus", Reason: "must be positive"}
	}
	if numCoresPerVCPU <= 0 {
		return nil, &ValidationError{Field: "num_cores_per_vcpu", Reason: "must be positive"}
	}
	if memoryMB <= 0 {
		return nil, &ValidationError{Field: "memory_mb", Reason: "must be positive"}
	}

	return &VMSpec{
		name:            name,
		numVCPUs:        numVCPUs,
		numCoresPerVCPU: numCoresPerVCPU,
		memoryMB:        memoryMB,
	}, nil
}

// Name returns the VM name.
func (s *VMSpec) Name() string { return s.name }

// NumVCPUs returns the number of virtual CPUs.
func (s *VMSpec) NumVCPUs() int { return s.numVCPUs }

// NumCoresPerVCPU returns the number of cores per virtual CPU.
func (s *VMSpec) NumCoresPerVCPU() int { return s.numCoresPerVCPU }

// MemoryMB returns the memory size in megabytes.
func (s *VMSpec) MemoryMB() int { return s.memoryMB }

// Disks returns the accumulated disk specifications in append order.
func (s *VMSpec) Disks() []DiskSpec { return s.disks }

// Nics returns the accumulated NIC specifications in append order.
func (s *VMSpec) Nics() []NicSpec { return s.nics }

// AddDisk appends a disk to the specification. Disks are never removed
// or reordered.
func (s *VMSpec) AddDisk(d DiskSpec) {
	s.disks = append(s.disks, d)
}

// AddNic appends a NIC to the specification.
func (s *VMSpec) AddNic(n NicSpec) {
	s.nics = append(s.nics, n)
}

// vmPayload is the wire form of a VM creation request. The vm_disks and
// vm_nics keys are omitted entirely when the respective sequence is
// empty; an empty list is never sent.
type vmPayload struct {
	Name            string     `json:"name"`
	NumVCPUs        int        `json:"num_vcpus"`
	NumCoresPerVCPU int        `json:"num_cores_per_vcpu"`
	MemoryMB        int        `json:"memory_mb"`
	VMDisks         []DiskSpec `json:"vm_disks,omitempty"`
	VMNics          []NicSpec  `json:"vm_nics,omitempty"`
}

// Payload serializes the specification as a POST vms request body.
func (s *VMSpec) Payload() ([]byte, error) {
	body, err := json.Marshal(vmPayload{
		Name:            s.name,
		NumVCPUs:        s.numVCPUs,
		NumCoresPerVCPU: s.numCoresPerVCPU,
		MemoryMB:        s.memoryMB,
		VMDisks:         s.disks,
		VMNics:          s.nics,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal VM payload: %w", err)
	}
	return body, nil
}
