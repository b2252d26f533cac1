// Package wizard implements the interactive VM creation dialog: a fixed
// linear protocol that assembles a VMSpec through validated steps and
// submits it only on final confirmation.
package wizard

import (
	"fmt"
	"io"

	v2 "github.com/ntnxlab/prismctl/api/v2"
	"github.com/ntnxlab/prismctl/internal/prism"
)

// separator matches the banner width used across the menu and wizard.
const separator = "###############################################################################"

// Inventory is the cluster contract the wizard needs: container and
// network snapshots to present choices, and the creation call itself.
// Satisfied by *prism.Service in production and by fakes in tests.
type Inventory interface {
	// Containers fetches the current storage container snapshot.
	Containers() ([]v2.Container, error)

	// Networks fetches the current network snapshot.
	Networks() ([]v2.Network, error)

	// CreateVM submits the specification and returns a task id.
	CreateVM(spec *v2.VMSpec) (string, error)
}

// Wizard drives one VM creation session. Exactly one VMSpec is under
// construction at a time; declining the final confirmation discards it.
type Wizard struct {
	inv Inventory
	p   *Prompter
	out io.Writer
}

// New returns a Wizard over the given inventory and prompter.
func New(inv Inventory, p *Prompter) *Wizard {
	return &Wizard{inv: inv, p: p, out: p.Out()}
}

// Run walks the user through the creation protocol:
// required fields, repeated disk adds, repeated NIC adds, final
// confirmation, submit.
//
// Validation failures re-prompt the step that produced them and never
// abort the session. Fetch failures abort only the session: the error
// is returned to the menu loop, the process keeps running. Submission
// failures are printed and handled here.
func (w *Wizard) Run() error {
	fmt.Fprintln(w.out, separator)
	fmt.Fprintln(w.out, "Cluster VM Creation Menu")
	fmt.Fprintln(w.out, separator)

	spec, err := w.requiredFields()
	if err != nil {
		return err
	}

	for {
		fmt.Fprintln(w.out, "Please add DISKs to the VM")
		ok, err := w.p.Confirm("Do you add DISKs? [Y/N]:")
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		disk, err := w.addDisk()
		if err != nil {
			return err
		}
		spec.AddDisk(disk)
	}

	for {
		fmt.Fprintln(w.out, "Please add NICs to the VM")
		ok, err := w.p.Confirm("Do you add NICs? [Y/N]:")
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		nic, err := w.addNic()
		if err != nil {
			return err
		}
		spec.AddNic(nic)
	}

	confirmed, err := w.confirm(spec)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(w.out, "The VM is not created!")
		return nil
	}

	taskID, err := w.inv.CreateVM(spec)
	if err != nil {
		fmt.Fprintf(w.out, "VM creation failed: %v\n", err)
		return nil
	}
	if taskID == "" {
		fmt.Fprintln(w.out, "Offline mode: the VM creation request was not sent")
		return nil
	}
	fmt.Fprintf(w.out, "Task Id: %s is scheduled\n", taskID)
	return nil
}

// requiredFields collects and confirms the identity fields. The loop
// repeats in full until the user accepts the echoed summary.
func (w *Wizard) requiredFields() (*v2.VMSpec, error) {
	for {
		name, err := w.p.NonEmptyLine("Please enter a VM Name:")
		if err != nil {
			return nil, err
		}
		vcpus, err := w.p.PositiveInt(fmt.Sprintf("Please enter number of vCPUs for %s:", name))
		if err != nil {
			return nil, err
		}
		cores, err := w.p.PositiveInt("Please enter number of cores per vCPU:")
		if err != nil {
			return nil, err
		}
		memoryMB, err := w.p.PositiveInt(fmt.Sprintf("Please enter memory(mb) for %s:", name))
		if err != nil {
			return nil, err
		}

		fmt.Fprintf(w.out, "VM Name:%s\n", name)
		fmt.Fprintf(w.out, "Number of vCPUs:%d\n", vcpus)
		fmt.Fprintf(w.out, "Number of cores per vCPU:%d\n", cores)
		fmt.Fprintf(w.out, "Memory Size(MB):%d\n", memoryMB)

		ok, err := w.p.Confirm("Is it OK? [Y/N]:")
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		spec, err := v2.NewVMSpec(name, vcpus, cores, memoryMB)
		if err != nil {
			// The prompts above enforce the constructor's rules, but a
			// validation failure still re-prompts rather than aborting.
			fmt.Fprintf(w.out, "%v\n", err)
			continue
		}
		return spec, nil
	}
}

// addDisk runs the disk sub-wizard: bus selection, then container and
// size for non-IDE disks. The container snapshot is re-fetched on every
// invocation.
func (w *Wizard) addDisk() (v2.DiskSpec, error) {
	bus, err := w.selectBus()
	if err != nil {
		return v2.DiskSpec{}, err
	}

	if bus == v2.DeviceBusIDE {
		return v2.NewCDROMDisk(), nil
	}

	containers, err := w.inv.Containers()
	if err != nil {
		return v2.DiskSpec{}, err
	}

	for {
		fmt.Fprintln(w.out, "Select a container from following containers' list")
		fmt.Fprintln(w.out, separator)
		for _, c := range containers {
			fmt.Fprintln(w.out, c.Name)
		}

		name, err := w.p.Line("Please enter a Container Name for placing the VM:")
		if err != nil {
			return v2.DiskSpec{}, err
		}
		sizeGB, err := w.p.PositiveInt("Please enter the size(GB) of disk:")
		if err != nil {
			return v2.DiskSpec{}, err
		}
		ok, err := w.p.Confirm(fmt.Sprintf("%s (%d GB)? [Y/N]:", name, sizeGB))
		if err != nil {
			return v2.DiskSpec{}, err
		}
		if !ok {
			continue
		}

		container, err := prism.ContainerByName(containers, name)
		if err != nil {
			fmt.Fprintf(w.out, "%v\n", err)
			continue
		}
		fmt.Fprintf(w.out, "%s is selected\n", name)

		disk, err := v2.NewDataDisk(bus, container.StorageContainerUUID, int64(sizeGB))
		if err != nil {
			fmt.Fprintf(w.out, "%v\n", err)
			continue
		}
		return disk, nil
	}
}

// selectBus reads a device bus from the fixed enum, re-asking on
// anything else, and requires an explicit confirmation.
func (w *Wizard) selectBus() (v2.DeviceBus, error) {
	for {
		raw, err := w.p.Line("Please enter Disk type [SCSI/IDE/PCI]:")
		if err != nil {
			return "", err
		}
		bus, err := v2.ParseDeviceBus(raw)
		if err != nil {
			fmt.Fprintln(w.out, "Please input [SCSI/IDE/PCI]")
			continue
		}

		fmt.Fprintf(w.out, "Device Bus:%s\n", bus)
		ok, err := w.p.Confirm("Is it OK? [Y/N]:")
		if err != nil {
			return "", err
		}
		if ok {
			return bus, nil
		}
	}
}

// addNic runs the NIC sub-wizard: network selection by name against a
// freshly fetched snapshot, then an optional requested IP address.
func (w *Wizard) addNic() (v2.NicSpec, error) {
	networks, err := w.inv.Networks()
	if err != nil {
		return v2.NicSpec{}, err
	}

	var selected *v2.Network
	for {
		fmt.Fprintln(w.out, "Select a network from following networks' list")
		fmt.Fprintln(w.out, separator)
		for _, n := range networks {
			fmt.Fprintf(w.out, "%s:%s\n", n.Name, n.IPConfig.NetworkAddress)
		}

		name, err := w.p.Line("Please enter a Network Name for placing VM:")
		if err != nil {
			return v2.NicSpec{}, err
		}
		ok, err := w.p.Confirm(fmt.Sprintf("%s? [Y/N]:", name))
		if err != nil {
			return v2.NicSpec{}, err
		}
		if !ok {
			continue
		}

		network, err := prism.NetworkByName(networks, name)
		if err != nil {
			fmt.Fprintf(w.out, "%v\n", err)
			continue
		}
		fmt.Fprintf(w.out, "%s is selected\n", name)
		selected = network
		break
	}

	for {
		ok, err := w.p.Confirm("Do you want to request IP address?[Y/N]:")
		if err != nil {
			return v2.NicSpec{}, err
		}
		if !ok {
			return v2.NewNic(selected.UUID)
		}

		ip, err := w.p.Line("Please enter request IP address(xxx.xxx.xxx.xxx):")
		if err != nil {
			return v2.NicSpec{}, err
		}
		ok, err = w.p.Confirm(fmt.Sprintf("IP Address: %s\nIs it OK? [Y/N]:", ip))
		if err != nil {
			return v2.NicSpec{}, err
		}
		if ok {
			return v2.NewNicWithRequestedIP(selected.UUID, ip)
		}
	}
}

// confirm renders the full accumulated specification and asks for the
// final go-ahead. Nothing is sent unless this returns true.
func (w *Wizard) confirm(spec *v2.VMSpec) (bool, error) {
	fmt.Fprintln(w.out, separator)
	fmt.Fprintf(w.out, "VM Name:%s\n", spec.Name())
	fmt.Fprintf(w.out, "Number of vCPUs:%d\n", spec.NumVCPUs())
	fmt.Fprintf(w.out, "Number of cores per vCPU:%d\n", spec.NumCoresPerVCPU())
	fmt.Fprintf(w.out, "Memory Size(MB):%d\n", spec.MemoryMB())

	fmt.Fprintln(w.out, "Disk Information")
	for i, d := range spec.Disks() {
		fmt.Fprintf(w.out, "\tDisk #%d:\n", i)
		fmt.Fprintf(w.out, "\t\tdevice_bus:%s\n", d.DiskAddress.DeviceBus)
		fmt.Fprintf(w.out, "\t\tis_cdrom:%t\n", d.IsCDROM)
		fmt.Fprintf(w.out, "\t\tis_empty:%t\n", d.IsEmpty)
		fmt.Fprintf(w.out, "\t\tis_scsi_pass_through:%t\n", d.IsSCSIPassThrough)
		if d.VMDiskCreate != nil {
			fmt.Fprintf(w.out, "\t\tstorage_container_uuid:%s\n", d.VMDiskCreate.StorageContainerUUID)
			fmt.Fprintf(w.out, "\t\tsize:%d\n", d.VMDiskCreate.Size)
		}
	}

	fmt.Fprintln(w.out, "Network Information")
	for i, n := range spec.Nics() {
		fmt.Fprintf(w.out, "\tNetwork #%d:\n", i)
		fmt.Fprintf(w.out, "\t\tnetwork_uuid:%s\n", n.NetworkUUID)
		fmt.Fprintf(w.out, "\t\trequest_ip:%t\n", n.RequestIP)
		if n.RequestIP {
			fmt.Fprintf(w.out, "\t\trequested_ip_address:%s\n", n.RequestedIPAddress)
		}
	}

	return w.p.Confirm("Is it OK? [Y/N]:")
}
