package wizard

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	v2 "github.com/ntnxlab/prismctl/api/v2"
)

// fakeInventory is an in-memory Inventory that records CreateVM calls.
type fakeInventory struct {
	containers []v2.Container
	networks   []v2.Network

	containersErr error
	networksErr   error
	createErr     error
	taskID        string

	created []*v2.VMSpec
}

func (f *fakeInventory) Containers() ([]v2.Container, error) {
	return f.containers, f.containersErr
}

func (f *fakeInventory) Networks() ([]v2.Network, error) {
	return f.networks, f.networksErr
}

func (f *fakeInventory) CreateVM(spec *v2.VMSpec) (string, error) {
	f.created = append(f.created, spec)
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.taskID, nil
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{
		containers: []v2.Container{
			{StorageContainerUUID: "c-uuid-1", Name: "ctr-1", MaxCapacity: 53687091200},
		},
		networks: []v2.Network{
			{UUID: "n-uuid-1", Name: "vlan10", VLANID: 10, IPConfig: v2.IPConfig{NetworkAddress: "10.0.10.0"}},
		},
		taskID: "task-123",
	}
}

// runScript runs one wizard session over a scripted answer sequence.
func runScript(t *testing.T, inv Inventory, answers ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(strings.Join(answers, "\n")+"\n"), &out)
	err := New(inv, p).Run()
	return out.String(), err
}

func TestWizard_MinimalVM(t *testing.T) {
	inv := newFakeInventory()
	out, err := runScript(t, inv,
		"web01", "2", "1", "4096", "Y", // identity + confirm
		"N", // no disks
		"N", // no nics
		"Y", // create
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(inv.created) != 1 {
		t.Fatalf("Expected 1 CreateVM call, got %d", len(inv.created))
	}
	payload, err := inv.created[0].Payload()
	if err != nil {
		t.Fatalf("Payload() error = %v", err)
	}
	want := `{"name":"web01","num_vcpus":2,"num_cores_per_vcpu":1,"memory_mb":4096}`
	if string(payload) != want {
		t.Errorf("Payload = %s, want %s", payload, want)
	}

	if !strings.Contains(out, "Task Id: task-123 is scheduled") {
		t.Errorf("Expected scheduled task message:\n%s", out)
	}
}

func TestWizard_SCSIDisk(t *testing.T) {
	inv := newFakeInventory()
	_, err := runScript(t, inv,
		"web01", "2", "1", "4096", "Y",
		"Y", "SCSI", "Y", "ctr-1", "50", "Y", // one data disk
		"N", // no more disks
		"N", // no nics
		"Y",
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(inv.created) != 1 {
		t.Fatalf("Expected 1 CreateVM call, got %d", len(inv.created))
	}
	disks := inv.created[0].Disks()
	if len(disks) != 1 {
		t.Fatalf("Expected 1 disk, got %d", len(disks))
	}
	d := disks[0]
	if d.DiskAddress.DeviceBus != v2.DeviceBusSCSI {
		t.Errorf("Expected SCSI bus, got %s", d.DiskAddress.DeviceBus)
	}
	if d.VMDiskCreate == nil {
		t.Fatal("Expected data disk to carry a create spec")
	}
	if d.VMDiskCreate.StorageContainerUUID != "c-uuid-1" {
		t.Errorf("Expected container c-uuid-1, got %s", d.VMDiskCreate.StorageContainerUUID)
	}
	if d.VMDiskCreate.Size != 50*v2.BytesPerGB {
		t.Errorf("Expected 53687091200 bytes, got %d", d.VMDiskCreate.Size)
	}
}

func TestWizard_IDEDiskSkipsContainerSelection(t *testing.T) {
	inv := newFakeInventory()
	// IDE never touches the container list, so the script jumps straight
	// from the bus confirmation to the next disk prompt.
	_, err := runScript(t, inv,
		"web01", "2", "1", "4096", "Y",
		"Y", "IDE", "Y",
		"N",
		"N",
		"Y",
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	disks := inv.created[0].Disks()
	if len(disks) != 1 {
		t.Fatalf("Expected 1 disk, got %d", len(disks))
	}
	d := disks[0]
	if !d.IsCDROM || !d.IsEmpty {
		t.Errorf("Expected empty CD-ROM, got %+v", d)
	}
	if d.VMDiskCreate != nil {
		t.Error("Expected no create spec on an IDE disk")
	}
}

func TestWizard_UnknownBusReprompts(t *testing.T) {
	inv := newFakeInventory()
	out, err := runScript(t, inv,
		"web01", "2", "1", "4096", "Y",
		"Y", "SATA", "IDE", "Y", // bad token, then valid
		"N",
		"N",
		"Y",
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "Please input [SCSI/IDE/PCI]") {
		t.Errorf("Expected bus re-prompt:\n%s", out)
	}
	if len(inv.created) != 1 {
		t.Fatalf("Expected 1 CreateVM call, got %d", len(inv.created))
	}
}

func TestWizard_DeclineFinalConfirmation(t *testing.T) {
	inv := newFakeInventory()
	out, err := runScript(t, inv,
		"web01", "2", "1", "4096", "Y",
		"N",
		"N",
		"N", // decline
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(inv.created) != 0 {
		t.Fatalf("Expected no CreateVM calls, got %d", len(inv.created))
	}
	if !strings.Contains(out, "The VM is not created!") {
		t.Errorf("Expected discard message:\n%s", out)
	}
}

func TestWizard_UnknownNetworkReprompts(t *testing.T) {
	inv := newFakeInventory()
	out, err := runScript(t, inv,
		"web01", "2", "1", "4096", "Y",
		"N",
		"Y", "nope", "Y", // unknown name, confirmed anyway
		"vlan10", "Y", // second attempt succeeds
		"N", // no requested IP
		"N", // no more nics
		"Y",
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(out, "nope") || !strings.Contains(out, "not found") {
		t.Errorf("Expected lookup failure message:\n%s", out)
	}

	nics := inv.created[0].Nics()
	if len(nics) != 1 {
		t.Fatalf("Expected 1 NIC, got %d", len(nics))
	}
	if nics[0].NetworkUUID != "n-uuid-1" {
		t.Errorf("Expected NIC on n-uuid-1, got %s", nics[0].NetworkUUID)
	}
	if nics[0].RequestIP {
		t.Error("Expected no IP request")
	}
}

func TestWizard_NicWithRequestedIP(t *testing.T) {
	inv := newFakeInventory()
	_, err := runScript(t, inv,
		"web01", "2", "1", "4096", "Y",
		"N",
		"Y", "vlan10", "Y",
		"Y", "10.0.10.42", "Y", // request the address
		"N",
		"Y",
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	nics := inv.created[0].Nics()
	if len(nics) != 1 {
		t.Fatalf("Expected 1 NIC, got %d", len(nics))
	}
	if !nics[0].RequestIP || nics[0].RequestedIPAddress != "10.0.10.42" {
		t.Errorf("Unexpected NIC: %+v", nics[0])
	}
}

func TestWizard_ContainersFetchErrorAbortsSession(t *testing.T) {
	inv := newFakeInventory()
	inv.containersErr = errors.New("connection refused")

	_, err := runScript(t, inv,
		"web01", "2", "1", "4096", "Y",
		"Y", "SCSI", "Y",
	)
	if err == nil {
		t.Fatal("Expected fetch error to propagate")
	}
	if len(inv.created) != 0 {
		t.Errorf("Expected no CreateVM calls, got %d", len(inv.created))
	}
}

func TestWizard_SubmissionFailureDoesNotAbort(t *testing.T) {
	inv := newFakeInventory()
	inv.createErr = errors.New("server error: status code 500")

	out, err := runScript(t, inv,
		"web01", "2", "1", "4096", "Y",
		"N",
		"N",
		"Y",
	)
	if err != nil {
		t.Fatalf("Expected submission failure to be handled, got %v", err)
	}
	if !strings.Contains(out, "VM creation failed") {
		t.Errorf("Expected failure message:\n%s", out)
	}
	if len(inv.created) != 1 {
		t.Errorf("Expected exactly one submission attempt, got %d", len(inv.created))
	}
}

func TestWizard_OfflineReportsNoSubmission(t *testing.T) {
	inv := newFakeInventory()
	inv.taskID = ""

	out, err := runScript(t, inv,
		"web01", "2", "1", "4096", "Y",
		"N",
		"N",
		"Y",
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "was not sent") {
		t.Errorf("Expected offline message:\n%s", out)
	}
}
