package menu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	v2 "github.com/ntnxlab/prismctl/api/v2"
	"github.com/ntnxlab/prismctl/internal/wizard"
)

type fakeService struct {
	cluster    *v2.Cluster
	containers []v2.Container
	networks   []v2.Network

	clusterErr    error
	containersErr error

	created []*v2.VMSpec
}

func (f *fakeService) Cluster() (*v2.Cluster, error) {
	return f.cluster, f.clusterErr
}

func (f *fakeService) Containers() ([]v2.Container, error) {
	return f.containers, f.containersErr
}

func (f *fakeService) Networks() ([]v2.Network, error) {
	return f.networks, nil
}

func (f *fakeService) CreateVM(spec *v2.VMSpec) (string, error) {
	f.created = append(f.created, spec)
	return "task-123", nil
}

func newFakeService() *fakeService {
	return &fakeService{
		cluster: &v2.Cluster{Name: "lab-cluster", NumNodes: 4},
		containers: []v2.Container{
			{StorageContainerUUID: "c-uuid-1", Name: "ctr-1", MaxCapacity: 53687091200},
		},
		networks: []v2.Network{
			{UUID: "n-uuid-1", Name: "vlan10", VLANID: 10},
		},
	}
}

func runMenu(t *testing.T, svc Service, answers ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	p := wizard.NewPrompter(strings.NewReader(strings.Join(answers, "\n")+"\n"), &out)
	err := New(svc, p).Run()
	return out.String(), err
}

func TestMenu_Exit(t *testing.T) {
	out, err := runMenu(t, newFakeService(), "99")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "Cluster Operation Menu") {
		t.Errorf("Expected menu banner:\n%s", out)
	}
	if !strings.Contains(out, "Bye") {
		t.Errorf("Expected exit message:\n%s", out)
	}
}

func TestMenu_ShowCluster(t *testing.T) {
	out, err := runMenu(t, newFakeService(), "1", "99")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "lab-cluster") {
		t.Errorf("Expected cluster name in output:\n%s", out)
	}
}

func TestMenu_ShowContainers(t *testing.T) {
	out, err := runMenu(t, newFakeService(), "2", "99")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "ctr-1") {
		t.Errorf("Expected container name in output:\n%s", out)
	}
}

func TestMenu_ShowNetworks(t *testing.T) {
	out, err := runMenu(t, newFakeService(), "3", "99")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "vlan10") {
		t.Errorf("Expected network name in output:\n%s", out)
	}
}

func TestMenu_ShowVMsNotImplemented(t *testing.T) {
	out, err := runMenu(t, newFakeService(), "4", "99")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "Not Implemented!") {
		t.Errorf("Expected placeholder message:\n%s", out)
	}
}

func TestMenu_UnknownSelection(t *testing.T) {
	out, err := runMenu(t, newFakeService(), "7", "99")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "Wrong Operation: 7") {
		t.Errorf("Expected unknown selection message:\n%s", out)
	}
}

func TestMenu_OperationFailureKeepsLoopRunning(t *testing.T) {
	svc := newFakeService()
	svc.clusterErr = errors.New("connection refused")

	out, err := runMenu(t, svc, "1", "2", "99")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "Operation failed") {
		t.Errorf("Expected failure report:\n%s", out)
	}
	// The loop survived the failure and served the next selection.
	if !strings.Contains(out, "ctr-1") {
		t.Errorf("Expected containers after failed cluster fetch:\n%s", out)
	}
}

func TestMenu_WizardSession(t *testing.T) {
	svc := newFakeService()
	out, err := runMenu(t, svc,
		"5",
		"web01", "2", "1", "4096", "Y",
		"N", "N", "Y",
		"99",
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(svc.created) != 1 {
		t.Fatalf("Expected 1 CreateVM call, got %d", len(svc.created))
	}
	if svc.created[0].Name() != "web01" {
		t.Errorf("Expected web01, got %s", svc.created[0].Name())
	}
	if !strings.Contains(out, "Task Id: task-123 is scheduled") {
		t.Errorf("Expected scheduled task message:\n%s", out)
	}
}

func TestMenu_WizardFetchFailureKeepsLoopRunning(t *testing.T) {
	svc := newFakeService()
	svc.containersErr = errors.New("connection refused")

	out, err := runMenu(t, svc,
		"5",
		"web01", "2", "1", "4096", "Y",
		"Y", "SCSI", "Y", // disk add hits the failing fetch
		"99",
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "Operation failed") {
		t.Errorf("Expected failure report:\n%s", out)
	}
	if len(svc.created) != 0 {
		t.Errorf("Expected no CreateVM calls, got %d", len(svc.created))
	}
}
