// Package menu implements the interactive operation loop of the shell:
// a numbered dispatch over cluster inspection and VM creation that runs
// until the user exits.
package menu

import (
	"fmt"
	"io"

	v2 "github.com/ntnxlab/prismctl/api/v2"
	"github.com/ntnxlab/prismctl/internal/output"
	"github.com/ntnxlab/prismctl/internal/wizard"
)

const separator = "###############################################################################"

// Service is the cluster contract the menu needs. Satisfied by
// *prism.Service.
type Service interface {
	Cluster() (*v2.Cluster, error)
	wizard.Inventory
}

// Outcome classifies a dispatched selection.
type Outcome int

const (
	// OutcomeHandled means the selection ran, successfully or not.
	OutcomeHandled Outcome = iota
	// OutcomeExit means the user chose to leave the loop.
	OutcomeExit
	// OutcomeUnknown means the selection matched no operation.
	OutcomeUnknown
)

// Menu runs the interactive operation loop over a cluster service.
type Menu struct {
	svc Service
	p   *wizard.Prompter
	out io.Writer

	table *output.TableFormatter
}

// New returns a Menu over the given service and prompter.
func New(svc Service, p *wizard.Prompter) *Menu {
	return &Menu{
		svc:   svc,
		p:     p,
		out:   p.Out(),
		table: &output.TableFormatter{},
	}
}

// Run prints the operation menu and dispatches selections until the
// user exits or the input stream closes. A failed operation is reported
// and the loop continues; one bad fetch never ends the session.
func (m *Menu) Run() error {
	for {
		m.printMenu()

		selection, err := m.p.Line("Please select an operation:")
		if err != nil {
			return err
		}

		outcome, err := m.Dispatch(selection)
		if err != nil {
			fmt.Fprintf(m.out, "Operation failed: %v\n", err)
			continue
		}
		switch outcome {
		case OutcomeExit:
			fmt.Fprintln(m.out, "Bye")
			return nil
		case OutcomeUnknown:
			fmt.Fprintf(m.out, "Wrong Operation: %s\n", selection)
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, separator)
	fmt.Fprintln(m.out, "Cluster Operation Menu")
	fmt.Fprintln(m.out, separator)
	fmt.Fprintln(m.out, "1: Show Cluster Information")
	fmt.Fprintln(m.out, "2: Show Storage Containers")
	fmt.Fprintln(m.out, "3: Show Networks")
	fmt.Fprintln(m.out, "4: Show VMs")
	fmt.Fprintln(m.out, "5: Create a VM")
	fmt.Fprintln(m.out, "99: Exit")
	fmt.Fprintln(m.out, separator)
}

// Dispatch runs the operation behind one menu token. The returned error
// covers only that operation; the caller decides whether to continue.
func (m *Menu) Dispatch(selection string) (Outcome, error) {
	switch selection {
	case "1":
		return OutcomeHandled, m.showCluster()
	case "2":
		return OutcomeHandled, m.showContainers()
	case "3":
		return OutcomeHandled, m.showNetworks()
	case "4":
		fmt.Fprintln(m.out, "Not Implemented!")
		return OutcomeHandled, nil
	case "5":
		return OutcomeHandled, wizard.New(m.svc, m.p).Run()
	case "99":
		return OutcomeExit, nil
	default:
		return OutcomeUnknown, nil
	}
}

func (m *Menu) showCluster() error {
	cluster, err := m.svc.Cluster()
	if err != nil {
		return err
	}
	text, err := m.table.FormatCluster(cluster)
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, text)
	return nil
}

func (m *Menu) showContainers() error {
	containers, err := m.svc.Containers()
	if err != nil {
		return err
	}
	text, err := m.table.FormatContainers(containers)
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, text)
	return nil
}

func (m *Menu) showNetworks() error {
	networks, err := m.svc.Networks()
	if err != nil {
		return err
	}
	text, err := m.table.FormatNetworks(networks)
	if err != nil {
		return err
	}
	fmt.Fprint(m.out, text)
	return nil
}
