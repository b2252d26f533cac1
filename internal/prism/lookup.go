package prism

import (
	"fmt"

	v2 "github.com/ntnxlab/prismctl/api/v2"
)

// The API does not guarantee unique names for containers or networks.
// Lookups reject ambiguity instead of silently picking one match; the
// wizard reports the error and re-prompts.

// ContainerByName finds the container with the given name in a fetched
// snapshot. Unknown names and duplicated names are errors.
func ContainerByName(containers []v2.Container, name string) (*v2.Container, error) {
	var found *v2.Container
	for i := range containers {
		if containers[i].Name != name {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("storage container name %q is ambiguous, select is not possible", name)
		}
		found = &containers[i]
	}
	if found == nil {
		return nil, fmt.Errorf("storage container %q not found", name)
	}
	return found, nil
}

// NetworkByName finds the network with the given name in a fetched
// snapshot. Unknown names and duplicated names are errors.
func NetworkByName(networks []v2.Network, name string) (*v2.Network, error) {
	var found *v2.Network
	for i := range networks {
		if networks[i].Name != name {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("network name %q is ambiguous, select is not possible", name)
		}
		found = &networks[i]
	}
	if found == nil {
		return nil, fmt.Errorf("network %q not found", name)
	}
	return found, nil
}
