// Package prism provides the inventory fetchers and the VM creation call
// against a Prism v2 API session, with an offline fixture mode for
// development without a live cluster.
package prism

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	v2 "github.com/ntnxlab/prismctl/api/v2"
	"github.com/ntnxlab/prismctl/internal/client"
	"github.com/ntnxlab/prismctl/internal/fixture"
)

// Fixture file names. The data directory uses the same names, so a debug
// dump from a live cluster can be replayed offline as-is.
const (
	clusterFixture    = "cluster.json"
	containersFixture = "containers.json"
	networksFixture   = "networks.json"
	vmCreateFixture   = "vm_create.json"
)

// Caller is the narrow API session contract the service needs.
// Satisfied by *client.Session in production and by mocks in tests.
type Caller interface {
	// Get issues a GET against an endpoint path.
	Get(path string) (int, []byte, error)

	// Post issues a POST with a JSON body against an endpoint path.
	Post(path string, body []byte) (int, []byte, error)
}

// SubmissionError reports a failed VM creation call: a non-2xx status or
// an unparseable response body. It is never retried.
type SubmissionError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("VM creation rejected: %v", e.Err)
	}
	return fmt.Sprintf("VM creation rejected with status %d: %s", e.StatusCode, e.Body)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// Service fetches inventory snapshots and submits VM creation requests.
//
// Every fetch is a full replace of the previous snapshot; nothing is
// cached across calls. In offline mode the caller is never used and all
// reads come from the fixture store.
type Service struct {
	caller  Caller
	store   *fixture.Store
	offline bool
	log     *logrus.Entry
}

// NewService returns a Service over the given session. caller may be nil
// when offline is true.
func NewService(caller Caller, store *fixture.Store, offline bool) *Service {
	return &Service{
		caller:  caller,
		store:   store,
		offline: offline,
		log:     logrus.WithField("component", "prism"),
	}
}

// Offline reports whether the service runs against local fixtures.
func (s *Service) Offline() bool {
	return s.offline
}

// Cluster fetches the cluster information snapshot.
func (s *Service) Cluster() (*v2.Cluster, error) {
	var c v2.Cluster
	if err := s.fetch("cluster", clusterFixture, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Containers fetches the storage container collection.
func (s *Service) Containers() ([]v2.Container, error) {
	var list v2.ContainerList
	if err := s.fetch("storage_containers", containersFixture, &list); err != nil {
		return nil, err
	}
	return list.Entities, nil
}

// Networks fetches the network collection.
func (s *Service) Networks() ([]v2.Network, error) {
	var list v2.NetworkList
	if err := s.fetch("networks", networksFixture, &list); err != nil {
		return nil, err
	}
	return list.Entities, nil
}

// CreateVM serializes and submits a VM creation request, returning the
// task UUID the cluster scheduled for it. In offline mode the payload is
// only dumped to the debug directory and an empty task id is returned.
func (s *Service) CreateVM(spec *v2.VMSpec) (string, error) {
	payload, err := spec.Payload()
	if err != nil {
		return "", err
	}

	s.dump(vmCreateFixture, json.RawMessage(payload))

	if s.offline {
		s.log.WithField("vm", spec.Name()).Info("offline mode, VM creation request not sent")
		return "", nil
	}

	s.log.WithField("vm", spec.Name()).Debug("submitting VM creation request")
	status, body, err := s.caller.Post("vms", payload)
	if err != nil {
		return "", fmt.Errorf("failed to create VM %s: %w", spec.Name(), err)
	}
	if status < 200 || status > 299 {
		return "", &SubmissionError{StatusCode: status, Body: body}
	}

	var task v2.TaskReference
	if err := client.DecodeJSON(body, &task); err != nil {
		return "", &SubmissionError{StatusCode: status, Err: err}
	}
	return task.TaskUUID, nil
}

// fetch fills v from the API (or the fixture store in offline mode) and
// dumps the decoded snapshot when debugging is enabled.
func (s *Service) fetch(path, fixtureName string, v any) error {
	if s.offline {
		s.log.WithField("fixture", fixtureName).Debug("loading offline fixture")
		if err := s.store.Load(fixtureName, v); err != nil {
			return err
		}
		s.dump(fixtureName, v)
		return nil
	}

	s.log.WithField("endpoint", path).Debug("fetching inventory")
	status, body, err := s.caller.Get(path)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	if status < 200 || status > 299 {
		return fmt.Errorf("failed to fetch %s: %w", path, &client.APIError{StatusCode: status, Body: body})
	}
	if err := client.DecodeJSON(body, v); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}

	s.dump(fixtureName, v)
	return nil
}

// dump is best effort: a failed debug snapshot never fails the operation.
func (s *Service) dump(name string, v any) {
	if err := s.store.Dump(name, v); err != nil {
		s.log.WithError(err).Warn("failed to write debug snapshot")
	}
}
