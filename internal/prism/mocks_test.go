package prism

import (
	"fmt"
)

// mockCaller is a scripted Caller for testing the service without a
// network. Responses are keyed by "METHOD path".
type mockCaller struct {
	responses map[string]mockResponse
	calls     []string
	lastBody  []byte
}

type mockResponse struct {
	status int
	body   string
	err    error
}

func newMockCaller() *mockCaller {
	return &mockCaller{responses: make(map[string]mockResponse)}
}

func (m *mockCaller) on(method, path string, status int, body string) {
	m.responses[method+" "+path] = mockResponse{status: status, body: body}
}

func (m *mockCaller) fail(method, path string, err error) {
	m.responses[method+" "+path] = mockResponse{err: err}
}

func (m *mockCaller) Get(path string) (int, []byte, error) {
	return m.respond("GET", path)
}

func (m *mockCaller) Post(path string, body []byte) (int, []byte, error) {
	m.lastBody = body
	return m.respond("POST", path)
}

func (m *mockCaller) respond(method, path string) (int, []byte, error) {
	key := method + " " + path
	m.calls = append(m.calls, key)

	resp, ok := m.responses[key]
	if !ok {
		return 0, nil, fmt.Errorf("unexpected call: %s", key)
	}
	if resp.err != nil {
		return 0, nil, resp.err
	}
	return resp.status, []byte(resp.body), nil
}
