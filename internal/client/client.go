// Package client implements the authenticated HTTP session against the
// Prism Gateway v2.0 REST API.
package client

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultPort is the Prism Gateway HTTPS port.
	DefaultPort = 9440

	// basePath is the v2.0 API base path. Endpoint paths are appended
	// to it without a leading slash, e.g. "vms".
	basePath = "/PrismGateway/services/rest/v2.0/"

	defaultTimeout = 30 * time.Second
)

// Options configures a Session.
type Options struct {
	// Address is the cluster virtual IP address or hostname.
	Address string

	// Port is the HTTPS port. Defaults to 9440.
	Port int

	// Username and Password are the basic auth credentials.
	Username string
	Password string

	// InsecureSkipVerify disables TLS certificate validation. Clusters
	// commonly run with self-signed certificates; enabling this is a
	// known weakness and is off by default.
	InsecureSkipVerify bool

	// Timeout bounds a single request round trip. Defaults to 30s.
	Timeout time.Duration
}

// Session issues authenticated GET and POST calls against the API.
// It is reused across calls within one run and is not safe for
// concurrent use; prismctl never shares it between goroutines.
type Session struct {
	baseURL  string
	username string
	password string
	hc       *http.Client
}

// New validates the options and returns a connected-ready Session.
// No network traffic happens until the first call.
func New(opts Options) (*Session, error) {
	if opts.Address == "" {
		return nil, fmt.Errorf("cluster address is required")
	}
	if opts.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if opts.Port == 0 {
		opts.Port = DefaultPort
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}

	hc := &http.Client{Timeout: opts.Timeout}
	if opts.InsecureSkipVerify {
		hc.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Session{
		baseURL:  fmt.Sprintf("https://%s:%d%s", opts.Address, opts.Port, basePath),
		username: opts.Username,
		password: opts.Password,
		hc:       hc,
	}, nil
}

// BaseURL returns the v2.0 API base URL of this session.
func (s *Session) BaseURL() string {
	return s.baseURL
}

// Get issues a GET against the given endpoint path and returns the
// status code and raw response body. A non-2xx status is not an error
// here; callers decide how to treat it.
func (s *Session) Get(path string) (int, []byte, error) {
	return s.do(http.MethodGet, path, nil)
}

// Post issues a POST with a JSON body against the given endpoint path.
func (s *Session) Post(path string, body []byte) (int, []byte, error) {
	return s.do(http.MethodPost, path, bytes.NewReader(body))
}

func (s *Session) do(method, path string, body io.Reader) (int, []byte, error) {
	url := s.baseURL + path

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build %s request for %s: %w", method, url, err)
	}
	req.SetBasicAuth(s.username, s.password)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := s.hc.Do(req)
	if err != nil {
		return 0, nil, &TransportError{URL: url, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &TransportError{URL: url, Err: err}
	}

	return resp.StatusCode, data, nil
}

// DecodeJSON decodes an API response body into v, mapping decode
// failures to ParseError so callers can distinguish them from transport
// failures.
func DecodeJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}
