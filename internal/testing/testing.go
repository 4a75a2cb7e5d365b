// package testing contains shared testing utilities
package testing

import (
	"errors"
	"net/http"
	"sync"
)

// MockNavigator records every URL it is asked to open.
type MockNavigator struct {
	mu   sync.Mutex
	URLs []string
	Err  error
}

func (m *MockNavigator) Navigate(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.URLs = append(m.URLs, url)
	return m.Err
}

// Visited returns a copy of the recorded URLs.
func (m *MockNavigator) Visited() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.URLs...)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing and records the requests it receives
type MockRoundTripper struct {
	response *http.Response
	err      error
	Requests []*http.Request
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.Requests = append(m.Requests, req)
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}
