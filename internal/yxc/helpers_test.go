package yxc

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
)

const mockDeviceInfo = `{"response_code":0,"model_name":"RX-S602","destination":"BG","device_id":"AC44F2851234","system_id":"0B587073","system_version":2.75,"api_version":2.11,"netmodule_version":"2060"}`

// recordingTransport answers requests with handler and records every request it sees
type recordingTransport struct {
	mu       sync.Mutex
	requests []*http.Request
	handler  func(*http.Request) (*http.Response, error)
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.mu.Lock()
	rt.requests = append(rt.requests, req)
	rt.mu.Unlock()
	return rt.handler(req)
}

func (rt *recordingTransport) count() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return len(rt.requests)
}

func (rt *recordingTransport) last() *http.Request {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if len(rt.requests) == 0 {
		return nil
	}
	return rt.requests[len(rt.requests)-1]
}

func jsonResponse(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		Status:        http.StatusText(status),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Type": []string{"application/json"}},
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}

// newFakeReceiver serves device info on getDeviceInfo and commandBody/commandStatus on everything else
func newFakeReceiver(commandStatus int, commandBody string) *recordingTransport {
	return &recordingTransport{
		handler: func(req *http.Request) (*http.Response, error) {
			if strings.HasSuffix(req.URL.Path, "/system/getDeviceInfo") {
				return jsonResponse(req, http.StatusOK, mockDeviceInfo), nil
			}
			return jsonResponse(req, commandStatus, commandBody), nil
		},
	}
}

func openTestDevice(t *testing.T, rt http.RoundTripper) *Device {
	t.Helper()
	dev, err := NewDevice(context.Background(), "192.168.1.50", WithTransport(rt))
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}
	return dev
}
