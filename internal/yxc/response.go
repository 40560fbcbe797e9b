package yxc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/muurk/musiccast/internal/logging"
)

// Response is the decoded JSON object returned by the receiver.
//
// An empty Response means the receiver answered with a non-200 status.
// It cannot be told apart from a 200 with an empty object; callers that
// care should check IsEmpty.
type Response map[string]any

// requestFunc performs exactly one GET and returns the raw response.
type requestFunc func() (*resty.Response, error)

// getResponse runs send and unwraps the result.
//
// Transport failures are returned as a classified *DeviceError. Any
// status other than 200 yields an empty Response and a nil error.
func getResponse(target string, send requestFunc) (Response, error) {
	start := time.Now()
	resp, err := send()
	if err != nil {
		logging.LogTransportError(target, err)
		return nil, NewNetworkError("GET request failed", target, err)
	}

	logging.LogRequest(target, resp.StatusCode(), time.Since(start))

	if resp.StatusCode() != http.StatusOK {
		return Response{}, nil
	}

	var payload Response
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, NewParseError("failed to parse JSON response", target, resp.StatusCode(), err)
	}
	if payload == nil {
		// body was the JSON literal null
		return nil, NewParseError("response body is not a JSON object", target, resp.StatusCode(), nil)
	}

	return payload, nil
}

// IsEmpty reports whether r is the no-data sentinel
func (r Response) IsEmpty() bool {
	return len(r) == 0
}

// String returns the value at key as a string, or "" when absent or not a string
func (r Response) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Int returns the numeric value at key truncated to an int, or 0
func (r Response) Int(key string) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	}
	return 0
}

// Bool returns the boolean value at key, or false
func (r Response) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// ResponseCode returns the receiver's response_code, or -1 if it is missing
func (r Response) ResponseCode() int {
	if _, ok := r["response_code"]; !ok {
		return -1
	}
	return r.Int("response_code")
}

// OK reports whether the receiver accepted the request (response_code 0)
func (r Response) OK() bool {
	return r.ResponseCode() == ResponseCodeSuccess
}

// Decode re-decodes the response into a typed value such as *PlayInfo
func (r Response) Decode(v any) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
