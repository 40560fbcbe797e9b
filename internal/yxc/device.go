package yxc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/muurk/musiccast/internal/logging"
	"github.com/muurk/musiccast/internal/version"
)

const (
	// APIPath is the extended-control API root on every receiver
	APIPath = "/YamahaExtendedControl/v1"

	// DefaultPort is the receiver's HTTP port
	DefaultPort = 80

	// DefaultZone is the only zone this client addresses
	DefaultZone = "main"

	// DefaultRetryDelay is the initial delay between retry attempts when retries are enabled
	DefaultRetryDelay = 1 * time.Second

	// DefaultMaxRetryDelay is the maximum delay for exponential backoff
	DefaultMaxRetryDelay = 30 * time.Second
)

// Endpoints holds the base URL of each endpoint group
type Endpoints struct {
	System string // device-wide queries
	Main   string // zone control (power, input, volume, mute)
	Tuner  string // radio tuner
	NetUSB string // network and USB playback
}

func newEndpoints(ip string, port int) Endpoints {
	host := ip
	if port != DefaultPort {
		host = fmt.Sprintf("%s:%d", ip, port)
	}
	base := "http://" + host + APIPath
	return Endpoints{
		System: base + "/system",
		Main:   base + "/" + DefaultZone,
		Tuner:  base + "/tuner",
		NetUSB: base + "/netusb",
	}
}

// Device is a MusicCast receiver reachable over HTTP.
//
// A Device is opened once with NewDevice and holds no connection between
// calls. Each method performs a single GET.
type Device struct {
	// Address is the validated IPv4 address of the receiver
	Address string

	// Model is the model_name reported when the device was opened (e.g. "RX-S602")
	Model string

	endpoints  Endpoints
	client     *resty.Client
	maxRetries int
	retryDelay time.Duration
}

type settings struct {
	port       int
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
	transport  http.RoundTripper
	userAgent  string
}

// Option configures a Device
type Option func(*settings)

// WithPort sets the receiver's HTTP port (default 80)
func WithPort(port int) Option {
	return func(s *settings) { s.port = port }
}

// WithTimeout bounds every request. The default of 0 leaves requests unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) { s.timeout = timeout }
}

// WithRetry retries transport failures up to maxRetries times, doubling
// delay after each attempt. Non-200 responses are never retried.
func WithRetry(maxRetries int, delay time.Duration) Option {
	return func(s *settings) {
		s.maxRetries = maxRetries
		s.retryDelay = delay
	}
}

// WithHTTPClient uses a copy of hc for all requests. hc itself is never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) { s.httpClient = hc }
}

// WithTransport uses rt as the round tripper for all requests
func WithTransport(rt http.RoundTripper) Option {
	return func(s *settings) { s.transport = rt }
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(s *settings) { s.userAgent = ua }
}

// NewDevice validates address, then queries the receiver's device info.
//
// The address is checked before any network activity. If the info query
// fails at the transport level or answers with a non-200 status, a
// connection error naming the getDeviceInfo URL is returned. An answer
// without a model_name is reported as a parse error.
func NewDevice(ctx context.Context, address string, opts ...Option) (*Device, error) {
	ip, err := ValidateAddress(address)
	if err != nil {
		return nil, err
	}

	s := settings{
		port:       DefaultPort,
		retryDelay: DefaultRetryDelay,
		userAgent:  version.UserAgent(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.port <= 0 || s.port > 65535 {
		return nil, NewValidationError(fmt.Sprintf("invalid port %d: must be 1-65535", s.port))
	}

	var client *resty.Client
	if s.httpClient != nil {
		hc := *s.httpClient
		client = resty.NewWithClient(&hc)
	} else {
		client = resty.New()
	}
	if s.transport != nil {
		client.SetTransport(s.transport)
	}
	if s.timeout > 0 {
		client.SetTimeout(s.timeout)
	}
	client.SetHeader("User-Agent", s.userAgent)
	client.SetLogger(logging.GetLogger().Sugar())

	d := &Device{
		Address:    ip,
		endpoints:  newEndpoints(ip, s.port),
		client:     client,
		maxRetries: s.maxRetries,
		retryDelay: s.retryDelay,
	}

	infoURL := d.endpoints.System + "/getDeviceInfo"
	info, err := d.GetDeviceInfo(ctx)
	if err != nil {
		return nil, NewConnectionError(infoURL, err)
	}
	if info.IsEmpty() {
		return nil, NewConnectionError(infoURL, nil)
	}
	d.Model = info.String("model_name")
	if d.Model == "" {
		return nil, NewParseError(fmt.Sprintf("device info from %s has no model_name", infoURL), infoURL, http.StatusOK, nil)
	}

	logging.Info("Opened receiver",
		zap.String("address", ip),
		zap.String("model", d.Model),
	)

	return d, nil
}

// Endpoints returns the endpoint group base URLs
func (d *Device) Endpoints() Endpoints {
	return d.endpoints
}

// String returns a human-readable description of the device
func (d *Device) String() string {
	return fmt.Sprintf("%s at %s", d.Model, d.Address)
}

// get issues one GET for target with the given query parameters and
// retries transport failures when retries are enabled.
func (d *Device) get(ctx context.Context, target string, params url.Values) (Response, error) {
	send := func() (*resty.Response, error) {
		req := d.client.R().SetContext(ctx)
		if len(params) > 0 {
			req.SetQueryParamsFromValues(params)
		}
		return req.Get(target)
	}

	var lastErr error
	currentDelay := d.retryDelay

	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		if attempt > 0 {
			logging.Warn("Retrying request",
				zap.String("url", target),
				zap.Int("attempt", attempt),
				zap.Duration("delay", currentDelay),
			)
			select {
			case <-time.After(currentDelay):
			case <-ctx.Done():
				return nil, NewNetworkError("request cancelled", target, ctx.Err())
			}

			currentDelay *= 2
			if currentDelay > DefaultMaxRetryDelay {
				currentDelay = DefaultMaxRetryDelay
			}
		}

		resp, err := getResponse(target, send)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !IsRetryable(err) {
			return nil, err
		}
	}

	return nil, lastErr
}
