package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/muurk/musiccast/internal/yxc"
)

// CurrentVersion is the registry file format version
const CurrentVersion = 1

// Registry represents the entire user configuration file.
// It stores named receivers and application preferences.
type Registry struct {
	Version       int                `yaml:"version" toml:"version"`
	DefaultDevice string             `yaml:"default_device,omitempty" toml:"default_device,omitempty"`
	Devices       map[string]*Device `yaml:"devices,omitempty" toml:"devices,omitempty"` // Keyed by user-chosen name
	Preferences   *Preferences       `yaml:"preferences,omitempty" toml:"preferences,omitempty"`
}

// Device represents a named receiver.
type Device struct {
	Address  string    `yaml:"address" toml:"address" json:"address"`                         // IPv4 address
	Port     int       `yaml:"port,omitempty" toml:"port,omitempty" json:"port,omitempty"`    // HTTP port, 0 means 80
	Model    string    `yaml:"model,omitempty" toml:"model,omitempty" json:"model,omitempty"` // Last reported model_name
	LastSeen time.Time `yaml:"last_seen,omitempty" toml:"last_seen" json:"last_seen"`         // Last successful connection
}

// Preferences represents application-wide user preferences.
// Zero values keep the client unhardened: no timeout, no retries.
type Preferences struct {
	TimeoutSeconds int    `yaml:"timeout_seconds" toml:"timeout_seconds"`   // Request timeout, 0 = unbounded
	Retries        int    `yaml:"retries" toml:"retries"`                   // Transport retries, 0 = none
	Format         string `yaml:"format,omitempty" toml:"format,omitempty"` // Default output format
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     CurrentVersion,
		Devices:     make(map[string]*Device),
		Preferences: defaultPreferences(),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		TimeoutSeconds: 0,
		Retries:        0,
		Format:         "detailed",
	}
}

// GetDevice retrieves a device by name.
// Returns nil if the device doesn't exist in the registry.
func (r *Registry) GetDevice(name string) *Device {
	return r.Devices[name]
}

// DeviceNames returns the registered names in sorted order.
func (r *Registry) DeviceNames() []string {
	names := make([]string, 0, len(r.Devices))
	for name := range r.Devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddDevice registers or replaces a named receiver.
// The address must be a valid IPv4 address. The first device added becomes the default.
func (r *Registry) AddDevice(name, address string, port int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("device name cannot be empty")
	}
	if _, err := yxc.ValidateAddress(address); err != nil {
		return fmt.Errorf("invalid address for %q: %w", name, err)
	}
	// a name that parses as an address would be shadowed in Resolve
	if _, err := yxc.ValidateAddress(name); err == nil {
		return fmt.Errorf("device name %q looks like an address", name)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("invalid port %d for %q", port, name)
	}

	if r.Devices == nil {
		r.Devices = make(map[string]*Device)
	}
	r.Devices[name] = &Device{
		Address: address,
		Port:    port,
	}
	if r.DefaultDevice == "" {
		r.DefaultDevice = name
	}
	return nil
}

// RemoveDevice deletes a named receiver, clearing the default if it pointed there.
func (r *Registry) RemoveDevice(name string) error {
	if _, ok := r.Devices[name]; !ok {
		return fmt.Errorf("unknown device %q", name)
	}
	delete(r.Devices, name)
	if r.DefaultDevice == name {
		r.DefaultDevice = ""
	}
	return nil
}

// SetDefault marks a registered device as the default target.
func (r *Registry) SetDefault(name string) error {
	if _, ok := r.Devices[name]; !ok {
		return fmt.Errorf("unknown device %q", name)
	}
	r.DefaultDevice = name
	return nil
}

// UpdateDeviceSeen records a successful connection to a named device.
// Unknown names are ignored.
func (r *Registry) UpdateDeviceSeen(name, model string) {
	device := r.Devices[name]
	if device == nil {
		return
	}
	device.LastSeen = time.Now()
	if model != "" {
		device.Model = model
	}
}

// Target is a resolved receiver to connect to.
type Target struct {
	Name    string // Registry name, empty for a literal address
	Address string
	Port    int // 0 means the caller's default
}

// Resolve turns a --device value into a Target.
// An empty value selects the default device; a registered name selects that
// device; anything else must be a valid IPv4 address.
func (r *Registry) Resolve(nameOrAddress string) (Target, error) {
	if nameOrAddress == "" {
		if r.DefaultDevice == "" {
			return Target{}, fmt.Errorf("no device specified and no default device configured")
		}
		nameOrAddress = r.DefaultDevice
	}

	if device, ok := r.Devices[nameOrAddress]; ok {
		return Target{Name: nameOrAddress, Address: device.Address, Port: device.Port}, nil
	}

	address, err := yxc.ValidateAddress(nameOrAddress)
	if err != nil {
		return Target{}, fmt.Errorf("%q is neither a registered device nor an IPv4 address: %w", nameOrAddress, err)
	}
	return Target{Address: address}, nil
}
