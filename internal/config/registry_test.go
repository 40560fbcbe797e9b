package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	}

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "musiccast") {
		t.Errorf("GetConfigDir() = %v, should contain 'musiccast'", configDir)
	}

	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		if configDir != filepath.Join("/tmp/xdg-test", "musiccast") {
			t.Errorf("GetConfigDir() = %v, want XDG_CONFIG_HOME/musiccast", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != CurrentVersion {
		t.Errorf("NewRegistry().Version = %v, want %d", reg.Version, CurrentVersion)
	}
	if reg.Devices == nil {
		t.Error("NewRegistry().Devices should not be nil")
	}
	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}
	if reg.Preferences.TimeoutSeconds != 0 || reg.Preferences.Retries != 0 {
		t.Errorf("default preferences should not enable timeout or retries: %+v", reg.Preferences)
	}
}

func TestRegistry_AddDevice(t *testing.T) {
	reg := NewRegistry()

	if err := reg.AddDevice("livingroom", "192.168.1.50", 0); err != nil {
		t.Fatalf("AddDevice() error = %v", err)
	}
	if reg.DefaultDevice != "livingroom" {
		t.Errorf("first device should become default, got %q", reg.DefaultDevice)
	}

	if err := reg.AddDevice("kitchen", "192.168.1.51", 8080); err != nil {
		t.Fatalf("AddDevice() error = %v", err)
	}
	if reg.DefaultDevice != "livingroom" {
		t.Errorf("default should not change, got %q", reg.DefaultDevice)
	}

	if got := reg.DeviceNames(); len(got) != 2 || got[0] != "kitchen" || got[1] != "livingroom" {
		t.Errorf("DeviceNames() = %v", got)
	}
}

func TestRegistry_AddDeviceRejects(t *testing.T) {
	tests := []struct {
		name    string
		devName string
		address string
		port    int
	}{
		{"empty name", "  ", "192.168.1.50", 0},
		{"bad address", "den", "192.168.1.500", 0},
		{"hostname", "den", "receiver.local", 0},
		{"name is an address", "10.0.0.1", "192.168.1.50", 0},
		{"bad port", "den", "192.168.1.50", 70000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			if err := reg.AddDevice(tt.devName, tt.address, tt.port); err == nil {
				t.Errorf("AddDevice(%q, %q, %d) should fail", tt.devName, tt.address, tt.port)
			}
			if len(reg.Devices) != 0 {
				t.Errorf("rejected device should not be stored")
			}
		})
	}
}

func TestRegistry_RemoveAndDefault(t *testing.T) {
	reg := NewRegistry()
	_ = reg.AddDevice("livingroom", "192.168.1.50", 0)
	_ = reg.AddDevice("kitchen", "192.168.1.51", 0)

	if err := reg.SetDefault("kitchen"); err != nil {
		t.Fatalf("SetDefault() error = %v", err)
	}
	if err := reg.SetDefault("garage"); err == nil {
		t.Error("SetDefault(unknown) should fail")
	}

	if err := reg.RemoveDevice("kitchen"); err != nil {
		t.Fatalf("RemoveDevice() error = %v", err)
	}
	if reg.DefaultDevice != "" {
		t.Errorf("removing the default should clear it, got %q", reg.DefaultDevice)
	}
	if err := reg.RemoveDevice("kitchen"); err == nil {
		t.Error("RemoveDevice(unknown) should fail")
	}
}

func TestRegistry_Resolve(t *testing.T) {
	reg := NewRegistry()
	_ = reg.AddDevice("livingroom", "192.168.1.50", 8080)

	tests := []struct {
		name    string
		input   string
		want    Target
		wantErr bool
	}{
		{"default", "", Target{Name: "livingroom", Address: "192.168.1.50", Port: 8080}, false},
		{"by name", "livingroom", Target{Name: "livingroom", Address: "192.168.1.50", Port: 8080}, false},
		{"literal address", "10.0.0.7", Target{Address: "10.0.0.7"}, false},
		{"unknown name", "garage", Target{}, true},
		{"bad address", "10.0.0.700", Target{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Resolve(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := NewRegistry().Resolve(""); err == nil {
		t.Error("Resolve(\"\") without a default should fail")
	}
}

func TestRegistry_UpdateDeviceSeen(t *testing.T) {
	reg := NewRegistry()
	_ = reg.AddDevice("livingroom", "192.168.1.50", 0)

	before := time.Now()
	reg.UpdateDeviceSeen("livingroom", "RX-S602")
	reg.UpdateDeviceSeen("missing", "RX-V485")

	dev := reg.GetDevice("livingroom")
	if dev.Model != "RX-S602" {
		t.Errorf("Model = %q", dev.Model)
	}
	if dev.LastSeen.Before(before) {
		t.Errorf("LastSeen = %v, want after %v", dev.LastSeen, before)
	}
	if reg.GetDevice("missing") != nil {
		t.Error("UpdateDeviceSeen should not create devices")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	reg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.Version != CurrentVersion || len(reg.Devices) != 0 {
		t.Errorf("Load(missing) = %+v, want default registry", reg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			reg := NewRegistry()
			_ = reg.AddDevice("livingroom", "192.168.1.50", 0)
			_ = reg.AddDevice("kitchen", "192.168.1.51", 8080)
			reg.UpdateDeviceSeen("livingroom", "RX-S602")
			reg.Preferences.TimeoutSeconds = 5
			reg.Preferences.Retries = 2

			if err := reg.Save(path); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("config file not written: %v", err)
			}
			if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
				t.Errorf("config permissions = %v, want 0600", info.Mode().Perm())
			}
			if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
				t.Error("temporary file should be renamed away")
			}

			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if loaded.DefaultDevice != "livingroom" {
				t.Errorf("DefaultDevice = %q", loaded.DefaultDevice)
			}
			if len(loaded.Devices) != 2 {
				t.Fatalf("Devices = %d, want 2", len(loaded.Devices))
			}
			lr := loaded.GetDevice("livingroom")
			if lr.Address != "192.168.1.50" || lr.Model != "RX-S602" {
				t.Errorf("livingroom = %+v", lr)
			}
			if lr.LastSeen.IsZero() {
				t.Error("LastSeen should survive the round trip")
			}
			if k := loaded.GetDevice("kitchen"); k.Port != 8080 {
				t.Errorf("kitchen port = %d, want 8080", k.Port)
			}
			if loaded.Preferences.TimeoutSeconds != 5 || loaded.Preferences.Retries != 2 {
				t.Errorf("Preferences = %+v", loaded.Preferences)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	badVersion := filepath.Join(dir, "v2.yaml")
	if err := os.WriteFile(badVersion, []byte("version: 2\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badVersion); err == nil || !strings.Contains(err.Error(), "unsupported config version") {
		t.Errorf("Load(version 2) error = %v", err)
	}

	garbage := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(garbage, []byte("version = [\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(garbage); err == nil {
		t.Error("Load(malformed toml) should fail")
	}

	minimal := filepath.Join(dir, "minimal.yaml")
	if err := os.WriteFile(minimal, []byte("version: 1\n"), 0600); err != nil {
		t.Fatal(err)
	}
	reg, err := Load(minimal)
	if err != nil {
		t.Fatalf("Load(minimal) error = %v", err)
	}
	if reg.Devices == nil || reg.Preferences == nil {
		t.Error("Load should initialize missing sections")
	}
}
