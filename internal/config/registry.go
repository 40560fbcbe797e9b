package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/musiccast/internal/logging"
)

const (
	appName    = "musiccast"
	configFile = "config.yaml"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/musiccast or $HOME/.config/musiccast
//   - macOS: $HOME/.config/musiccast (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\musiccast
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the default configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// resolvePath returns path, or the default config path when path is empty.
func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) != "" {
		return path, nil
	}
	return GetConfigPath()
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads the registry from path (the default location when empty).
// A missing file yields a new default registry. Files ending in .toml are
// parsed as TOML, everything else as YAML.
func Load(path string) (*Registry, error) {
	configPath, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("No config file, using defaults", zap.String("path", configPath))
			return NewRegistry(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var registry Registry
	if isTOML(configPath) {
		err = toml.Unmarshal(data, &registry)
	} else {
		err = yaml.Unmarshal(data, &registry)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if registry.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", registry.Version, CurrentVersion)
	}

	if registry.Devices == nil {
		registry.Devices = make(map[string]*Device)
	}
	if registry.Preferences == nil {
		registry.Preferences = defaultPreferences()
	}

	return &registry, nil
}

// Save writes the registry to path (the default location when empty).
// Performs an atomic write to prevent corruption on crash.
func (r *Registry) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	configPath, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	if isTOML(configPath) {
		data, err = toml.Marshal(r)
	} else {
		data, err = yaml.Marshal(r)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# MusicCast Configuration File
# Named receivers and client preferences.
#
# Location: ` + configPath + `

`)
	data = append(header, data...)

	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	logging.Debug("Saved config", zap.String("path", configPath), zap.Int("devices", len(r.Devices)))
	return nil
}
