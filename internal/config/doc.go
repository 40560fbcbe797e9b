// Package config provides user configuration management for the musiccast tools.
//
// The configuration file stores named receivers (so commands can say
// --device livingroom instead of an address), the default receiver and
// client preferences. It follows OS-specific conventions for its location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/musiccast/config.yaml or $HOME/.config/musiccast/config.yaml
//   - macOS: $HOME/.config/musiccast/config.yaml
//   - Windows: %LOCALAPPDATA%\musiccast\config.yaml
//
// Any other path may be given explicitly. Paths ending in .toml are read and
// written as TOML instead of YAML.
//
// # Usage Example
//
//	registry, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := registry.AddDevice("livingroom", "192.168.1.50", 0); err != nil {
//	    log.Fatal(err)
//	}
//
//	target, _ := registry.Resolve("livingroom")
//	fmt.Println(target.Address)
//
//	if err := registry.Save(""); err != nil {
//	    log.Fatal(err)
//	}
package config
