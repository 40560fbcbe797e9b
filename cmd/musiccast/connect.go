package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/musiccast/internal/config"
	"github.com/muurk/musiccast/internal/logging"
	"github.com/muurk/musiccast/internal/ui"
	"github.com/muurk/musiccast/internal/yxc"
)

// Output formats
const (
	formatDetailed = "detailed"
	formatCompact  = "compact"
	formatJSON     = "json"
)

// Connection flags (persistent on root)
var (
	deviceName   string
	devicePort   int
	outputFormat string
	timeout      time.Duration
	retries      int
	configPath   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&deviceName, "device", "d", "", "Receiver IPv4 address or registered name (default: configured default)")
	rootCmd.PersistentFlags().IntVar(&devicePort, "port", yxc.DefaultPort, "Receiver HTTP port")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", formatDetailed, "Output format (detailed, compact, json)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-request timeout, 0 waits indefinitely")
	rootCmd.PersistentFlags().IntVar(&retries, "retries", 0, "Retries for transient network errors")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (.yaml or .toml)")
}

func validateFormat() error {
	switch outputFormat {
	case formatDetailed, formatCompact, formatJSON:
		return nil
	}
	return fmt.Errorf("invalid --format %q (expected detailed, compact or json)", outputFormat)
}

// connection holds the state shared by device commands
type connection struct {
	registry *config.Registry
	target   config.Target
	device   *yxc.Device
}

// deviceOptions builds client options from flags, falling back to the
// registry preferences for anything not given on the command line
func deviceOptions(cmd *cobra.Command, prefs *config.Preferences, port int) []yxc.Option {
	opts := []yxc.Option{yxc.WithPort(port)}

	t := timeout
	if !cmd.Flags().Changed("timeout") && prefs != nil && prefs.TimeoutSeconds > 0 {
		t = time.Duration(prefs.TimeoutSeconds) * time.Second
	}
	if t > 0 {
		opts = append(opts, yxc.WithTimeout(t))
	}

	n := retries
	if !cmd.Flags().Changed("retries") && prefs != nil {
		n = prefs.Retries
	}
	if n > 0 {
		opts = append(opts, yxc.WithRetry(n, yxc.DefaultRetryDelay))
	}

	return opts
}

// connect resolves --device against the registry and opens the receiver.
// A registered receiver has its model and last-seen time refreshed.
func connect(cmd *cobra.Command) (*connection, error) {
	registry, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	target, err := registry.Resolve(deviceName)
	if err != nil {
		return nil, err
	}

	port := devicePort
	if !cmd.Flags().Changed("port") && target.Port != 0 {
		port = target.Port
	}

	if registry.Preferences != nil && registry.Preferences.Format != "" && !cmd.Flags().Changed("format") {
		outputFormat = registry.Preferences.Format
		if err := validateFormat(); err != nil {
			return nil, fmt.Errorf("config preferences: %w", err)
		}
	}

	logging.Debug("Connecting to receiver",
		zap.String("device", target.Address),
		zap.Int("port", port),
		zap.String("name", target.Name))

	device, err := yxc.NewDevice(cmd.Context(), target.Address, deviceOptions(cmd, registry.Preferences, port)...)
	if err != nil {
		return nil, err
	}

	if target.Name != "" {
		registry.UpdateDeviceSeen(target.Name, device.Model)
		if err := registry.Save(configPath); err != nil {
			logging.Warn("Failed to update config", zap.Error(err))
		}
	}

	return &connection{registry: registry, target: target, device: device}, nil
}

// formatter is implemented by the typed response views
type formatter interface {
	FormatDetailed() string
	FormatCompact() string
}

// rawView formats a response without a typed view
type rawView yxc.Response

func (v rawView) FormatDetailed() string { return yxc.FormatResponse(yxc.Response(v)) }
func (v rawView) FormatCompact() string  { return yxc.FormatResponse(yxc.Response(v)) }

func printer(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout())
}

// showQuery prints a query response in the selected format
func showQuery(cmd *cobra.Command, dev *yxc.Device, title string, resp yxc.Response, view formatter) error {
	p := printer(cmd)

	if outputFormat == formatJSON {
		return p.PrintJSON(resp)
	}

	if resp.IsEmpty() {
		if outputFormat == formatCompact {
			p.Println("no data")
			return nil
		}
		p.PrintWarning("Receiver returned no data",
			ui.Param{Key: "Receiver", Value: dev.String()},
			ui.Param{Key: "Command", Value: cmd.CommandPath()})
		return nil
	}

	if view == nil {
		view = rawView(resp)
	}

	if outputFormat == formatCompact {
		p.Println(view.FormatCompact())
		return nil
	}

	p.PrintHeader(title, cmd.CommandPath(), ui.Param{Key: "Receiver", Value: dev.String()})
	p.PrintBody(view.FormatDetailed())
	return nil
}

// showResult prints the outcome of a command such as setPower
func showResult(cmd *cobra.Command, dev *yxc.Device, title string, resp yxc.Response) error {
	p := printer(cmd)

	switch outputFormat {
	case formatJSON:
		return p.PrintJSON(resp)
	case formatCompact:
		if resp.IsEmpty() {
			p.Println("no data")
		} else {
			p.Println(yxc.ResponseCodeText(resp.ResponseCode()))
		}
		return nil
	}

	receiver := ui.Param{Key: "Receiver", Value: dev.String()}

	switch {
	case resp.IsEmpty():
		p.PrintWarning(title+": receiver returned no data", receiver)
	case resp.OK():
		p.PrintSuccess(title, receiver)
	default:
		p.PrintWarning(title, receiver,
			ui.Param{Key: "Response", Value: yxc.ResponseCodeText(resp.ResponseCode())})
	}
	return nil
}
