package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/musiccast/internal/config"
	"github.com/muurk/musiccast/internal/ui"
	"github.com/muurk/musiccast/internal/yxc"
)

var addProbe bool

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Manage named receivers",
	Long: `Manage the receivers stored in the configuration file.

Registered receivers can be addressed by name with --device, and the
default receiver is used when --device is omitted.`,
}

var devicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered receivers",
	Args:  cobra.NoArgs,
	RunE:  runDevicesList,
}

var devicesAddCmd = &cobra.Command{
	Use:   "add <name> <address>",
	Short: "Register a receiver under a name",
	Example: `  musiccast devices add livingroom 192.168.1.50
  musiccast devices add kitchen 192.168.1.51 --port 8080 --probe`,
	Args: cobra.ExactArgs(2),
	RunE: runDevicesAdd,
}

var devicesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a registered receiver",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateRegistry(cmd, func(r *config.Registry) error {
			return r.RemoveDevice(args[0])
		}, "Removed "+args[0])
	},
}

var devicesDefaultCmd = &cobra.Command{
	Use:   "default <name>",
	Short: "Set the default receiver",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateRegistry(cmd, func(r *config.Registry) error {
			return r.SetDefault(args[0])
		}, "Default receiver is now "+args[0])
	},
}

func init() {
	devicesAddCmd.Flags().BoolVar(&addProbe, "probe", false, "Connect to the receiver and store its model name")

	devicesCmd.AddCommand(devicesListCmd)
	devicesCmd.AddCommand(devicesAddCmd)
	devicesCmd.AddCommand(devicesRemoveCmd)
	devicesCmd.AddCommand(devicesDefaultCmd)

	rootCmd.AddCommand(devicesCmd)
}

// updateRegistry loads the registry, applies fn and saves it
func updateRegistry(cmd *cobra.Command, fn func(*config.Registry) error, done string) error {
	registry, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := fn(registry); err != nil {
		return err
	}
	if err := registry.Save(configPath); err != nil {
		return err
	}

	if outputFormat == formatDetailed {
		printer(cmd).PrintSuccess(done)
	} else {
		printer(cmd).Println(done)
	}
	return nil
}

func runDevicesAdd(cmd *cobra.Command, args []string) error {
	name, address := args[0], args[1]

	// Only store a port that was asked for
	port := 0
	if cmd.Flags().Changed("port") {
		port = devicePort
	}

	var model string
	if addProbe {
		device, err := yxc.NewDevice(cmd.Context(), address, deviceOptions(cmd, nil, devicePort)...)
		if err != nil {
			return err
		}
		model = device.Model
	}

	return updateRegistry(cmd, func(r *config.Registry) error {
		if err := r.AddDevice(name, address, port); err != nil {
			return err
		}
		if model != "" {
			r.UpdateDeviceSeen(name, model)
		}
		return nil
	}, fmt.Sprintf("Registered %s (%s)", name, address))
}

func runDevicesList(cmd *cobra.Command, args []string) error {
	registry, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if outputFormat == formatJSON {
		return printer(cmd).PrintJSON(registry.Devices)
	}

	names := registry.DeviceNames()
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No receivers registered.")
		fmt.Fprintln(cmd.OutOrStdout(), "Use 'musiccast devices add <name> <address>' to register one.")
		return nil
	}

	if outputFormat == formatDetailed {
		printer(cmd).PrintHeader("Receivers", cmd.CommandPath(),
			ui.Param{Key: "Config", Value: configLocation()})
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tADDRESS\tPORT\tMODEL\tLAST SEEN")
	for _, name := range names {
		d := registry.GetDevice(name)

		marker := " "
		if name == registry.DefaultDevice {
			marker = "*"
		}
		port := d.Port
		if port == 0 {
			port = yxc.DefaultPort
		}
		model := d.Model
		if model == "" {
			model = "-"
		}
		seen := "never"
		if !d.LastSeen.IsZero() {
			seen = d.LastSeen.Local().Format(time.DateTime)
		}

		fmt.Fprintf(w, "%s %s\t%s\t%d\t%s\t%s\n", marker, name, d.Address, port, model, seen)
	}
	return w.Flush()
}

func configLocation() string {
	if configPath != "" {
		return configPath
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return "unknown"
	}
	return path
}
