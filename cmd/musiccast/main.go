// Musiccast is a command-line remote for Yamaha MusicCast receivers.
//
// It talks to a receiver's YamahaExtendedControl HTTP API: querying device
// and zone status, switching power and input, changing volume and driving
// network playback. Receivers can be addressed by IPv4 address or by a name
// stored in the configuration file.
//
// Usage:
//
//	musiccast [command] [flags]
//
// Running without arguments in a terminal launches the interactive remote.
// See 'musiccast --help' for available commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/muurk/musiccast/internal/logging"
	"github.com/muurk/musiccast/internal/ui"
	"github.com/muurk/musiccast/internal/version"
	"github.com/muurk/musiccast/internal/yxc"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()

	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "musiccast",
	Short: "Yamaha MusicCast receiver remote",
	Long: `A command-line remote for Yamaha MusicCast receivers.

Talks to the receiver's YamahaExtendedControl HTTP API to query status,
switch power and inputs, change volume and control network playback.

If no command is specified and stdout is a terminal, the interactive
remote launches automatically.`,
	Version:       version.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.InitializeFromEnv(); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		return validateFormat()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the remote when attached to a terminal
		if !ui.IsTerminal() {
			return cmd.Help()
		}
		return runRemote(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "musiccast %s\n", version.Full())
	},
}

// printError reports err on stderr, with a troubleshooting box for
// receiver errors
func printError(err error) {
	var devErr *yxc.DeviceError
	if !errors.As(err, &devErr) || outputFormat == formatJSON {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	p := ui.NewPrinter(os.Stderr)
	p.PrintError(yxc.GetShortErrorMessage(err), err, yxc.GetTroubleshootingHint(err))
}
