package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/musiccast/internal/driver"
	"github.com/muurk/musiccast/internal/remote"
	"github.com/muurk/musiccast/internal/yxc"
)

// queryCommand describes a read-only endpoint exposed as a subcommand
type queryCommand struct {
	use   string
	short string
	title string
	fetch func(d *yxc.Device, ctx context.Context) (yxc.Response, error)
	view  func(r yxc.Response) (formatter, error)
}

func deviceInfoView(r yxc.Response) (formatter, error) { return yxc.ParseDeviceInfo(r) }
func zoneStatusView(r yxc.Response) (formatter, error) { return yxc.ParseZoneStatus(r) }
func playInfoView(r yxc.Response) (formatter, error)   { return yxc.ParsePlayInfo(r) }

var queryCommands = []queryCommand{
	{"info", "Show device information (model, firmware, API version)", "Device Information", (*yxc.Device).GetDeviceInfo, deviceInfoView},
	{"features", "Show the receiver's feature list", "Features", (*yxc.Device).GetFeatures, nil},
	{"network", "Show network status", "Network Status", (*yxc.Device).GetNetworkStatus, nil},
	{"func-status", "Show system function settings", "Function Status", (*yxc.Device).GetFuncStatus, nil},
	{"location", "Show location and zone names", "Location", (*yxc.Device).GetLocationInfo, nil},
	{"status", "Show zone status (power, input, volume, mute)", "Zone Status", (*yxc.Device).GetStatus, zoneStatusView},
	{"sound-programs", "List available sound programs", "Sound Programs", (*yxc.Device).GetSoundProgramList, nil},
	{"now-playing", "Show the current network/USB track", "Now Playing", (*yxc.Device).GetPlayInfo, playInfoView},
	{"presets", "List network/USB presets", "Presets", (*yxc.Device).GetNetUSBPresetInfo, nil},
}

func (q queryCommand) command() *cobra.Command {
	return &cobra.Command{
		Use:   q.use,
		Short: q.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, q.title, q.fetch, q.view)
		},
	}
}

func runQuery(cmd *cobra.Command, title string, fetch func(*yxc.Device, context.Context) (yxc.Response, error), view func(yxc.Response) (formatter, error)) error {
	conn, err := connect(cmd)
	if err != nil {
		return err
	}

	resp, err := fetch(conn.device, cmd.Context())
	if err != nil {
		return fmt.Errorf("%s: %w", strings.ToLower(title), err)
	}

	var f formatter
	if view != nil && !resp.IsEmpty() {
		if f, err = view(resp); err != nil {
			return fmt.Errorf("%s: %w", strings.ToLower(title), err)
		}
	}

	return showQuery(cmd, conn.device, title, resp, f)
}

// runAction connects and runs a single control command
func runAction(cmd *cobra.Command, title string, fn func(d *yxc.Device, ctx context.Context) (yxc.Response, error)) error {
	conn, err := connect(cmd)
	if err != nil {
		return err
	}

	resp, err := fn(conn.device, cmd.Context())
	if err != nil {
		return fmt.Errorf("%s: %w", strings.ToLower(title), err)
	}

	return showResult(cmd, conn.device, title, resp)
}

func init() {
	for _, q := range queryCommands {
		rootCmd.AddCommand(q.command())
	}

	tunerCmd.AddCommand(tunerPlayInfoCmd)
	tunerCmd.AddCommand(tunerPresetsCmd)

	rootCmd.AddCommand(powerCmd)
	rootCmd.AddCommand(autoStandbyCmd)
	rootCmd.AddCommand(inputCmd)
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(muteCmd)
	rootCmd.AddCommand(unmuteCmd)
	rootCmd.AddCommand(playbackCmd)
	rootCmd.AddCommand(tunerCmd)
	rootCmd.AddCommand(tourCmd)
	rootCmd.AddCommand(remoteCmd)
}

// choice returns arg if it is one of valid
func choice(name, arg string, valid ...string) (string, error) {
	arg = strings.ToLower(strings.TrimSpace(arg))
	for _, v := range valid {
		if arg == v {
			return arg, nil
		}
	}
	return "", fmt.Errorf("invalid %s %q (expected %s)", name, arg, strings.Join(valid, ", "))
}

var powerCmd = &cobra.Command{
	Use:       "power <on|standby|toggle>",
	Short:     "Switch the zone on, to standby, or toggle",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{yxc.PowerOn, yxc.PowerStandby, yxc.PowerToggle},
	Example: `  musiccast power on --device 192.168.1.50
  musiccast power toggle --device livingroom`,
	RunE: func(cmd *cobra.Command, args []string) error {
		power, err := choice("power state", args[0], yxc.PowerOn, yxc.PowerStandby, yxc.PowerToggle)
		if err != nil {
			return err
		}
		return runAction(cmd, "Power "+power, func(d *yxc.Device, ctx context.Context) (yxc.Response, error) {
			switch power {
			case yxc.PowerOn:
				return d.PowerOn(ctx)
			case yxc.PowerStandby:
				return d.Standby(ctx)
			default:
				return d.PowerToggle(ctx)
			}
		})
	},
}

var autoStandbyCmd = &cobra.Command{
	Use:       "auto-standby <on|off>",
	Short:     "Enable or disable automatic standby",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := choice("auto-standby state", args[0], "on", "off")
		if err != nil {
			return err
		}
		return runAction(cmd, "Auto standby "+state, func(d *yxc.Device, ctx context.Context) (yxc.Response, error) {
			return d.SetAutoPowerStandby(ctx, state == "on")
		})
	},
}

var inputCmd = &cobra.Command{
	Use:   "input <name>",
	Short: "Select an input source",
	Long: `Select the zone's input source.

Common inputs are spotify, napster, net_radio and bluetooth. Any name the
receiver lists under getFeatures is accepted and passed through unchanged.`,
	Example: `  musiccast input bluetooth
  musiccast input net_radio --device livingroom`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.TrimSpace(args[0])
		if input == "" {
			return fmt.Errorf("input name must not be empty")
		}
		return runAction(cmd, "Input "+input, func(d *yxc.Device, ctx context.Context) (yxc.Response, error) {
			return d.SetInput(ctx, input)
		})
	},
}

// parseVolume accepts "up", "down" or a non-negative level
func parseVolume(arg string) (action string, level int, err error) {
	arg = strings.ToLower(strings.TrimSpace(arg))
	if arg == yxc.VolumeUp || arg == yxc.VolumeDown {
		return arg, 0, nil
	}
	level, err = strconv.Atoi(arg)
	if err != nil || level < 0 {
		return "", 0, fmt.Errorf("invalid volume %q (expected up, down or a level >= 0)", arg)
	}
	return "", level, nil
}

var volumeCmd = &cobra.Command{
	Use:   "volume <up|down|level>",
	Short: "Step the volume or set an absolute level",
	Example: `  musiccast volume up
  musiccast volume 40`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		action, level, err := parseVolume(args[0])
		if err != nil {
			return err
		}
		if action != "" {
			return runAction(cmd, "Volume "+action, func(d *yxc.Device, ctx context.Context) (yxc.Response, error) {
				return d.SetVolumeAction(ctx, action)
			})
		}
		return runAction(cmd, fmt.Sprintf("Volume %d", level), func(d *yxc.Device, ctx context.Context) (yxc.Response, error) {
			return d.SetVolume(ctx, level)
		})
	},
}

var muteCmd = &cobra.Command{
	Use:   "mute",
	Short: "Mute the zone",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, "Mute", (*yxc.Device).Mute)
	},
}

var unmuteCmd = &cobra.Command{
	Use:   "unmute",
	Short: "Unmute the zone",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, "Unmute", (*yxc.Device).Unmute)
	},
}

var playbackCmd = &cobra.Command{
	Use:       "playback <play|stop|next|previous>",
	Short:     "Control network/USB playback",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{yxc.PlaybackPlay, yxc.PlaybackStop, yxc.PlaybackNext, yxc.PlaybackPrevious},
	RunE: func(cmd *cobra.Command, args []string) error {
		action, err := choice("playback action", args[0], yxc.PlaybackPlay, yxc.PlaybackStop, yxc.PlaybackNext, yxc.PlaybackPrevious)
		if err != nil {
			return err
		}
		return runAction(cmd, "Playback "+action, func(d *yxc.Device, ctx context.Context) (yxc.Response, error) {
			return d.SetPlayback(ctx, action)
		})
	},
}

var tunerBand string

var tunerCmd = &cobra.Command{
	Use:   "tuner",
	Short: "Query the radio tuner",
}

var tunerPlayInfoCmd = &cobra.Command{
	Use:   "play-info",
	Short: "Show the tuner's current station",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(cmd, "Tuner", (*yxc.Device).GetTunerPlayInfo, nil)
	},
}

var tunerPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List tuner presets for a band",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		band, err := choice("band", tunerBand, "common", "am", "fm", "dab")
		if err != nil {
			return err
		}
		return runQuery(cmd, "Tuner Presets ("+band+")", func(d *yxc.Device, ctx context.Context) (yxc.Response, error) {
			return d.GetTunerPresetInfo(ctx, band)
		}, nil)
	},
}

func init() {
	tunerPresetsCmd.Flags().StringVar(&tunerBand, "band", "common", "Preset band (common, am, fm, dab)")
}

var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Run the playback tour (stop, play, next, previous)",
	Long: `Exercise network playback on the receiver.

Prints the model name, stops playback, resumes it, skips to the next track
and reports it, then goes back to the previous track and reports again,
pausing between steps so each change is audible.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := connect(cmd)
		if err != nil {
			return err
		}
		return driver.Run(cmd.Context(), conn.device, conn.device.Model, cmd.OutOrStdout(), driver.Sleep)
	},
}

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Launch the interactive remote",
	Args:  cobra.NoArgs,
	RunE:  runRemote,
}

func runRemote(cmd *cobra.Command, args []string) error {
	conn, err := connect(cmd)
	if err != nil {
		return err
	}
	if err := remote.Run(cmd.Context(), conn.device, conn.device.String()); err != nil {
		return fmt.Errorf("remote error: %w", err)
	}
	return nil
}
