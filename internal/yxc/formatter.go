package yxc

import (
	"fmt"
	"sort"
	"strings"
)

// Summary returns a one-line summary of the device info
func (di *DeviceInfo) Summary() string {
	return fmt.Sprintf("%s (id: %s, fw: %.2f, api: %.2f)", di.ModelName, di.DeviceID, di.SystemVersion, di.APIVersion)
}

// FormatDetailed returns the device info as an aligned block
func (di *DeviceInfo) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Device Information ===\n")
	b.WriteString(fmt.Sprintf("Model:          %s\n", di.ModelName))
	b.WriteString(fmt.Sprintf("Device ID:      %s\n", di.DeviceID))
	b.WriteString(fmt.Sprintf("System ID:      %s\n", di.SystemID))
	b.WriteString(fmt.Sprintf("Destination:    %s\n", di.Destination))
	b.WriteString(fmt.Sprintf("Firmware:       %.2f\n", di.SystemVersion))
	b.WriteString(fmt.Sprintf("API Version:    %.2f\n", di.APIVersion))
	if di.NetmoduleVer != "" {
		b.WriteString(fmt.Sprintf("Net Module:     %s\n", di.NetmoduleVer))
	}

	return b.String()
}

// FormatCompact returns the device info on one line
func (di *DeviceInfo) FormatCompact() string {
	return di.Summary()
}

// NowPlaying returns "Artist - Track" with whichever parts are known
func (pi *PlayInfo) NowPlaying() string {
	switch {
	case pi.Artist != "" && pi.Track != "":
		return pi.Artist + " - " + pi.Track
	case pi.Track != "":
		return pi.Track
	case pi.Artist != "":
		return pi.Artist
	default:
		return "(nothing playing)"
	}
}

// FormatDetailed returns the play info as an aligned block
func (pi *PlayInfo) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Now Playing ===\n")
	b.WriteString(fmt.Sprintf("Input:    %s\n", pi.Input))
	b.WriteString(fmt.Sprintf("Playback: %s\n", pi.Playback))
	b.WriteString(fmt.Sprintf("Track:    %s\n", pi.Track))
	b.WriteString(fmt.Sprintf("Artist:   %s\n", pi.Artist))
	b.WriteString(fmt.Sprintf("Album:    %s\n", pi.Album))
	b.WriteString(fmt.Sprintf("Position: %s / %s\n", FormatSeconds(pi.PlayTime), FormatSeconds(pi.TotalTime)))

	return b.String()
}

// FormatCompact returns the play info on one line
func (pi *PlayInfo) FormatCompact() string {
	return fmt.Sprintf("[%s] %s (%s/%s)", pi.Playback, pi.NowPlaying(), FormatSeconds(pi.PlayTime), FormatSeconds(pi.TotalTime))
}

// FormatDetailed returns the zone status as an aligned block
func (zs *ZoneStatus) FormatDetailed() string {
	var b strings.Builder

	mute := "off"
	if zs.Mute {
		mute = "on"
	}

	b.WriteString("=== Zone Status ===\n")
	b.WriteString(fmt.Sprintf("Power:         %s\n", zs.Power))
	b.WriteString(fmt.Sprintf("Input:         %s\n", zs.Input))
	b.WriteString(fmt.Sprintf("Volume:        %d / %d\n", zs.Volume, zs.MaxVolume))
	b.WriteString(fmt.Sprintf("Mute:          %s\n", mute))
	if zs.SoundProgram != "" {
		b.WriteString(fmt.Sprintf("Sound Program: %s\n", zs.SoundProgram))
	}
	if zs.Sleep > 0 {
		b.WriteString(fmt.Sprintf("Sleep Timer:   %d min\n", zs.Sleep))
	}

	return b.String()
}

// FormatCompact returns the zone status on one line
func (zs *ZoneStatus) FormatCompact() string {
	mute := ""
	if zs.Mute {
		mute = " muted"
	}
	return fmt.Sprintf("%s %s vol %d/%d%s", zs.Power, zs.Input, zs.Volume, zs.MaxVolume, mute)
}

// FormatSeconds renders a duration in seconds as m:ss
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatResponse renders any response as sorted key: value lines.
// Used for endpoints without a typed view.
func FormatResponse(r Response) string {
	if r.IsEmpty() {
		return "(no data: the receiver did not answer with HTTP 200)\n"
	}

	keys := make([]string, 0, len(r))
	width := 0
	for k := range r {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("%-*s  %v\n", width+1, k+":", r[k]))
	}
	return b.String()
}
