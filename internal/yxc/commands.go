package yxc

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Power values accepted by setPower
const (
	PowerOn      = "on"
	PowerStandby = "standby"
	PowerToggle  = "toggle"
)

// Volume actions accepted by setVolume besides a numeric level
const (
	VolumeUp   = "up"
	VolumeDown = "down"
)

// Playback actions accepted by setPlayback
const (
	PlaybackPlay     = "play"
	PlaybackStop     = "stop"
	PlaybackNext     = "next"
	PlaybackPrevious = "previous"
)

// Input names used by the convenience input setters
const (
	InputSpotify   = "spotify"
	InputNapster   = "napster"
	InputNetRadio  = "net_radio"
	InputBluetooth = "bluetooth"
)

func query(key, value string) url.Values {
	return url.Values{key: []string{value}}
}

// GetDeviceInfo returns model name, device id and firmware versions
func (d *Device) GetDeviceInfo(ctx context.Context) (Response, error) {
	return d.get(ctx, d.endpoints.System+"/getDeviceInfo", nil)
}

// GetFeatures returns the feature set (zones, inputs, ranges) of the receiver
func (d *Device) GetFeatures(ctx context.Context) (Response, error) {
	return d.get(ctx, d.endpoints.System+"/getFeatures", nil)
}

// GetNetworkStatus returns network status
func (d *Device) GetNetworkStatus(ctx context.Context) (Response, error) {
	return d.get(ctx, d.endpoints.System+"/getNetworkStatus", nil)
}

// GetFuncStatus returns function status such as auto power standby
func (d *Device) GetFuncStatus(ctx context.Context) (Response, error) {
	return d.get(ctx, d.endpoints.System+"/getFuncStatus", nil)
}

// GetLocationInfo returns location info and zone list
func (d *Device) GetLocationInfo(ctx context.Context) (Response, error) {
	return d.get(ctx, d.endpoints.System+"/getLocationInfo", nil)
}

// GetStatus returns zone status
func (d *Device) GetStatus(ctx context.Context) (Response, error) {
	return d.get(ctx, d.endpoints.System+"/getStatus", nil)
}

// GetSoundProgramList returns the available sound programs
func (d *Device) GetSoundProgramList(ctx context.Context) (Response, error) {
	return d.get(ctx, d.endpoints.System+"/getSoundProgramList", nil)
}

// GetPlayInfo returns what the network/USB source is currently playing
func (d *Device) GetPlayInfo(ctx context.Context) (Response, error) {
	return d.get(ctx, d.endpoints.NetUSB+"/getPlayInfo", nil)
}

// GetNetUSBPresetInfo returns the network/USB preset list
func (d *Device) GetNetUSBPresetInfo(ctx context.Context) (Response, error) {
	return d.get(ctx, d.endpoints.NetUSB+"/getPresetInfo", nil)
}

// GetTunerPlayInfo returns the current tuner band and station
func (d *Device) GetTunerPlayInfo(ctx context.Context) (Response, error) {
	return d.get(ctx, d.endpoints.Tuner+"/getPlayInfo", nil)
}

// GetTunerPresetInfo returns tuner presets for band ("common", "am", "fm", "dab")
func (d *Device) GetTunerPresetInfo(ctx context.Context, band string) (Response, error) {
	return d.get(ctx, d.endpoints.Tuner+"/getPresetInfo", query("band", band))
}

// SetAutoPowerStandby enables or disables auto power standby
func (d *Device) SetAutoPowerStandby(ctx context.Context, enable bool) (Response, error) {
	return d.get(ctx, d.endpoints.Main+"/setAutoPowerStan", query("enable", strconv.FormatBool(enable)))
}

func (d *Device) setPower(ctx context.Context, power string) (Response, error) {
	return d.get(ctx, d.endpoints.Main+"/setPower", query("power", power))
}

// PowerOn powers the zone on
func (d *Device) PowerOn(ctx context.Context) (Response, error) {
	return d.setPower(ctx, PowerOn)
}

// Standby puts the zone in standby
func (d *Device) Standby(ctx context.Context) (Response, error) {
	return d.setPower(ctx, PowerStandby)
}

// PowerToggle toggles between on and standby
func (d *Device) PowerToggle(ctx context.Context) (Response, error) {
	return d.setPower(ctx, PowerToggle)
}

// SetInput selects the input source by name. The name is sent under the
// query key "power".
func (d *Device) SetInput(ctx context.Context, input string) (Response, error) {
	return d.get(ctx, d.endpoints.Main+"/setInput", query("power", input))
}

// SetSpotify selects Spotify
func (d *Device) SetSpotify(ctx context.Context) (Response, error) {
	return d.SetInput(ctx, InputSpotify)
}

// SetNapster selects Napster
func (d *Device) SetNapster(ctx context.Context) (Response, error) {
	return d.SetInput(ctx, InputNapster)
}

// SetNetRadio selects net radio
func (d *Device) SetNetRadio(ctx context.Context) (Response, error) {
	return d.SetInput(ctx, InputNetRadio)
}

// SetBluetooth selects Bluetooth
func (d *Device) SetBluetooth(ctx context.Context) (Response, error) {
	return d.SetInput(ctx, InputBluetooth)
}

// SetVolumeAction sends a raw volume value: "up", "down" or a level
func (d *Device) SetVolumeAction(ctx context.Context, action string) (Response, error) {
	return d.get(ctx, d.endpoints.Main+"/setVolume", query("volume", action))
}

// IncreaseVolume steps the volume up
func (d *Device) IncreaseVolume(ctx context.Context) (Response, error) {
	return d.SetVolumeAction(ctx, VolumeUp)
}

// DecreaseVolume steps the volume down
func (d *Device) DecreaseVolume(ctx context.Context) (Response, error) {
	return d.SetVolumeAction(ctx, VolumeDown)
}

// SetVolume sets an absolute volume level. Negative levels are rejected
// without a request; the upper bound is the zone's max_volume and is left
// to the receiver.
func (d *Device) SetVolume(ctx context.Context, level int) (Response, error) {
	if level < 0 {
		return nil, NewValidationError(fmt.Sprintf("invalid volume level %d: must be >= 0", level))
	}
	return d.SetVolumeAction(ctx, strconv.Itoa(level))
}

func (d *Device) setMute(ctx context.Context, enable bool) (Response, error) {
	return d.get(ctx, d.endpoints.Main+"/setMute", query("enable", strconv.FormatBool(enable)))
}

// Mute mutes the zone
func (d *Device) Mute(ctx context.Context) (Response, error) {
	return d.setMute(ctx, true)
}

// Unmute unmutes the zone
func (d *Device) Unmute(ctx context.Context) (Response, error) {
	return d.setMute(ctx, false)
}

// SetPlayback sends a playback action: "play", "stop", "next" or "previous"
func (d *Device) SetPlayback(ctx context.Context, action string) (Response, error) {
	return d.get(ctx, d.endpoints.NetUSB+"/setPlayback", query("playback", action))
}

// Stop stops playback
func (d *Device) Stop(ctx context.Context) (Response, error) {
	return d.SetPlayback(ctx, PlaybackStop)
}

// Play starts or resumes playback
func (d *Device) Play(ctx context.Context) (Response, error) {
	return d.SetPlayback(ctx, PlaybackPlay)
}

// Next skips to the next track
func (d *Device) Next(ctx context.Context) (Response, error) {
	return d.SetPlayback(ctx, PlaybackNext)
}

// Previous returns to the previous track
func (d *Device) Previous(ctx context.Context) (Response, error) {
	return d.SetPlayback(ctx, PlaybackPrevious)
}
