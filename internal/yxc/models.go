package yxc

import "fmt"

// Extended-control response codes
const (
	ResponseCodeSuccess          = 0
	ResponseCodeInitializing     = 1
	ResponseCodeInternalError    = 2
	ResponseCodeInvalidRequest   = 3
	ResponseCodeInvalidParameter = 4
	ResponseCodeGuarded          = 5
	ResponseCodeTimeOut          = 6
	ResponseCodeFirmwareUpdating = 99
)

var responseCodeText = map[int]string{
	ResponseCodeSuccess:          "Successful request",
	ResponseCodeInitializing:     "Initializing",
	ResponseCodeInternalError:    "Internal error",
	ResponseCodeInvalidRequest:   "Invalid request (method does not exist or is not supported)",
	ResponseCodeInvalidParameter: "Invalid parameter (out of range, invalid characters)",
	ResponseCodeGuarded:          "Guarded (unable to set in the current status)",
	ResponseCodeTimeOut:          "Time out",
	ResponseCodeFirmwareUpdating: "Firmware updating",
	100:                          "Access error (streaming service)",
	101:                          "Other errors (streaming service)",
	102:                          "Wrong user name",
	103:                          "Wrong password",
	104:                          "Account expired",
	105:                          "Account disconnected / gone off / shut down",
	106:                          "Account number reached the limit",
	107:                          "Server maintenance",
	108:                          "Invalid account",
	109:                          "License error",
	110:                          "Read only mode",
	111:                          "Max stations",
	112:                          "Access denied",
	113:                          "Need to specify the additional destination playlist",
	114:                          "Need to create a new playlist",
	115:                          "Simultaneous logins reached the limit",
}

// ResponseCodeText describes a response_code value
func ResponseCodeText(code int) string {
	if text, ok := responseCodeText[code]; ok {
		return text
	}
	if code < 0 {
		return "No response code"
	}
	return fmt.Sprintf("Unknown response code %d", code)
}

// DeviceInfo is the typed view of getDeviceInfo
type DeviceInfo struct {
	ResponseCode  int     `json:"response_code"`
	ModelName     string  `json:"model_name"`
	Destination   string  `json:"destination"`
	DeviceID      string  `json:"device_id"`
	SystemID      string  `json:"system_id"`
	SystemVersion float64 `json:"system_version"`
	APIVersion    float64 `json:"api_version"`
	NetmoduleVer  string  `json:"netmodule_version"`
}

// PlayInfo is the typed view of netusb getPlayInfo
type PlayInfo struct {
	ResponseCode int    `json:"response_code"`
	Input        string `json:"input"`
	Playback     string `json:"playback"`
	Repeat       string `json:"repeat"`
	Shuffle      string `json:"shuffle"`
	PlayTime     int    `json:"play_time"`
	TotalTime    int    `json:"total_time"`
	Artist       string `json:"artist"`
	Album        string `json:"album"`
	Track        string `json:"track"`
	AlbumArtURL  string `json:"albumart_url"`
}

// ZoneStatus is the typed view of getStatus
type ZoneStatus struct {
	ResponseCode int    `json:"response_code"`
	Power        string `json:"power"`
	Sleep        int    `json:"sleep"`
	Volume       int    `json:"volume"`
	Mute         bool   `json:"mute"`
	MaxVolume    int    `json:"max_volume"`
	Input        string `json:"input"`
	SoundProgram string `json:"sound_program"`
}

// ParseDeviceInfo decodes r into a DeviceInfo
func ParseDeviceInfo(r Response) (*DeviceInfo, error) {
	var info DeviceInfo
	if err := r.Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ParsePlayInfo decodes r into a PlayInfo
func ParsePlayInfo(r Response) (*PlayInfo, error) {
	var info PlayInfo
	if err := r.Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ParseZoneStatus decodes r into a ZoneStatus
func ParseZoneStatus(r Response) (*ZoneStatus, error) {
	var status ZoneStatus
	if err := r.Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}
