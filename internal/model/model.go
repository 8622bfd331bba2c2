package model

import (
	"tomgalvin.uk/hp82240/internal/paper"
	"tomgalvin.uk/hp82240/internal/printer"
)

type PrintResponse struct {
	// GrewTo is the raster row the printed content now reaches.
	GrewTo int `json:"grewTo"`
	Lines  int `json:"lines"`
}

type PaperResponse struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Zoom     int    `json:"zoom"`
	Lines    int    `json:"lines"`
	Bytes    int    `json:"bytes"`
	CodePage string `json:"codePage"`
	Session  string `json:"session,omitempty"`
}

func FromSession(s *paper.Session) PaperResponse {
	surface := s.Surface()
	return PaperResponse{
		Width:    surface.Width(),
		Height:   surface.Height(),
		Zoom:     surface.Zoom(),
		Lines:    surface.LineCount(),
		Bytes:    len(s.Log()),
		CodePage: s.State().CodePage.String(),
	}
}

type DeviceInfoResponse struct {
	FirmwareVersion string `json:"firmwareVersion"`
	State           string `json:"state"`
	BatteryLevel    int    `json:"batteryLevel"`
}

func FromDeviceInfo(i printer.DeviceInfo) DeviceInfoResponse {
	return DeviceInfoResponse{
		FirmwareVersion: i.FirmwareVersion,
		BatteryLevel:    i.BatteryLevel,
		State:           i.State.String(),
	}
}
