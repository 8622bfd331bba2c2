package printer

import "fmt"

type State int

const (
	Disconnected State = iota
	Connecting
	Ready
	Busy
	OutOfPaper
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "Disconnected"
	case Connecting:
		return "Connecting"
	case Ready:
		return "Ready"
	case Busy:
		return "Busy"
	case OutOfPaper:
		return "OutOfPaper"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type DeviceInfo struct {
	FirmwareVersion string
	State           State
	// BatteryLevel is a percentage, or -1 before the printer has reported it
	BatteryLevel int
}

// DeviceWriter is the raw byte channel to a printer.
type DeviceWriter interface {
	Write(data []byte) error
}
