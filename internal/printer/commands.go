// Package printer sends hardcopies of the emulated paper to a Phomemo
// T02/M02/T02S thermal printer over bluetooth. This file implements the
// Epson ESC/POS command byte sequences those printers accept.
package printer

import (
	"fmt"

	"tomgalvin.uk/hp82240/internal/bitmap"
)

// Control characters
const (
	Esc = 0x1B
	GS  = 0x1D
	US  = 0x1F
)

// Image alignment of a printed bitmap
type Justify byte

const (
	Left   Justify = 0x00
	Centre Justify = 0x01
	Right  Justify = 0x02
)

// Laser intensity of a printed bitmap
type LaserIntensity byte

const (
	Low    LaserIntensity = 0x01
	Medium LaserIntensity = 0x03
	High   LaserIntensity = 0x04
)

const (
	// widest bitmap the printer accepts, in bytes of 8 dots
	maxStride = 0x30
	// tallest bitmap the printer accepts in one command
	maxBitmapHeight = 256
)

// Initialises the printer & prepares it to accept commands
func initPrinter() []byte {
	return []byte{Esc, 0x40}
}

// Note: only centre alignment seems to work on T02 printers
func setJustify(justify Justify) []byte {
	return []byte{Esc, 0x61, byte(justify)}
}

func setLaserIntensity(intensity LaserIntensity) []byte {
	return []byte{US, 0x11, 0x02, byte(intensity)}
}

// Prepares the printer to print bitmap data. widthBytes is the width of the
// bitmap in bytes with 8 pixels packed into each, heightBits is its height in
// rows. (widthBytes * heightBits) bytes of data must follow.
func printBitmapHeader(widthBytes byte, heightBits uint16) []byte {
	return []byte{
		GS, 0x76, 0x30, 0x00,
		widthBytes, 0x00,
		byte(heightBits & 0xFF), byte(heightBits >> 8),
	}
}

func feedLines(n byte) []byte {
	return []byte{Esc, 0x64, n}
}

func queryBatteryStatus() []byte {
	return []byte{US, 0x11, 0x08}
}

func queryPaperStatus() []byte {
	return []byte{US, 0x11, 0x11}
}

func queryFirmwareVersion() []byte {
	return []byte{US, 0x11, 0x07}
}

func statusCommands() [][]byte {
	return [][]byte{
		initPrinter(),
		queryBatteryStatus(),
		queryPaperStatus(),
		queryFirmwareVersion(),
	}
}

// printCommands returns everything written to the printer to print b, with the
// bitmap split into several if it is taller than the printer accepts at once.
func printCommands(b bitmap.Bitmap, intensity LaserIntensity) ([][]byte, error) {
	pb := bitmap.PackBitmap(b)
	if pb.Stride() > maxStride {
		return nil, fmt.Errorf("Bitmap too wide for printer: %s", pb)
	}
	strideU8 := byte(pb.Stride())

	commands := [][]byte{
		initPrinter(),
		setJustify(Centre),
		setLaserIntensity(intensity),
	}
	for start := 0; start < pb.Height(); start += maxBitmapHeight {
		height := min(maxBitmapHeight, pb.Height()-start)
		chunk := pb.Chunk(start, height)
		commands = append(commands,
			printBitmapHeader(strideU8, uint16(chunk.Height())),
			chunk.Data(),
		)
	}
	return append(commands, feedLines(4)), nil
}
