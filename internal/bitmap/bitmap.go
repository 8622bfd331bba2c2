// Package bitmap defines a minimal monochrome bitmap: a width, a height, and a
// bit at each (x, y) coordinate, where 1 is ink and 0 is paper.
//
// PixelBitmap stores one byte per pixel and is mostly useful in tests.
// PackedBitmap is the row-major, 8 pixels per byte layout thermal printers
// consume over the wire. ImageBitmap wraps a two-colour paletted image, which
// is how the emulated paper is stored.
package bitmap

import (
	"fmt"
)

type Bitmap interface {
	Width() int
	Height() int
	GetBit(x int, y int) byte
}

type PixelBitmap struct {
	pixels        [][]byte
	width, height int
}

func NewPixelBitmap(pixels [][]byte) *PixelBitmap {
	width := 0
	if len(pixels) > 0 {
		width = len(pixels[0])
	}
	return &PixelBitmap{pixels: pixels, width: width, height: len(pixels)}
}

func (b *PixelBitmap) Width() int {
	return b.width
}

func (b *PixelBitmap) Height() int {
	return b.height
}

func (b *PixelBitmap) GetBit(x int, y int) byte {
	return b.pixels[y][x]
}

func (b *PixelBitmap) String() string {
	return fmt.Sprintf("PixelBitmap(%d,%d)", b.width, b.height)
}

// Ink counts the set bits of any bitmap.
func Ink(b Bitmap) int {
	n := 0
	for y := range b.Height() {
		for x := range b.Width() {
			n += int(b.GetBit(x, y) & 1)
		}
	}
	return n
}
