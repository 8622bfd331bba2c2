// Package graphics turns ordinary images into HP82240B graphics data, so that
// a picture can be sent through the same byte stream a calculator would print.
package graphics

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/makeworld-the-better-one/dither/v2"
	"golang.org/x/image/draw"

	"tomgalvin.uk/hp82240/internal/bitmap"
	"tomgalvin.uk/hp82240/internal/font"
	"tomgalvin.uk/hp82240/internal/protocol"
)

type Options struct {
	// Width is the widest the image may be printed, in dots. Larger images
	// are scaled down; smaller ones are left alone.
	Width int
	// Gamma is applied to the grey level before dithering. Values below 1
	// lighten the image.
	Gamma float64
}

func DefaultOptions() Options {
	return Options{
		Width: protocol.GraphicsMax,
		Gamma: 0.5,
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Width > protocol.GraphicsMax {
		return fmt.Errorf("Width must be between 1 and %d dots, got %d", protocol.GraphicsMax, o.Width)
	}
	if o.Gamma <= 0 {
		return fmt.Errorf("Gamma must be positive, got %v", o.Gamma)
	}
	return nil
}

// Render scales, grey-levels and dithers an image down to two colours, ready to
// be cut into graphics columns.
func Render(i image.Image, o Options) (*image.Paletted, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	b := i.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("Image has no pixels")
	}

	newWidth := min(b.Dx(), o.Width)
	newHeight := max(1, b.Dy()*newWidth/b.Dx())
	scaledBounds := image.Rect(0, 0, newWidth, newHeight)
	scaled := image.NewRGBA(scaledBounds)
	// transparent areas print as paper
	draw.Draw(scaled, scaledBounds, image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(scaled, scaledBounds, i, b, draw.Over, nil)

	gray := image.NewGray16(scaledBounds)
	for y := range newHeight {
		for x := range newWidth {
			g := color.Gray16Model.Convert(scaled.At(x, y)).(color.Gray16)
			v := math.Pow(float64(g.Y)/0xFFFF, o.Gamma)
			gray.SetGray16(x, y, color.Gray16{Y: uint16(v * 0xFFFF)})
		}
	}

	d := dither.NewDitherer([]color.Color{color.Black, color.White})
	d.Matrix = dither.FloydSteinberg
	d.Serpentine = true
	return d.DitherPaletted(gray), nil
}

// Encode renders an image and returns the printer bytes that draw it: one
// graphics block per band of eight rows, each followed by a line feed.
func Encode(i image.Image, o Options) ([]byte, error) {
	p, err := Render(i, o)
	if err != nil {
		return nil, fmt.Errorf("Couldn't render image for printing:\n%w", err)
	}
	b, err := bitmap.FromPaletted(p)
	if err != nil {
		return nil, err
	}
	return EncodeBitmap(b), nil
}

// EncodeBitmap cuts a bitmap into bands of eight rows. Columns past the last
// inked one in a band are left out; a blank band is just a line feed.
func EncodeBitmap(b bitmap.Bitmap) []byte {
	width := min(b.Width(), protocol.GraphicsMax)
	d := []byte{}
	for top := 0; top < b.Height(); top += font.Height {
		columns := Band(b, top, width)
		end := len(columns)
		for end > 0 && columns[end-1] == 0 {
			end--
		}
		d = append(d, protocol.Graphics(columns[:end])...)
		d = append(d, protocol.LF)
	}
	return d
}

// Band returns the graphics columns for the eight rows starting at top. Bit 0
// of each column is the top row.
func Band(b bitmap.Bitmap, top, width int) []byte {
	columns := make([]byte, width)
	for x := range width {
		var c byte
		for row := range font.Height {
			y := top + row
			if y >= b.Height() {
				break
			}
			if b.GetBit(x, y) == 1 {
				c |= 1 << row
			}
		}
		columns[x] = c
	}
	return columns
}
