// Package caption renders a line of text, such as a title or a timestamp, to
// print above a hardcopy of the paper.
package caption

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// rows left blank between a caption and what it is stacked on
const gap = 4

var palette = color.Palette{color.White, color.Black}

type Options struct {
	// Font is one of the built in fonts, "gomono" or "goregular".
	Font string
	// Size is the font size in dots.
	Size float64
}

func DefaultOptions() Options {
	return Options{
		Font: "gomono",
		Size: 12,
	}
}

func fontData(name string) ([]byte, error) {
	switch name {
	case "gomono":
		return gomono.TTF, nil
	case "goregular":
		return goregular.TTF, nil
	default:
		return nil, fmt.Errorf(`Unrecognised font "%s"`, name)
	}
}

func loadFace(o Options) (font.Face, error) {
	data, err := fontData(o.Font)
	if err != nil {
		return nil, err
	}
	if o.Size <= 0 {
		return nil, fmt.Errorf("Font size must be positive, got %v", o.Size)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Couldn't parse font %s:\n%w", o.Font, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    o.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("Couldn't create font face:\n%w", err)
	}
	return face, nil
}

// wrap breaks text into lines no wider than width. A word wider than width
// gets a line of its own.
func wrap(text string, width int, face font.Face) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var line string
		for _, word := range strings.Fields(paragraph) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if line != "" && font.MeasureString(face, candidate).Ceil() > width {
				lines = append(lines, line)
				line = word
			} else {
				line = candidate
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// Render draws text wrapped to width dots, in black on white. Blank text
// renders an image with no rows.
func Render(text string, width int, o Options) (*image.Paletted, error) {
	if width <= 0 {
		return nil, fmt.Errorf("Caption width must be positive, got %d", width)
	}
	if strings.TrimSpace(text) == "" {
		return image.NewPaletted(image.Rect(0, 0, width, 0), palette), nil
	}
	face, err := loadFace(o)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	lines := wrap(strings.TrimSpace(text), width, face)
	m := face.Metrics()
	lineHeight := m.Height.Ceil()

	grey := image.NewGray(image.Rect(0, 0, width, lineHeight*len(lines)))
	draw.Draw(grey, grey.Rect, image.White, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  grey,
		Src:  image.Black,
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.Point26_6{X: 0, Y: fixed.I(i*lineHeight) + m.Ascent}
		d.DrawString(line)
	}

	out := image.NewPaletted(grey.Rect, palette)
	for i, v := range grey.Pix {
		if v < 0x80 {
			out.Pix[i] = 1
		}
	}
	return out, nil
}

// Above stacks caption on top of img, separated by a few blank rows. An empty
// caption leaves img as it is.
func Above(caption, img *image.Paletted) *image.Paletted {
	if caption.Rect.Empty() {
		return img
	}
	top := caption.Rect.Dy() + gap
	r := image.Rect(0, 0, max(caption.Rect.Dx(), img.Rect.Dx()), top+img.Rect.Dy())
	out := image.NewPaletted(r, palette)
	draw.Draw(out, caption.Rect.Sub(caption.Rect.Min), caption, caption.Rect.Min, draw.Src)
	draw.Draw(out, image.Rect(0, top, img.Rect.Dx(), r.Max.Y), img, img.Rect.Min, draw.Src)
	return out
}
