package paper

import (
	"fmt"

	"tomgalvin.uk/hp82240/internal/font"
	"tomgalvin.uk/hp82240/internal/protocol"
)

// Geometry describes the paper in printer dots and the margins around it in
// display pixels.
type Geometry struct {
	// PaperWidth is the printable width in dots.
	PaperWidth int `json:"paperWidth"`
	// LineHeight is the paper advance of one line feed, in dots.
	LineHeight       int `json:"lineHeight"`
	HorizontalMargin int `json:"horizontalMargin"`
	VerticalMargin   int `json:"verticalMargin"`
	// InitialLines sizes the first raster before anything is printed.
	InitialLines int `json:"initialLines"`
	// MaxLines is how many lines are kept before the oldest one is evicted.
	MaxLines int `json:"maxLines"`
	// Zoom fixes the zoom factor. Zero derives it from the display width.
	Zoom int `json:"zoom"`
}

func DefaultGeometry() Geometry {
	return Geometry{
		PaperWidth:       protocol.GraphicsMax,
		LineHeight:       10,
		HorizontalMargin: 20,
		VerticalMargin:   20,
		InitialLines:     20,
		MaxLines:         500,
	}
}

func (g Geometry) Validate() error {
	switch {
	case g.PaperWidth <= 0:
		return fmt.Errorf("Paper width must be positive, got %d", g.PaperWidth)
	case g.LineHeight <= font.Height:
		return fmt.Errorf("Line height must leave room for an underline below %d glyph rows, got %d", font.Height, g.LineHeight)
	case g.HorizontalMargin < 0 || g.VerticalMargin < 0:
		return fmt.Errorf("Margins can't be negative")
	case g.InitialLines < 0:
		return fmt.Errorf("Initial lines can't be negative, got %d", g.InitialLines)
	case g.MaxLines < 1:
		return fmt.Errorf("At least one line must be kept, got %d", g.MaxLines)
	case g.Zoom < 0:
		return fmt.Errorf("Zoom can't be negative, got %d", g.Zoom)
	}
	return nil
}

// MinDisplayWidth is the narrowest display that shows the whole paper at
// zoom 1.
func (g Geometry) MinDisplayWidth() int {
	return g.PaperWidth + g.HorizontalMargin
}

// MinDisplayHeight fits the initial lines at zoom 1.
func (g Geometry) MinDisplayHeight() int {
	return g.InitialLines*g.LineHeight + g.VerticalMargin
}

// ZoomFor returns the zoom used on a display of the given width.
func (g Geometry) ZoomFor(displayWidth int) int {
	if g.Zoom > 0 {
		return g.Zoom
	}
	return max(1, displayWidth/g.MinDisplayWidth())
}

// DisplayWidthFor is the display width at which ZoomFor returns zoom.
func (g Geometry) DisplayWidthFor(zoom int) int {
	return max(1, zoom) * g.MinDisplayWidth()
}
