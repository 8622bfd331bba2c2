package paper

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"tomgalvin.uk/hp82240/internal/font"
	"tomgalvin.uk/hp82240/internal/protocol"
)

// palette index of printed dots; index 0 is blank paper
const inkIndex = 1

var (
	palette = color.Palette{color.White, color.Black}
	ink     = image.NewUniform(color.Black)
)

// Surface is the rendered paper. It owns its raster exclusively; growing and
// evicting allocate a new raster, copy what is still visible and drop the old
// one.
//
// Drawing happens in logical dots. toX and toY map them to raster pixels, so
// the zoom never leaks into the drawing code.
type Surface struct {
	geometry Geometry
	raster   *image.Paletted
	zoom     int
	xOffset  int

	// cursor, in dots
	x, y      int
	lineCount int
}

func newSurface(g Geometry, width, height, zoom, xOffset int) *Surface {
	return &Surface{
		geometry: g,
		raster:   image.NewPaletted(image.Rect(0, 0, width, height), palette),
		zoom:     zoom,
		xOffset:  xOffset,
	}
}

func (s *Surface) toX(x int) int {
	return s.geometry.HorizontalMargin/2 + s.xOffset + x*s.zoom
}

func (s *Surface) toY(y int) int {
	return s.geometry.VerticalMargin/2 + y*s.zoom
}

// Apply draws one decoded action. It reports whether the oldest line had to be
// evicted to make room.
func (s *Surface) Apply(a protocol.Action) bool {
	switch a.Kind {
	case protocol.DrawGlyph:
		s.drawGlyph(a)
	case protocol.DrawGraphicsColumn:
		s.drawColumn(a.Value)
	case protocol.LineFeed, protocol.EndOfLine:
		return s.lineFeed()
	}
	return false
}

func (s *Surface) drawGlyph(a protocol.Action) {
	g, ok := font.Lookup(a.CodePage, a.Value)
	if !ok {
		return
	}
	expansion := 1
	if a.Expanded {
		expansion = 2
	}

	// one blank column on each side of the glyph. Expanded dots are two wide
	// but keep their column, so neighbouring columns overlap.
	s.x += expansion
	for col := range font.Width {
		for row := range font.Height {
			if g.Set(col, row) {
				s.fill(s.x+col, s.y+row, expansion)
			}
		}
	}
	if a.Underline {
		s.fill(s.x-expansion, s.y+font.Height, (font.Width+2)*expansion)
	}
	s.x += (font.Width + 1) * expansion
}

func (s *Surface) drawColumn(mask byte) {
	for row := range font.Height {
		if mask&(1<<row) != 0 {
			s.fill(s.x, s.y+row, 1)
		}
	}
	s.x++
}

// fill inks a run of n dots starting at (x, y).
func (s *Surface) fill(x, y, n int) {
	r := image.Rect(s.toX(x), s.toY(y), s.toX(x)+n*s.zoom, s.toY(y)+s.zoom)
	r = r.Intersect(s.raster.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(s.raster, r, ink, image.Point{}, draw.Src)
}

func (s *Surface) lineFeed() bool {
	evicted := false
	if s.lineCount >= s.geometry.MaxLines {
		s.evictFirstLine()
		evicted = true
	}
	s.y += s.geometry.LineHeight
	if newHeight := s.toY(s.y + s.geometry.LineHeight); newHeight >= s.raster.Rect.Dy() {
		s.grow(newHeight)
	}
	s.x = 0
	s.lineCount++
	return evicted
}

func (s *Surface) grow(height int) {
	old := s.raster
	s.raster = image.NewPaletted(image.Rect(0, 0, old.Rect.Dx(), height), palette)
	draw.Draw(s.raster, old.Rect, old, image.Point{}, draw.Src)
}

// evictFirstLine scrolls everything below the first line up by one line.
func (s *Surface) evictFirstLine() {
	old := s.raster
	s.raster = image.NewPaletted(old.Rect, palette)

	top := s.toY(0)
	shift := s.geometry.LineHeight * s.zoom
	if top+shift < old.Rect.Dy() {
		visible := image.Rect(0, top, old.Rect.Dx(), old.Rect.Dy()-shift)
		draw.Draw(s.raster, visible, old, image.Pt(0, top+shift), draw.Src)
	}
	s.lineCount--
	s.y -= s.geometry.LineHeight
}

// Image returns the raster. It is replaced, not modified in place, whenever
// the paper grows or scrolls, so callers should fetch it again after printing.
func (s *Surface) Image() *image.Paletted {
	return s.raster
}

func (s *Surface) Width() int {
	return s.raster.Rect.Dx()
}

func (s *Surface) Height() int {
	return s.raster.Rect.Dy()
}

// GetBit returns 1 where the paper is inked.
func (s *Surface) GetBit(x int, y int) byte {
	if s.raster.Pix[s.raster.PixOffset(x, y)] == inkIndex {
		return 1
	}
	return 0
}

// Cursor is the print position in dots.
func (s *Surface) Cursor() image.Point {
	return image.Pt(s.x, s.y)
}

func (s *Surface) LineCount() int {
	return s.lineCount
}

func (s *Surface) Zoom() int {
	return s.zoom
}

// Bottom is the raster row just below the line the cursor is on.
func (s *Surface) Bottom() int {
	return s.toY(s.y + s.geometry.LineHeight)
}

// PaperBounds is the part of the raster the paper covers, without margins.
func (s *Surface) PaperBounds() image.Rectangle {
	r := image.Rect(s.toX(0), s.toY(0), s.toX(s.geometry.PaperWidth), s.raster.Rect.Dy())
	return r.Intersect(s.raster.Rect)
}

func (s *Surface) String() string {
	return fmt.Sprintf("Surface(%dx%d zoom=%d lines=%d)", s.Width(), s.Height(), s.zoom, s.lineCount)
}
