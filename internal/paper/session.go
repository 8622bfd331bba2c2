// Package paper is the virtual paper roll of an emulated HP82240B printer.
//
// A Session keeps everything printed since the last clear, decodes it, and
// renders it onto a Surface. When the display changes size the surface is
// thrown away and rebuilt by replaying the retained bytes, so the log is the
// source of truth and the raster is only ever a cache of it.
//
// A Session is not safe for concurrent use; all calls are expected to come
// from the one goroutine that delivers printer bytes and display changes.
package paper

import (
	"bytes"
	"image"
	"log/slog"

	"tomgalvin.uk/hp82240/internal/protocol"
)

type Session struct {
	// OnPrinted is told, once per Append, how far down the raster the printed
	// content now reaches, so that a view can scroll to it.
	OnPrinted func(bottom int)
	// OnSelfTest is called when the self test command is received. It is not
	// called again while the log is being replayed.
	OnSelfTest func()

	geometry Geometry
	logger   *slog.Logger

	decoder *protocol.Decoder
	// base is the decoder as it was at the first retained byte
	base protocol.Decoder
	log  []byte

	surface       *Surface
	lines         int
	displayWidth  int
	displayHeight int
	replaying     bool
}

func NewSession(logger *slog.Logger, g Geometry) (*Session, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		geometry:      g,
		logger:        logger,
		decoder:       protocol.NewDecoder(),
		lines:         g.InitialLines,
		displayWidth:  g.MinDisplayWidth(),
		displayHeight: g.MinDisplayHeight(),
	}, nil
}

func (s *Session) Geometry() Geometry {
	return s.geometry
}

// Append adds bytes to the paper log and prints them. It returns the raster row
// the printed content reaches, the same value passed to OnPrinted.
func (s *Session) Append(data []byte) int {
	if s.surface == nil {
		// rebuild what was already printed; data itself is printed live
		s.Rebuild()
	}
	s.log = append(s.log, data...)
	s.print(data)

	bottom := s.surface.Bottom()
	if s.OnPrinted != nil {
		s.OnPrinted(bottom)
	}
	return bottom
}

// Load appends bytes that were printed before, such as a saved journal. They
// are drawn like any others, but OnSelfTest is not called for them.
func (s *Session) Load(data []byte) int {
	was := s.replaying
	s.replaying = true
	defer func() { s.replaying = was }()
	return s.Append(data)
}

// ResetPrinter sends the reset command. Code page, character width and
// underline go back to their defaults; the paper is left alone.
func (s *Session) ResetPrinter() int {
	return s.Append(protocol.ResetCommand())
}

// Clear tears off the paper: the log is emptied and the raster dropped. The
// next Paint builds an empty one.
func (s *Session) Clear() {
	s.log = nil
	s.base = *s.decoder
	s.surface = nil
	s.lines = s.geometry.InitialLines
	s.logger.Debug("Cleared paper")
}

// SetDisplaySize records the size of the area the paper is shown in. The raster
// is dropped if that changes its width; it is rebuilt on the next Paint.
func (s *Session) SetDisplaySize(width, height int) {
	if width == s.displayWidth && height == s.displayHeight {
		return
	}
	widthChanged := width != s.displayWidth
	s.displayWidth, s.displayHeight = width, height
	if widthChanged {
		s.discard()
	}
}

// OnDisplayWidthChanged rebuilds the paper for a new display width.
func (s *Session) OnDisplayWidthChanged(width int) {
	s.displayWidth = width
	s.Rebuild()
}

func (s *Session) discard() {
	if s.surface != nil {
		s.lines = s.surface.lineCount
		s.surface = nil
	}
}

// Rebuild renders the paper from scratch: the zoom is recomputed from the
// display width and the whole log is replayed. Replaying an unchanged log at an
// unchanged zoom reproduces the same raster.
func (s *Session) Rebuild() {
	s.discard()

	g := s.geometry
	zoom := g.ZoomFor(s.displayWidth)
	xOffset := 0
	if free := s.displayWidth - g.HorizontalMargin; free > 0 {
		xOffset = free % (g.PaperWidth * zoom)
	}
	// sized for as many lines as the previous raster had, so a replay of an
	// unchanged log rarely has to grow
	height := max(s.displayHeight, s.lines*g.LineHeight*zoom)
	width := s.displayWidth
	if g.Zoom > 0 {
		width = max(width, g.DisplayWidthFor(zoom))
	}
	s.surface = newSurface(g, width, height, zoom, xOffset)

	*s.decoder = s.base
	was := s.replaying
	s.replaying = true
	s.print(s.log)
	s.replaying = was

	s.logger.Debug("Rebuilt paper",
		"zoom", zoom,
		"width", width,
		"height", s.surface.Height(),
		"lines", s.surface.lineCount,
		"bytes", len(s.log),
	)
}

// print decodes data onto the surface. data may be the log itself: evicting a
// line reslices s.log without touching the bytes being iterated.
func (s *Session) print(data []byte) {
	for _, b := range data {
		a, ok := s.decoder.Decode(b)
		if !ok {
			continue
		}
		if a.Kind == protocol.SelfTest {
			if s.OnSelfTest != nil && !s.replaying {
				s.OnSelfTest()
			}
			continue
		}
		if s.surface.Apply(a) {
			s.dropFirstLine()
		}
	}
}

// dropFirstLine removes everything up to and including the first line
// terminator from the log, keeping it in step with the raster after an
// eviction.
func (s *Session) dropFirstLine() {
	end := -1
	for i, b := range s.log {
		if b == protocol.LF || b == protocol.EOL {
			end = i
			break
		}
	}
	if end < 0 {
		// The raster has lost a line the log can't account for. The log is
		// left as it is; a rebuild will show more than was visible.
		s.logger.Warn("Evicted a line but found no line terminator in the paper log",
			"bytes", len(s.log),
		)
		return
	}
	for _, b := range s.log[:end+1] {
		s.base.Decode(b)
	}
	s.log = s.log[end+1:]
}

// Paint returns the current raster, building it first if needed.
func (s *Session) Paint() *image.Paletted {
	return s.Surface().Image()
}

// Surface returns the render surface, building it first if needed.
func (s *Session) Surface() *Surface {
	if s.surface == nil {
		s.Rebuild()
	}
	return s.surface
}

// Printout renders the retained paper at one pixel per dot, without margins,
// down to the end of the current line. The session itself is left alone.
func (s *Session) Printout() *image.Paletted {
	g := s.geometry
	g.Zoom = 1
	g.HorizontalMargin, g.VerticalMargin = 0, 0
	out := &Session{
		geometry:     g,
		logger:       s.logger,
		decoder:      protocol.NewDecoder(),
		base:         s.base,
		log:          s.log,
		lines:        max(g.InitialLines, s.lines),
		displayWidth: g.PaperWidth,
	}
	out.Rebuild()

	surface := out.surface
	r := image.Rect(0, 0, g.PaperWidth, surface.Bottom())
	if surface.x == 0 {
		// nothing printed on the current line yet
		r.Max.Y = surface.toY(surface.y)
	}
	return surface.Image().SubImage(r).(*image.Paletted)
}

// Log returns a copy of the retained bytes.
func (s *Session) Log() []byte {
	return bytes.Clone(s.log)
}

// Snapshot returns bytes that reproduce the paper when appended to a fresh
// session: the retained log, prefixed with whatever puts a fresh decoder into
// the state the log starts in.
func (s *Session) Snapshot() []byte {
	return append(s.base.State().Restore(), s.log...)
}

func (s *Session) State() protocol.State {
	return s.decoder.State()
}

func (s *Session) Cursor() image.Point {
	return s.Surface().Cursor()
}

func (s *Session) LineCount() int {
	return s.Surface().LineCount()
}

func (s *Session) Zoom() int {
	return s.Surface().Zoom()
}
