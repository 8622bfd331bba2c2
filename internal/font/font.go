// Package font holds the two character sets of the HP82240B printer.
//
// Every printable byte (32..255) maps to a Glyph of Width columns. A column is
// one byte whose bit 0 is the top row, the same vertical encoding the printer
// uses for its graphics mode, so glyphs and graphics columns are blitted by the
// same code.
package font

// CodePage selects which of the two character sets the printer is using.
type CodePage byte

const (
	Roman8 CodePage = iota
	ECMA94
)

func (p CodePage) String() string {
	switch p {
	case Roman8:
		return "Roman8"
	case ECMA94:
		return "ECMA94"
	default:
		return "unknown"
	}
}

const (
	// FirstPrintable is the lowest byte value that prints a character.
	FirstPrintable = 32
	// Size is the number of printable slots in each code page.
	Size = 256 - FirstPrintable
	// Width is the number of columns in a glyph.
	Width = 5
	// Height is the number of rows in a glyph column.
	Height = 8
)

// Glyph is a character bitmap, one byte per column.
type Glyph [Width]byte

// Set reports whether the pixel at column x, row y is printed.
func (g Glyph) Set(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return g[x]&(1<<y) != 0
}

// The tables are indexed directly by byte value; with 224 entries per page
// there is nothing to gain from anything cleverer.
var (
	tables  [2][Size]Glyph
	layouts = [2]*[Size]rune{&roman8Layout, &ecma94Layout}
)

func init() {
	for page, layout := range layouts {
		for i, r := range layout {
			g, ok := glyphs[r]
			if !ok {
				g = glyphs[undefined]
			}
			tables[page][i] = g
		}
	}
}

// Lookup returns the glyph printed for byte c in the given code page. Bytes
// below FirstPrintable have no glyph and return the blank glyph and false.
func Lookup(page CodePage, c byte) (Glyph, bool) {
	if c < FirstPrintable || int(page) >= len(tables) {
		return Glyph{}, false
	}
	return tables[page][c-FirstPrintable], true
}

// Rune returns the character printed for byte c in the given code page, or
// 0 when c is not printable.
func Rune(page CodePage, c byte) rune {
	if c < FirstPrintable || int(page) >= len(layouts) {
		return 0
	}
	return layouts[page][c-FirstPrintable]
}
