package graphics

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"tomgalvin.uk/hp82240/internal/bitmap"
	"tomgalvin.uk/hp82240/internal/protocol"
)

func aSolidImage(width, height int, c color.Gray) *image.Gray {
	i := image.NewGray(image.Rect(0, 0, width, height))
	for n := range i.Pix {
		i.Pix[n] = c.Y
	}
	return i
}

func aRandomBitmap(width, height int) *bitmap.PixelBitmap {
	pixels := make([][]byte, height)
	for y := range height {
		pixels[y] = make([]byte, width)
		for x := range width {
			pixels[y][x] = byte(rand.IntN(2))
		}
	}
	return bitmap.NewPixelBitmap(pixels)
}

// columns returns the graphics columns of each band, split at line feeds
func columns(t *testing.T, data []byte) [][]byte {
	t.Helper()
	bands := [][]byte{{}}
	for _, a := range protocol.NewDecoder().DecodeAll(data) {
		switch a.Kind {
		case protocol.DrawGraphicsColumn:
			bands[len(bands)-1] = append(bands[len(bands)-1], a.Value)
		case protocol.LineFeed:
			bands = append(bands, []byte{})
		default:
			t.Fatalf("Unexpected action %s in encoded graphics", a)
		}
	}
	return bands[:len(bands)-1]
}

func TestEncodeBlack(t *testing.T) {
	data, err := Encode(aSolidImage(protocol.GraphicsMax, 16, color.Gray{0}), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	bands := columns(t, data)
	if len(bands) != 2 {
		t.Fatalf("Expected 2 bands, got %d", len(bands))
	}
	for i, band := range bands {
		if len(band) != protocol.GraphicsMax {
			t.Fatalf("Band %d has %d columns", i, len(band))
		}
		for x, c := range band {
			if c != 0xFF {
				t.Fatalf("Band %d column %d = %08b, want all ink", i, x, c)
			}
		}
	}
}

func TestEncodeWhiteIsOnlyLineFeeds(t *testing.T) {
	data, err := Encode(aSolidImage(40, 20, color.Gray{0xFF}), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{protocol.LF, protocol.LF, protocol.LF}
	if string(data) != string(want) {
		t.Errorf("Expected %v for blank image, got %v", want, data)
	}
}

func TestEncodeScalesDown(t *testing.T) {
	data, err := Encode(aSolidImage(2*protocol.GraphicsMax, 16, color.Gray{0}), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	bands := columns(t, data)
	if len(bands) != 1 || len(bands[0]) != protocol.GraphicsMax {
		t.Fatalf("Expected one band of %d columns, got %d bands", protocol.GraphicsMax, len(bands))
	}
}

func TestEncodeDoesNotScaleUp(t *testing.T) {
	p, err := Render(aSolidImage(10, 3, color.Gray{0}), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if p.Rect.Dx() != 10 || p.Rect.Dy() != 3 {
		t.Errorf("Expected a 10x3 image, got %v", p.Rect)
	}
}

func TestEncodeBitmapRoundTrip(t *testing.T) {
	for range 10 {
		b := aRandomBitmap(1+rand.IntN(protocol.GraphicsMax), 1+rand.IntN(40))
		bands := columns(t, EncodeBitmap(b))
		if want := (b.Height() + 7) / 8; len(bands) != want {
			t.Fatalf("Expected %d bands for %s, got %d", want, b, len(bands))
		}
		for y := range b.Height() {
			band := bands[y/8]
			for x := range b.Width() {
				var got byte
				if x < len(band) {
					got = band[x] >> (y % 8) & 1
				}
				if got != b.GetBit(x, y) {
					t.Fatalf("%s: pixel (%d,%d) = %d after encoding", b, x, y, got)
				}
			}
		}
	}
}

func TestInvalidOptions(t *testing.T) {
	i := aSolidImage(4, 4, color.Gray{0})
	for _, o := range []Options{
		{Width: 0, Gamma: 1},
		{Width: protocol.GraphicsMax + 1, Gamma: 1},
		{Width: 10, Gamma: 0},
	} {
		if _, err := Encode(i, o); err == nil {
			t.Errorf("Expected an error for %+v", o)
		}
	}
	if _, err := Encode(image.NewGray(image.Rect(0, 0, 0, 0)), DefaultOptions()); err == nil {
		t.Errorf("Expected an error for an empty image")
	}
}
