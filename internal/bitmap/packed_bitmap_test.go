package bitmap

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
)

func aRandomBitmap() *PixelBitmap {
	width, height := 1+rand.IntN(400), 1+rand.IntN(400)
	pixels := make([][]byte, height)
	for y := range height {
		row := make([]byte, width)
		for x := range width {
			row[x] = byte(rand.IntN(2))
		}
		pixels[y] = row
	}

	return &PixelBitmap{pixels, width, height}
}

func assertBitmapsIdentical(t *testing.T, b1 Bitmap, b2 Bitmap) {
	t.Helper()
	if b1.Width() != b2.Width() {
		t.Fatalf("Bitmaps not of equal width: %v %v", b1, b2)
	}
	if b1.Height() != b2.Height() {
		t.Fatalf("Bitmaps not of equal height: %v %v", b1, b2)
	}
	width, height := b1.Width(), b1.Height()

	for y := range height {
		for x := range width {
			bit1, bit2 := b1.GetBit(x, y), b2.GetBit(x, y)
			if bit1 != bit2 {
				t.Fatalf("Bit at (%v, %v) doesn't match: %v vs %v", x, y, bit1, bit2)
			}
		}
	}
}

func TestPackBitmap(t *testing.T) {
	test := NewPixelBitmap([][]byte{
		{1, 0},
		{0, 1},
	})

	packed := PackBitmap(test)
	assertBitmapsIdentical(t, test, packed)
	if packed.Stride() != 1 {
		t.Errorf("Expected stride 1, got %d", packed.Stride())
	}
	// bits are left aligned in the last byte of a row
	if packed.Data()[0] != 0x80 || packed.Data()[1] != 0x40 {
		t.Errorf("Unexpected packing %08b", packed.Data())
	}
}

func TestPackBitmapMany(t *testing.T) {
	const testCaseCount = 30

	for i := range testCaseCount {
		testBitmap := aRandomBitmap()
		t.Run(fmt.Sprintf("test %v: %s", i, testBitmap.String()), func(t *testing.T) {
			copiedBitmap := PackBitmap(testBitmap)
			assertBitmapsIdentical(t, testBitmap, copiedBitmap)
			copiedAgainBitmap := PackBitmap(copiedBitmap)
			assertBitmapsIdentical(t, copiedBitmap, copiedAgainBitmap)
		})
	}
}

func TestChunk(t *testing.T) {
	b := PackBitmap(aRandomBitmap())
	start := b.Height() / 2
	chunk := b.Chunk(start, b.Height()-start)

	if chunk.Height() != b.Height()-start || chunk.Width() != b.Width() {
		t.Fatalf("Unexpected chunk size %s of %s", chunk, b)
	}
	for y := range chunk.Height() {
		for x := range chunk.Width() {
			if chunk.GetBit(x, y) != b.GetBit(x, start+y) {
				t.Fatalf("Chunk bit (%d,%d) differs from source", x, y)
			}
		}
	}
}

func TestFromPaletted(t *testing.T) {
	for _, palette := range []color.Palette{
		{color.White, color.Black},
		{color.Black, color.White},
	} {
		img := image.NewPaletted(image.Rect(0, 0, 3, 1), palette)
		img.Set(1, 0, color.Black)
		img.Set(0, 0, color.White)
		img.Set(2, 0, color.White)

		b, err := FromPaletted(img)
		if err != nil {
			t.Fatal(err)
		}
		if b.GetBit(0, 0) != 0 || b.GetBit(1, 0) != 1 || b.GetBit(2, 0) != 0 {
			t.Errorf("Palette %v: black should map to 1", palette)
		}
		if Ink(b) != 1 {
			t.Errorf("Expected one inked pixel, got %d", Ink(b))
		}
	}
}

func TestFromPalettedRejectsColour(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.White, color.Black, color.Gray{0x80}})
	if _, err := FromPaletted(img); err == nil {
		t.Error("Expected an error for a three colour palette")
	}
}
