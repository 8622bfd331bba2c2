package caption

import (
	"image"
	"testing"

	"tomgalvin.uk/hp82240/internal/bitmap"
)

func ink(t *testing.T, i *image.Paletted) int {
	t.Helper()
	b, err := bitmap.FromPaletted(i)
	if err != nil {
		t.Fatal(err)
	}
	return bitmap.Ink(b)
}

func TestRender(t *testing.T) {
	c, err := Render("HP82240B", 166, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if c.Rect.Dx() != 166 || c.Rect.Dy() == 0 {
		t.Errorf("Unexpected caption size %v", c.Rect)
	}
	if ink(t, c) == 0 {
		t.Errorf("Caption is blank")
	}
}

func TestRenderWraps(t *testing.T) {
	o := DefaultOptions()
	one, err := Render("one", 166, o)
	if err != nil {
		t.Fatal(err)
	}
	many, err := Render("one two three four five six seven eight nine ten eleven twelve", 166, o)
	if err != nil {
		t.Fatal(err)
	}
	if many.Rect.Dy() <= one.Rect.Dy() || many.Rect.Dy()%one.Rect.Dy() != 0 {
		t.Errorf("Expected whole extra lines, got heights %d and %d", one.Rect.Dy(), many.Rect.Dy())
	}

	newline, err := Render("one\ntwo", 166, o)
	if err != nil {
		t.Fatal(err)
	}
	if newline.Rect.Dy() != 2*one.Rect.Dy() {
		t.Errorf("Expected a line per paragraph, got height %d", newline.Rect.Dy())
	}
}

func TestRenderBlank(t *testing.T) {
	c, err := Render("  \n ", 166, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !c.Rect.Empty() {
		t.Errorf("Expected an empty caption, got %v", c.Rect)
	}
}

func TestInvalidOptions(t *testing.T) {
	if _, err := Render("x", 166, Options{Font: "comic", Size: 12}); err == nil {
		t.Errorf("Expected an error for an unknown font")
	}
	if _, err := Render("x", 166, Options{Font: "gomono", Size: 0}); err == nil {
		t.Errorf("Expected an error for a zero font size")
	}
	if _, err := Render("x", 0, DefaultOptions()); err == nil {
		t.Errorf("Expected an error for a zero width")
	}
}

func TestAbove(t *testing.T) {
	c, err := Render("top", 166, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewPaletted(image.Rect(0, 0, 166, 20), palette)
	img.SetColorIndex(5, 5, 1)

	out := Above(c, img)
	if out.Rect.Dx() != 166 || out.Rect.Dy() != c.Rect.Dy()+gap+20 {
		t.Fatalf("Unexpected stacked size %v", out.Rect)
	}
	if out.ColorIndexAt(5, c.Rect.Dy()+gap+5) != 1 {
		t.Errorf("Image was not copied below the caption")
	}
	if ink(t, out) != ink(t, c)+1 {
		t.Errorf("Expected caption ink plus one dot, got %d", ink(t, out))
	}

	if Above(image.NewPaletted(image.Rect(0, 0, 166, 0), palette), img) != img {
		t.Errorf("An empty caption should leave the image alone")
	}
}
