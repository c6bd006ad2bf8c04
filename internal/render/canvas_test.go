package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/basicfont"
)

func isSet(c *Canvas, x, y int) bool { return c.Image().RGBAAt(x, y) == Foreground }

func countSet(c *Canvas) int {
	n := 0
	b := c.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if isSet(c, x, y) {
				n++
			}
		}
	}
	return n
}

func TestClearResetsPixelsAndCursor(t *testing.T) {
	c := NewCanvas(DefaultWidth, DefaultHeight, nil)
	c.FillRect(image.Rect(0, 0, 10, 10))
	c.SetCursor(5, 5)
	c.Clear()
	if n := countSet(c); n != 0 {
		t.Errorf("%d pixels set after clear", n)
	}
	if x, y := c.Cursor(); x != 0 || y != 0 {
		t.Errorf("cursor = %d,%d", x, y)
	}
}

func TestShapes(t *testing.T) {
	c := NewCanvas(32, 32, nil)
	c.DrawPixel(-1, 5) // clipped
	c.DrawPixel(40, 40)
	if n := countSet(c); n != 0 {
		t.Fatalf("out of bounds pixels drawn: %d", n)
	}

	c.DrawRect(image.Rect(2, 2, 6, 6))
	for _, p := range []image.Point{{2, 2}, {5, 2}, {2, 5}, {5, 5}} {
		if !isSet(c, p.X, p.Y) {
			t.Errorf("rect corner %v not set", p)
		}
	}
	if isSet(c, 3, 3) || isSet(c, 6, 6) {
		t.Errorf("rect outline leaked")
	}

	c.Clear()
	c.DrawCircle(16, 16, 3)
	if !isSet(c, 19, 16) || !isSet(c, 16, 13) || isSet(c, 16, 16) {
		t.Errorf("circle outline wrong")
	}

	c.Clear()
	c.FillCircle(16, 16, 3)
	if !isSet(c, 16, 16) || !isSet(c, 19, 16) || isSet(c, 19, 19) {
		t.Errorf("filled circle wrong")
	}

	c.Clear()
	c.DrawLine(0, 0, 4, 2)
	if n := countSet(c); n != 5 {
		t.Errorf("line pixels = %d, want 5", n)
	}
}

func TestPrintAdvancesCursor(t *testing.T) {
	c := NewCanvas(DefaultWidth, DefaultHeight, nil)
	c.SetTextWrap(false)
	c.SetCursor(3, 4)
	c.Print("ab")
	if x, y := c.Cursor(); x != 3+14 || y != 4 {
		t.Errorf("cursor = %d,%d, want 17,4", x, y)
	}
	if countSet(c) == 0 {
		t.Errorf("no glyph pixels drawn")
	}
}

func TestPrintWrapsAtWords(t *testing.T) {
	c := NewCanvas(DefaultWidth, DefaultHeight, nil)
	// 84px at 7px per cell is 12 columns.
	c.Print("hello world again")
	if x, y := c.Cursor(); x != 5*7 || y != 13 {
		t.Errorf("cursor = %d,%d, want 35,13", x, y)
	}

	c.SetCursor(0, 0)
	got := c.wrapLines([]string{"abcdefghijklmnopq"}, DefaultWidth)
	if diff := cmp.Diff([]string{"abcdefghijkl", "mnopq"}, got); diff != "" {
		t.Errorf("hard wrap (-want +got):\n%s", diff)
	}
}

func TestTextSizeScalesMetrics(t *testing.T) {
	c := NewCanvas(DefaultWidth, DefaultHeight, nil)
	one := c.MeasureText("12")
	c.SetTextSize(2)
	two := c.MeasureText("12")
	if two.Width != 2*one.Width || two.LineHeight != 2*one.LineHeight {
		t.Errorf("size 2 metrics = %+v, size 1 = %+v", two, one)
	}
	c.SetCursor(0, 0)
	c.Print("12")
	if countSet(c) == 0 {
		t.Errorf("no scaled glyph pixels drawn")
	}
	c.SetTextSize(0)
	if got := c.MeasureText("12"); got != one {
		t.Errorf("size 0 should clamp to 1")
	}
}

func TestDisplayFlushesAllSinks(t *testing.T) {
	var flushed int
	boom := errors.New("boom")
	c := NewCanvas(4, 4, basicfont.Face7x13,
		SinkFunc(func(*image.RGBA) error { return boom }),
		SinkFunc(func(*image.RGBA) error { flushed++; return nil }),
	)
	if err := c.Display(); !errors.Is(err, boom) {
		t.Errorf("Display = %v, want %v", err, boom)
	}
	if flushed != 1 {
		t.Errorf("second sink flushed %d times", flushed)
	}
}

func TestPNGSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.png")
	c := NewCanvas(DefaultWidth, DefaultHeight, nil, PNGSink{Path: path, Scale: 2})
	c.FillRect(image.Rect(0, 0, 1, 1))
	if err := c.Display(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(2*DefaultWidth, 2*DefaultHeight) {
		t.Errorf("size = %v", got)
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	fr, fg, fb, _ := Foreground.RGBA()
	if r != fr || g != fg || b != fb {
		t.Errorf("scaled pixel is not foreground")
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestTerminalSink(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	s := NewTerminalSink(&buf)
	if s.Home {
		t.Errorf("Home enabled for a non-terminal writer")
	}
	if err := s.Flush(img); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if rows := strings.Count(out, "\x1b[0m\r\n"); rows != 2 {
		t.Errorf("rows = %d, want 2", rows)
	}
	if cells := strings.Count(out, "▀"); cells != 4 {
		t.Errorf("cells = %d, want 4", cells)
	}
}

func TestLoadFace(t *testing.T) {
	face, err := LoadFace("", 0)
	if err != nil || face != basicfont.Face7x13 {
		t.Errorf("default face = %v, %v", face, err)
	}
	goFace, err := LoadFace(FontGo, 10)
	if err != nil {
		t.Fatal(err)
	}
	if h := goFace.Metrics().Height.Ceil(); h < 10 {
		t.Errorf("go face height = %d", h)
	}
	if _, err := LoadFace(filepath.Join(t.TempDir(), "missing.ttf"), 8); err == nil {
		t.Errorf("want error for a missing font file")
	}
	if _, err := ParseFace([]byte("not a font"), 8); err == nil {
		t.Errorf("want error for garbage font data")
	}
}

func TestQRCode(t *testing.T) {
	img, err := QRCode("", 40)
	if err != nil || img != nil {
		t.Errorf("empty payload = %v, %v", img, err)
	}
	img, err = QRCode("http://10.0.0.1:8080", 46)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Dx(); got != 46 {
		t.Errorf("width = %d, want 46", got)
	}
}
