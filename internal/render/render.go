package render

import (
	"image"
)

// Surface is the pixel-addressable display the UI engine draws on.
// Coordinates use a top-left origin; the text cursor addresses the
// top-left corner of the next glyph cell.
type Surface interface {
	// Size returns the fixed display size in pixels.
	Size() (width int, height int)

	// Clear resets the offscreen buffer to the background color.
	Clear()

	// Text primitives.
	SetCursor(x, y int)
	Cursor() (x, y int)
	SetTextSize(size int)
	SetTextWrap(wrap bool)
	Print(text string)
	MeasureText(text string) TextMetrics

	// Shape primitives. Shapes are drawn in the foreground color.
	DrawPixel(x, y int)
	DrawLine(x0, y0, x1, y1 int)
	DrawRect(rect image.Rectangle)
	FillRect(rect image.Rectangle)
	DrawCircle(cx, cy, radius int)
	FillCircle(cx, cy, radius int)
	DrawImage(img image.Image, x, y int)

	// Display commits the offscreen buffer to the physical display.
	Display() error
}

// TextMetrics describes the extent of a string at the current text size.
type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}

// Sink receives the committed buffer of a Canvas.
type Sink interface {
	Flush(img *image.RGBA) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(img *image.RGBA) error

func (f SinkFunc) Flush(img *image.RGBA) error { return f(img) }

// NoopSurface discards all drawing. Useful for headless runs.
type NoopSurface struct {
	Width  int
	Height int
}

func (n *NoopSurface) Size() (int, int)                    { return n.Width, n.Height }
func (n *NoopSurface) Clear()                              {}
func (n *NoopSurface) SetCursor(x, y int)                  {}
func (n *NoopSurface) Cursor() (int, int)                  { return 0, 0 }
func (n *NoopSurface) SetTextSize(size int)                {}
func (n *NoopSurface) SetTextWrap(wrap bool)               {}
func (n *NoopSurface) Print(text string)                   {}
func (n *NoopSurface) MeasureText(text string) TextMetrics { return TextMetrics{} }
func (n *NoopSurface) DrawPixel(x, y int)                  {}
func (n *NoopSurface) DrawLine(x0, y0, x1, y1 int)         {}
func (n *NoopSurface) DrawRect(rect image.Rectangle)       {}
func (n *NoopSurface) FillRect(rect image.Rectangle)       {}
func (n *NoopSurface) DrawCircle(cx, cy, radius int)       {}
func (n *NoopSurface) FillCircle(cx, cy, radius int)       {}
func (n *NoopSurface) DrawImage(img image.Image, x, y int) {}
func (n *NoopSurface) Display() error                      { return nil }
