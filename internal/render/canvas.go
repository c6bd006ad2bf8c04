package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/go-wordwrap"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is an offscreen Surface backed by an RGBA image. Display pushes
// the image to every configured Sink.
type Canvas struct {
	img      *image.RGBA
	face     font.Face
	cursor   image.Point
	textSize int
	wrap     bool
	sinks    []Sink

	Foreground color.Color
	Background color.Color
	Logger     interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

// NewCanvas returns a cleared canvas of the given size. A nil face falls back
// to basicfont.Face7x13.
func NewCanvas(width, height int, face font.Face, sinks ...Sink) *Canvas {
	if face == nil {
		face = basicfont.Face7x13
	}
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		face:       face,
		textSize:   1,
		wrap:       true,
		sinks:      sinks,
		Foreground: Foreground,
		Background: Background,
	}
	c.Clear()
	return c
}

// AddSink appends a sink to receive future commits.
func (c *Canvas) AddSink(sink Sink) { c.sinks = append(c.sinks, sink) }

// Image exposes the offscreen buffer. Callers must not retain it across
// Display calls if they expect a stable copy.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: c.Background}, image.Point{}, draw.Src)
	c.cursor = image.Point{}
}

func (c *Canvas) SetCursor(x, y int) { c.cursor = image.Pt(x, y) }

func (c *Canvas) Cursor() (int, int) { return c.cursor.X, c.cursor.Y }

func (c *Canvas) SetTextSize(size int) {
	if size < 1 {
		size = 1
	}
	c.textSize = size
}

func (c *Canvas) SetTextWrap(wrap bool) { c.wrap = wrap }

func (c *Canvas) MeasureText(text string) TextMetrics {
	metrics := c.face.Metrics()
	ascent := metrics.Ascent.Ceil() * c.textSize
	descent := metrics.Descent.Ceil() * c.textSize
	lineHeight := metrics.Height.Ceil() * c.textSize
	width := font.MeasureString(c.face, text).Ceil() * c.textSize
	return TextMetrics{Width: width, Height: ascent + descent, Ascent: ascent, Descent: descent, LineHeight: lineHeight}
}

// Print draws text at the cursor and advances it. Newlines return the cursor
// to the left edge. With wrapping enabled, text is broken at word boundaries
// so it fits between the cursor and the right edge.
func (c *Canvas) Print(text string) {
	if text == "" {
		return
	}
	width, _ := c.Size()
	lineHeight := c.MeasureText("").LineHeight
	lines := strings.Split(text, "\n")
	if c.wrap {
		lines = c.wrapLines(lines, width)
	}
	for i, line := range lines {
		if i > 0 {
			c.cursor.X = 0
			c.cursor.Y += lineHeight
		}
		if line == "" {
			continue
		}
		c.drawString(line, c.cursor)
		c.cursor.X += c.MeasureText(line).Width
	}
}

// wrapLines breaks lines into columns sized by the face's cell width.
// The first line is wrapped against the space right of the cursor.
func (c *Canvas) wrapLines(lines []string, width int) []string {
	cell := c.cellWidth()
	if cell <= 0 {
		return lines
	}
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		avail := width
		if i == 0 {
			avail -= c.cursor.X
		}
		cols := avail / cell
		if cols < 1 {
			cols = 1
		}
		for _, wrapped := range strings.Split(wordwrap.WrapString(line, uint(cols)), "\n") {
			// wordwrap keeps words longer than the limit intact; cut them hard.
			for runewidth.StringWidth(wrapped) > cols {
				head := runewidth.Truncate(wrapped, cols, "")
				if head == "" {
					break
				}
				out = append(out, head)
				wrapped = wrapped[len(head):]
			}
			out = append(out, wrapped)
		}
	}
	return out
}

func (c *Canvas) cellWidth() int {
	advance, ok := c.face.GlyphAdvance('M')
	if !ok {
		return 0
	}
	return advance.Ceil() * c.textSize
}

// drawString renders a single line with its top-left corner at pos.
func (c *Canvas) drawString(text string, pos image.Point) {
	src := image.NewUniform(c.Foreground)
	ascent := c.face.Metrics().Ascent.Ceil()
	if c.textSize == 1 {
		drawer := &font.Drawer{Dst: c.img, Src: src, Face: c.face}
		drawer.Dot = fixed.P(pos.X, pos.Y+ascent)
		drawer.DrawString(text)
		return
	}
	// Render at native size, then scale up with crisp pixels.
	m := c.face.Metrics()
	w := font.MeasureString(c.face, text).Ceil()
	h := m.Ascent.Ceil() + m.Descent.Ceil()
	if w <= 0 || h <= 0 {
		return
	}
	temp := image.NewRGBA(image.Rect(0, 0, w, h))
	drawer := &font.Drawer{Dst: temp, Src: src, Face: c.face, Dot: fixed.P(0, ascent)}
	drawer.DrawString(text)
	dst := image.Rect(pos.X, pos.Y, pos.X+w*c.textSize, pos.Y+h*c.textSize)
	xdraw.NearestNeighbor.Scale(c.img, dst, temp, temp.Bounds(), xdraw.Over, nil)
}

func (c *Canvas) DrawPixel(x, y int) {
	if !image.Pt(x, y).In(c.img.Bounds()) {
		return
	}
	c.img.Set(x, y, c.Foreground)
}

// DrawLine uses Bresenham so lines stay one pixel wide on a monochrome panel.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.DrawPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *Canvas) DrawRect(rect image.Rectangle) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	maxX, maxY := rect.Max.X-1, rect.Max.Y-1
	c.DrawLine(rect.Min.X, rect.Min.Y, maxX, rect.Min.Y)
	c.DrawLine(rect.Min.X, maxY, maxX, maxY)
	c.DrawLine(rect.Min.X, rect.Min.Y, rect.Min.X, maxY)
	c.DrawLine(maxX, rect.Min.Y, maxX, maxY)
}

func (c *Canvas) FillRect(rect image.Rectangle) {
	draw.Draw(c.img, rect.Canon().Intersect(c.img.Bounds()), &image.Uniform{C: c.Foreground}, image.Point{}, draw.Src)
}

// DrawCircle draws a midpoint circle outline.
func (c *Canvas) DrawCircle(cx, cy, radius int) {
	if radius <= 0 {
		c.DrawPixel(cx, cy)
		return
	}
	x, y := radius, 0
	e := 1 - radius
	for x >= y {
		c.DrawPixel(cx+x, cy+y)
		c.DrawPixel(cx+y, cy+x)
		c.DrawPixel(cx-y, cy+x)
		c.DrawPixel(cx-x, cy+y)
		c.DrawPixel(cx-x, cy-y)
		c.DrawPixel(cx-y, cy-x)
		c.DrawPixel(cx+y, cy-x)
		c.DrawPixel(cx+x, cy-y)
		y++
		if e < 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2*(y-x) + 1
		}
	}
}

func (c *Canvas) FillCircle(cx, cy, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius+radius {
				c.DrawPixel(cx+dx, cy+dy)
			}
		}
	}
}

func (c *Canvas) DrawImage(img image.Image, x, y int) {
	if img == nil {
		return
	}
	b := img.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(c.img, dst, img, b.Min, draw.Over)
}

// Display flushes the buffer to every sink. All sinks are attempted even if
// one fails.
func (c *Canvas) Display() error {
	var errs []error
	for _, sink := range c.sinks {
		if err := sink.Flush(c.img); err != nil {
			if c.Logger != nil {
				c.Logger.Errorf("render", "sink flush failed: %v", err)
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
