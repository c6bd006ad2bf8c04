package ui

import (
	"fmt"
	"image"
	"time"

	"github.com/rook-computer/lcdui/internal/render"
)

// recordingSurface logs every primitive as a short string.
type recordingSurface struct {
	width, height int
	ops           []string
	commits       int
	commitErr     error
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{width: 84, height: 48}
}

func (s *recordingSurface) record(format string, args ...interface{}) {
	s.ops = append(s.ops, fmt.Sprintf(format, args...))
}

func (s *recordingSurface) reset() { s.ops = nil }

func (s *recordingSurface) Size() (int, int)      { return s.width, s.height }
func (s *recordingSurface) Clear()                { s.record("clear") }
func (s *recordingSurface) SetCursor(x, y int)    { s.record("cursor %d,%d", x, y) }
func (s *recordingSurface) Cursor() (int, int)    { return 0, 0 }
func (s *recordingSurface) SetTextSize(size int)  {}
func (s *recordingSurface) SetTextWrap(wrap bool) {}
func (s *recordingSurface) Print(text string)     { s.record("print %s", text) }
func (s *recordingSurface) MeasureText(text string) render.TextMetrics {
	return render.TextMetrics{Width: 6 * len(text), Height: 8, LineHeight: 9}
}
func (s *recordingSurface) DrawPixel(x, y int)            { s.record("pixel %d,%d", x, y) }
func (s *recordingSurface) DrawLine(x0, y0, x1, y1 int)   { s.record("line") }
func (s *recordingSurface) DrawRect(rect image.Rectangle) { s.record("rect %v", rect) }
func (s *recordingSurface) FillRect(rect image.Rectangle) { s.record("fillrect %v", rect) }
func (s *recordingSurface) DrawCircle(cx, cy, radius int) {
	s.record("circle %d,%d r%d", cx, cy, radius)
}
func (s *recordingSurface) FillCircle(cx, cy, radius int) {
	s.record("disc %d,%d r%d", cx, cy, radius)
}
func (s *recordingSurface) DrawImage(img image.Image, x, y int) { s.record("image %d,%d", x, y) }
func (s *recordingSurface) Display() error {
	s.commits++
	s.record("display")
	return s.commitErr
}

// recordingFrame logs its index and draw offset on the surface it is given.
// hideIndicator makes it disable the indicator while drawing.
type recordingFrame struct {
	index         int
	hideIndicator bool
}

func (f recordingFrame) DrawFrame(s render.Surface, st *UiState, x, y int) {
	s.(*recordingSurface).record("frame %d @%d,%d", f.index, x, y)
	if f.hideIndicator {
		st.DisableIndicator()
	}
}

func makeFrames(n int, hidden ...int) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = recordingFrame{index: i}
	}
	for _, h := range hidden {
		frames[h] = recordingFrame{index: h, hideIndicator: true}
	}
	return frames
}

type fakeClock struct{ now time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestUI returns an engine with n recording frames, 100 ticks per frame
// and 10 ticks per transition.
func newTestUI(n int) (*UI, *recordingSurface) {
	surface := newRecordingSurface()
	ui := New(surface)
	ui.SetFrames(makeFrames(n))
	ui.SetTicksPerFrame(100)
	ui.SetTicksPerTransition(10)
	return ui, surface
}

func tickN(ui *UI, n int) {
	for i := 0; i < n; i++ {
		ui.tick()
	}
}

// frameOps filters the surface log down to frame draws.
func frameOps(ops []string) []string {
	var out []string
	for _, op := range ops {
		if len(op) > 6 && op[:6] == "frame " {
			out = append(out, op)
		}
	}
	return out
}
