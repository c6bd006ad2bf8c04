// Package frames provides stock frames and overlays for the binaries.
// Every frame draws relative to the offset it is given.
package frames

import (
	"image"
	"strings"
	"time"

	"github.com/mitchellh/go-wordwrap"

	"github.com/rook-computer/lcdui/internal/render"
	"github.com/rook-computer/lcdui/internal/render/layout"
	"github.com/rook-computer/lcdui/internal/ui"
)

const margin = 2

// TextFrame shows a centered title over wrapped body text.
type TextFrame struct {
	Title string
	Body  string
}

func (f TextFrame) DrawFrame(s render.Surface, st *ui.UiState, x, y int) {
	width, _ := s.Size()
	s.SetTextSize(1)
	s.SetTextWrap(false)
	top := y + margin
	if f.Title != "" {
		m := s.MeasureText(f.Title)
		s.SetCursor(x+(width-m.Width)/2, top)
		s.Print(f.Title)
		top += m.LineHeight + margin
	}
	if f.Body != "" {
		printWrapped(s, f.Body, x+margin, top, width-2*margin)
	}
}

// printWrapped word-wraps text into widthPx and prints it line by line from
// (x, y). Surface wrapping returns to column 0, not to x.
func printWrapped(s render.Surface, text string, x, y, widthPx int) {
	cell := s.MeasureText("M")
	cols := 1
	if cell.Width > 0 {
		cols = max(widthPx/cell.Width, 1)
	}
	s.SetTextWrap(false)
	for _, line := range strings.Split(wordwrap.WrapString(text, uint(cols)), "\n") {
		s.SetCursor(x, y)
		s.Print(line)
		y += cell.LineHeight
	}
}

// ClockFrame shows the time in large digits.
type ClockFrame struct {
	// Now defaults to time.Now.
	Now func() time.Time
	// Layout defaults to "15:04".
	Layout string
	Size   int
}

func (f ClockFrame) DrawFrame(s render.Surface, st *ui.UiState, x, y int) {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	format := f.Layout
	if format == "" {
		format = "15:04"
	}
	size := f.Size
	if size <= 0 {
		size = 2
	}

	width, height := s.Size()
	text := now().Format(format)
	s.SetTextWrap(false)
	s.SetTextSize(size)
	m := s.MeasureText(text)
	box := layout.Center(layout.Screen(width, height, x, y), m.Width, m.Height)
	s.SetCursor(box.Min.X, box.Min.Y)
	s.Print(text)
	s.SetTextSize(1)
}

// StatusFrame lists lines produced on every draw under a ruled title.
type StatusFrame struct {
	Title string
	Lines func(st *ui.UiState) []string
}

func (f StatusFrame) DrawFrame(s render.Surface, st *ui.UiState, x, y int) {
	width, height := s.Size()
	s.SetTextSize(1)
	s.SetTextWrap(false)

	m := s.MeasureText(f.Title)
	header, body := layout.SplitHorizontal(layout.Screen(width, height, x, y), m.LineHeight+margin)
	s.SetCursor(header.Min.X+margin, header.Min.Y+1)
	s.Print(f.Title)
	s.DrawLine(header.Min.X, header.Max.Y-1, header.Max.X-1, header.Max.Y-1)

	if f.Lines == nil {
		return
	}
	cursor := body.Min.Y + 1
	for _, line := range f.Lines(st) {
		if cursor >= body.Max.Y {
			break
		}
		s.SetCursor(body.Min.X+margin, cursor)
		s.Print(line)
		cursor += m.LineHeight
	}
}

// QRFrame shows a QR code filling the panel height with an optional caption
// to its right. It hides the frame indicator, which would cover the code.
type QRFrame struct {
	Payload string
	Caption string

	code image.Image
	size int
	err  error
}

func NewQRFrame(payload, caption string) *QRFrame {
	return &QRFrame{Payload: payload, Caption: caption}
}

func (f *QRFrame) DrawFrame(s render.Surface, st *ui.UiState, x, y int) {
	st.DisableIndicator()
	width, height := s.Size()
	square := layout.FitSquare(layout.Inset(image.Rect(0, 0, width, height), 1))
	if f.Caption != "" {
		square = square.Sub(image.Pt(square.Min.X-1, 0))
	}

	code, err := f.image(square.Dx())
	if err != nil || code == nil {
		TextFrame{Title: "QR", Body: f.Payload}.DrawFrame(s, st, x, y)
		return
	}
	s.DrawImage(code, x+square.Min.X, y+square.Min.Y)

	if f.Caption != "" {
		s.SetTextSize(1)
		left := square.Max.X + margin
		printWrapped(s, f.Caption, x+left, y+margin, width-left)
	}
}

// image renders the code once per size.
func (f *QRFrame) image(side int) (image.Image, error) {
	if f.size != side {
		f.code, f.err = render.QRCode(f.Payload, side)
		f.size = side
	}
	return f.code, f.err
}

// TimeOverlay prints the time in a bracket in the top right corner.
type TimeOverlay struct {
	Now func() time.Time
}

func (o TimeOverlay) DrawOverlay(s render.Surface, st *ui.UiState) {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	width, _ := s.Size()
	text := now().Format("15:04")
	s.SetTextSize(1)
	s.SetTextWrap(false)
	m := s.MeasureText(text)
	left := width - m.Width - 1
	s.DrawLine(left-2, 0, left-2, m.Height)
	s.DrawLine(left-2, m.Height, width-1, m.Height)
	s.SetCursor(left, 0)
	s.Print(text)
}
