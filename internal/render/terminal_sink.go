package render

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/term"
)

// TerminalSink draws commits into a terminal using upper half blocks, two
// panel rows per text row, in 24-bit color.
type TerminalSink struct {
	W io.Writer

	// Home moves the cursor to the top-left before each frame so the
	// picture redraws in place. It defaults to on when W is a terminal.
	Home bool
}

func NewTerminalSink(w io.Writer) *TerminalSink {
	home := false
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		home = true
	}
	return &TerminalSink{W: w, Home: home}
}

func (s *TerminalSink) Flush(img *image.RGBA) error {
	if s.W == nil {
		return nil
	}
	buf := bufio.NewWriter(s.W)
	if s.Home {
		buf.WriteString("\x1b[H")
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			fmt.Fprintf(buf, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		buf.WriteString("\x1b[0m\r\n")
	}
	return buf.Flush()
}
