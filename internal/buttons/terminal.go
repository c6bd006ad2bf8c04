package buttons

import (
	"context"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// TerminalButtons reads keys from a terminal in raw mode.
type TerminalButtons struct {
	In     *os.File
	Logger Logger

	ch       chan Event
	mu       sync.Mutex
	oldState *term.State
}

func NewTerminalButtons(in *os.File) *TerminalButtons {
	return &TerminalButtons{In: in, Logger: nopLogger{}, ch: make(chan Event, 8)}
}

func (t *TerminalButtons) Events() <-chan Event { return t.ch }

// Start switches the terminal to raw mode when In is a terminal. Input that
// is not a terminal is still read, which lets keys be piped in.
func (t *TerminalButtons) Start(ctx context.Context) error {
	fd := int(t.In.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		t.mu.Lock()
		t.oldState = old
		t.mu.Unlock()
	}
	go t.read(ctx)
	return nil
}

// The read blocks until input arrives, so the goroutine only notices a
// cancelled context on the next key.
func (t *TerminalButtons) read(ctx context.Context) {
	buf := make([]byte, 64)
	for {
		n, err := t.In.Read(buf)
		for _, ev := range DecodeKeys(buf[:n]) {
			if !send(ctx, t.ch, ev) {
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				t.Logger.Errorf("input", "terminal read: %v", err)
			}
			return
		}
	}
}

// Stop restores the terminal mode saved by Start.
func (t *TerminalButtons) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(int(t.In.Fd()), t.oldState)
	t.oldState = nil
	return err
}

// DecodeKeys maps raw terminal input to events: arrow keys, n/p and l/h
// step, 1-9 slide to a frame, 0 jumps to the first frame and q or Ctrl-C
// exit. Anything else is dropped.
func DecodeKeys(in []byte) []Event {
	var events []Event
	for i := 0; i < len(in); i++ {
		switch b := in[i]; {
		case b == 0x1b && i+2 < len(in) && in[i+1] == '[':
			switch in[i+2] {
			case 'C':
				events = append(events, Event{Kind: Next})
			case 'D':
				events = append(events, Event{Kind: Previous})
			}
			i += 2
		case b == 'n' || b == 'l':
			events = append(events, Event{Kind: Next})
		case b == 'p' || b == 'h':
			events = append(events, Event{Kind: Previous})
		case b >= '1' && b <= '9':
			events = append(events, Event{Kind: Goto, Frame: int(b - '1')})
		case b == '0':
			events = append(events, Event{Kind: Jump})
		case b == 'q' || b == 0x03:
			events = append(events, Event{Kind: Exit})
		}
	}
	return events
}
