//go:build linux

package buttons

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// KeyboardButtons reads key presses from every evdev device matching Glob.
type KeyboardButtons struct {
	Glob   string
	Logger Logger

	ch     chan Event
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewKeyboardButtons() *KeyboardButtons {
	return &KeyboardButtons{Glob: "/dev/input/event*", Logger: nopLogger{}, ch: make(chan Event, 8)}
}

func (k *KeyboardButtons) Events() <-chan Event { return k.ch }

// Start is best-effort: with no input devices it logs and returns nil.
func (k *KeyboardButtons) Start(ctx context.Context) error {
	paths, err := filepath.Glob(k.Glob)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		k.Logger.Infof("input", "no evdev devices match %s", k.Glob)
		return nil
	}

	ctx, k.cancel = context.WithCancel(ctx)
	tvSize := binary.Size(unix.Timeval{})
	for _, path := range paths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			k.Logger.Errorf("input", "open %s: %v", path, err)
			continue
		}
		k.Logger.Infof("input", "reading keys from %s", path)
		k.wg.Add(1)
		go func() {
			defer k.wg.Done()
			k.read(ctx, os.NewFile(uintptr(fd), path), tvSize)
		}()
	}
	return nil
}

func (k *KeyboardButtons) read(ctx context.Context, f *os.File, tvSize int) {
	defer f.Close()
	fd := int(f.Fd())
	buf := make([]byte, 4096)
	for ctx.Err() == nil {
		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			// Device went away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
				continue
			}
			return
		}
		for _, ev := range decodeInputEvents(buf[:n], tvSize) {
			if !send(ctx, k.ch, ev) {
				return
			}
		}
	}
}

func (k *KeyboardButtons) Stop() error {
	if k.cancel != nil {
		k.cancel()
	}
	k.wg.Wait()
	return nil
}
