package render

import (
	"fmt"
	"image"
	"sync"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
)

// DefaultFBDevice is the framebuffer opened when no path is given.
const DefaultFBDevice = "/dev/fb0"

// FBSink commits canvases to a Linux framebuffer device, scaling the small
// logical panel up to the device resolution with nearest-neighbor sampling.
type FBSink struct {
	Path   string
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	mu  sync.Mutex
	dev *fb.Device
}

func NewFBSink(path string) *FBSink {
	if path == "" {
		path = DefaultFBDevice
	}
	return &FBSink{Path: path}
}

// Open maps the framebuffer device. It is safe to call more than once.
func (s *FBSink) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dev != nil {
		return nil
	}
	dev, err := fb.Open(s.Path)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", s.Path, err)
	}
	s.dev = dev
	if s.Logger != nil {
		bounds := dev.Bounds()
		s.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	return nil
}

func (s *FBSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dev != nil {
		s.dev.Close()
		s.dev = nil
	}
	return nil
}

func (s *FBSink) Flush(img *image.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dev == nil {
		return fmt.Errorf("framebuffer %s not open", s.Path)
	}
	xdraw.NearestNeighbor.Scale(s.dev, s.dev.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return nil
}
