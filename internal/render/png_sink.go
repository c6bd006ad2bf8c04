package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// PNGSink writes every commit to a PNG file, replacing it atomically so a
// viewer polling the file never sees a partial image.
type PNGSink struct {
	Path  string
	Scale int
}

func (s PNGSink) Flush(img *image.RGBA) error {
	if s.Path == "" {
		return nil
	}
	var out image.Image = img
	if s.Scale > 1 {
		b := img.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*s.Scale, b.Dy()*s.Scale))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, xdraw.Src, nil)
		out = scaled
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), ".lcdui-*.png")
	if err != nil {
		return fmt.Errorf("png sink: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if err := png.Encode(tmp, out); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("png sink encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("png sink: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("png sink rename: %w", err)
	}
	return nil
}
