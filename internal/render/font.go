package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font names understood by LoadFace besides file paths.
const (
	FontBasic = "basic"
	FontGo    = "go"
)

// LoadFace resolves a font setting to a face. "" and "basic" select the
// 7x13 bitmap font, "go" the embedded Go Regular, anything else is read as
// an OpenType/TrueType file. size is in points at 72 DPI so one point is one
// panel pixel.
func LoadFace(name string, size float64) (font.Face, error) {
	if size <= 0 {
		size = 8
	}
	switch name {
	case "", FontBasic:
		return basicfont.Face7x13, nil
	case FontGo:
		return ParseFace(goregular.TTF, size)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", name, err)
	}
	return ParseFace(data, size)
}

// ParseFace builds a face from font bytes. OpenType parsing is tried first;
// freetype's TrueType parser handles older files opentype rejects.
func ParseFace(data []byte, size float64) (font.Face, error) {
	if fnt, err := opentype.Parse(data); err == nil {
		face, ferr := opentype.NewFace(fnt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
		if ferr == nil {
			return face, nil
		}
	}
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}
