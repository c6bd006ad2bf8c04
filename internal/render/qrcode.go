package render

import (
	"image"

	"github.com/skip2/go-qrcode"
)

// QRCode renders payload as a borderless QR code in the panel palette,
// sized to sizePx square. An empty payload returns (nil, nil).
func QRCode(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = DefaultHeight
	}

	code, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return nil, err
	}
	code.DisableBorder = true
	code.ForegroundColor = Foreground
	code.BackgroundColor = Background

	return code.Image(sizePx), nil
}
