package render

import "image/color"

// Palette and geometry defaults for the PCD8544 style panel.
var (
	// Foreground is the "pixel on" color, Background the lit panel.
	Foreground = color.RGBA{R: 0x1E, G: 0x24, B: 0x1C, A: 0xFF} // #1e241c
	Background = color.RGBA{R: 0xA7, G: 0xC0, B: 0x8E, A: 0xFF} // #a7c08e

	// Native panel size in pixels; sinks scale up from here.
	DefaultWidth  = 84
	DefaultHeight = 48
)
