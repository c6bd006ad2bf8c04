// Package layout holds rectangle helpers for laying out frame content on a
// small panel.
package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Screen returns the full panel rectangle shifted by a frame's draw offset.
func Screen(width, height, offsetX, offsetY int) image.Rectangle {
	return image.Rect(0, 0, width, height).Add(image.Pt(offsetX, offsetY))
}

// Inset shrinks rect by paddingPx on all sides. It never inverts the rect;
// a padding larger than half the size collapses it to its center.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	rect = Normalize(rect)
	if paddingPx <= 0 {
		return rect
	}
	padX := min(paddingPx, rect.Dx()/2)
	padY := min(paddingPx, rect.Dy()/2)
	return image.Rect(rect.Min.X+padX, rect.Min.Y+padY, rect.Max.X-padX, rect.Max.Y-padY)
}

// Center places a widthPx x heightPx rectangle in the middle of rect.
// The size is clamped to rect.
func Center(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	widthPx = clamp(widthPx, 0, rect.Dx())
	heightPx = clamp(heightPx, 0, rect.Dy())
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}

// FitSquare returns the largest square centered in rect.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := min(rect.Dx(), rect.Dy())
	return Center(rect, size, size)
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	topHeightPx = clamp(topHeightPx, 0, rect.Dy())
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// Progress returns the leading part of rect covering percent of its width.
func Progress(rect image.Rectangle, percent int) image.Rectangle {
	rect = Normalize(rect)
	percent = clamp(percent, 0, 100)
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+rect.Dx()*percent/100, rect.Max.Y)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
