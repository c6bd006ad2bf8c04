package ui

import "image"

const (
	indicatorCell           = 8
	indicatorSpacing        = 12
	indicatorSpacingCompact = 6
	indicatorCompactBelow   = 64
)

// indicatorLayout is where the markers go on this tick.
type indicatorLayout struct {
	cells     []image.Point // top-left corner of each marker cell
	highlight int           // index into cells of the active marker
	compact   bool
}

// layoutIndicator positions one marker per frame along the configured edge.
// ok is false when nothing should be drawn.
func (ui *UI) layoutIndicator() (layout indicatorLayout, ok bool) {
	n := len(ui.frames)
	st := &ui.state
	if n == 0 {
		return layout, false
	}
	if ui.indicatorDrawState == IndicatorHiddenBoth || (!st.indicatorDrawn && st.transition == nil) {
		return layout, false
	}

	// While sliding in, the marker of the incoming frame is the one lit.
	highlight := st.currentFrame
	if ui.indicatorDrawState == IndicatorAppearingNext && st.transition != nil {
		highlight = st.transition.Target
	}
	if ui.indicatorDirection == RightLeft {
		highlight = n - 1 - highlight
	}

	width, height := ui.surface.Size()
	vertical := ui.indicatorPosition == Left || ui.indicatorPosition == Right
	spacing := indicatorSpacing
	if vertical && height < indicatorCompactBelow {
		spacing = indicatorSpacingCompact
		layout.compact = true
	}
	start := spacing * n / 2
	shift := int(indicatorCell * ui.indicatorFade())

	layout.cells = make([]image.Point, n)
	layout.highlight = highlight
	for i := range layout.cells {
		var p image.Point
		switch ui.indicatorPosition {
		case Top:
			p = image.Pt(width/2-start+spacing*i, -shift)
		case Bottom:
			p = image.Pt(width/2-start+spacing*i, height-indicatorCell+shift)
		case Right:
			p = image.Pt(width-indicatorCell+shift, height/2-start+2+spacing*i)
		default:
			p = image.Pt(-shift, height/2-start+2+spacing*i)
		}
		layout.cells[i] = p
	}
	return layout, true
}

// indicatorFade is how far the indicator has slid off its edge, from 0
// (fully shown) to 1 (fully hidden).
func (ui *UI) indicatorFade() float64 {
	st := &ui.state
	if st.transition == nil {
		return 0
	}
	progress := st.transitionProgress()
	switch ui.indicatorDrawState {
	case IndicatorAppearingNext:
		return 1 - progress
	case IndicatorDisappearingNext:
		return progress
	default:
		return 0
	}
}

func (ui *UI) drawIndicator() {
	layout, ok := ui.layoutIndicator()
	if !ok {
		return
	}
	radius := indicatorCell/2 - 1
	if layout.compact {
		radius = indicatorSpacingCompact/2 - 1
	}
	center := indicatorCell / 2
	for i, p := range layout.cells {
		if i == layout.highlight {
			ui.surface.FillCircle(p.X+center, p.Y+center, radius)
		} else {
			ui.surface.DrawCircle(p.X+center, p.Y+center, radius)
		}
	}
}
