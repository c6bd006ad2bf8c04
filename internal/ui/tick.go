package ui

import "time"

// Update ticks the engine if at least one refresh interval has passed since
// the previous tick, and returns how long the host can sleep before the
// next tick is due. Calling it early is a cheap no-op.
func (ui *UI) Update() time.Duration {
	start := ui.clock.Now()
	last := ui.state.lastUpdate
	if !last.IsZero() {
		budget := ui.updateInterval - start.Sub(last)
		if budget > 0 {
			return budget
		}
		if ui.autoTransition && budget < 0 {
			// Count the intervals that were missed so frame timing follows
			// wall time when the host falls behind.
			late := -budget
			ui.state.ticks += int((late + ui.updateInterval - 1) / ui.updateInterval)
		}
	}
	ui.state.lastUpdate = start
	ui.tick()
	return max(ui.updateInterval-ui.clock.Now().Sub(start), 0)
}

func (ui *UI) tick() {
	st := &ui.state
	st.ticks++

	if t := st.transition; t != nil {
		if st.ticks >= t.Ticks {
			ui.completeTransition()
		}
	} else if st.ticks >= ui.ticksPerFrame {
		if ui.autoTransition && len(ui.frames) > 1 {
			ui.startTransition(ui.wrap(st.currentFrame+ui.autoDirection), ui.autoDirection, Auto)
		}
		st.ticks = 0
	}

	ui.draw()
}

func (ui *UI) draw() {
	ui.surface.Clear()
	ui.drawFrames()
	if ui.shouldDrawIndicators {
		ui.drawIndicator()
	}
	ui.drawOverlays()
	if err := ui.surface.Display(); err != nil {
		ui.logger.Errorf("ui", "display commit failed: %v", err)
	}
}

// drawFrames draws the visible frame(s) and decides the indicator animation
// for this tick. Both frames of a transition are probed: each starts with
// the indicator enabled and may disable it while drawing.
func (ui *UI) drawFrames() {
	st := &ui.state
	if len(ui.frames) == 0 {
		ui.indicatorDrawState = IndicatorVisibleBoth
		return
	}

	t := st.transition
	if t == nil {
		ui.indicatorDrawState = IndicatorVisibleBoth
		st.indicatorDrawn = true
		ui.frames[st.currentFrame].DrawFrame(ui.surface, st, 0, 0)
		return
	}

	x, y, x1, y1 := ui.offsets(*t)

	st.indicatorDrawn = true
	ui.frames[st.currentFrame].DrawFrame(ui.surface, st, x, y)
	drawnCurrent := st.indicatorDrawn

	st.indicatorDrawn = true
	ui.frames[t.Target].DrawFrame(ui.surface, st, x1, y1)
	drawnNext := st.indicatorDrawn

	ui.indicatorDrawState = indicatorStateFor(drawnCurrent, drawnNext)
	st.indicatorDrawn = drawnCurrent && drawnNext
}

func indicatorStateFor(drawnCurrent, drawnNext bool) IndicatorDrawState {
	switch {
	case drawnCurrent && drawnNext:
		return IndicatorVisibleBoth
	case drawnCurrent:
		return IndicatorDisappearingNext
	case drawnNext:
		return IndicatorAppearingNext
	default:
		return IndicatorHiddenBoth
	}
}

func (ui *UI) drawOverlays() {
	for _, overlay := range ui.overlays {
		overlay.DrawOverlay(ui.surface, &ui.state)
	}
}

// Progress is the completed fraction of the in-flight transition, or 0 when
// no transition is running.
func (ui *UI) Progress() float64 {
	if ui.state.transition == nil {
		return 0
	}
	return ui.state.transitionProgress()
}

func (s *UiState) transitionProgress() float64 {
	t := s.transition
	if t.Ticks <= 0 {
		return 1
	}
	return min(float64(s.ticks)/float64(t.Ticks), 1)
}

// offsets returns the draw offsets of the outgoing (x, y) and incoming
// (x1, y1) frames.
func (ui *UI) offsets(t Transition) (x, y, x1, y1 int) {
	width, height := ui.surface.Size()
	progress := ui.state.transitionProgress()

	switch t.Animation {
	case SlideLeft:
		x = int(-float64(width) * progress)
		x1 = x + width
	case SlideRight:
		x = int(float64(width) * progress)
		x1 = x - width
	case SlideUp:
		y = int(-float64(height) * progress)
		y1 = y + height
	default:
		y = int(float64(height) * progress)
		y1 = y - height
	}

	// A backwards transition mirrors the slide.
	if t.Direction < 0 {
		x, y, x1, y1 = -x, -y, -x1, -y1
	}
	return x, y, x1, y1
}

func (ui *UI) startTransition(target, direction int, origin Origin) {
	st := &ui.state
	st.transition = &Transition{
		Target:    target,
		Origin:    origin,
		Direction: direction,
		Ticks:     ui.ticksPerTransition,
		Animation: ui.frameAnimation,
	}
	st.direction = direction
	st.ticks = 0
	ui.logger.Infof("ui", "%s transition %d -> %d", origin, st.currentFrame, target)
}

func (ui *UI) completeTransition() {
	st := &ui.state
	st.currentFrame = st.transition.Target
	st.transition = nil
	st.ticks = 0
	ui.logger.Infof("ui", "frame %d fixed", st.currentFrame)
}

// NextFrame starts a manual transition to the following frame. It is
// ignored while a transition is running.
func (ui *UI) NextFrame() { ui.step(1) }

// PreviousFrame starts a manual transition to the preceding frame. It is
// ignored while a transition is running.
func (ui *UI) PreviousFrame() { ui.step(-1) }

func (ui *UI) step(direction int) {
	if len(ui.frames) <= 1 {
		return
	}
	if ui.state.transition != nil {
		ui.logger.Infof("ui", "navigation ignored: transition in progress")
		return
	}
	ui.startTransition(ui.wrap(ui.state.currentFrame+direction), direction, Manual)
}

// SwitchToFrame shows frame immediately, without animation, cancelling any
// transition in progress. Out of range indices wrap.
func (ui *UI) SwitchToFrame(frame int) {
	if len(ui.frames) == 0 {
		return
	}
	st := &ui.state
	st.transition = nil
	st.ticks = 0
	st.currentFrame = ui.wrap(frame)
	st.indicatorDrawn = true
	ui.indicatorDrawState = IndicatorVisibleBoth
}

// TransitionToFrame slides to frame, forwards when frame is after the
// current one and backwards otherwise. Out of range indices wrap. It is
// ignored while a transition is running.
func (ui *UI) TransitionToFrame(frame int) {
	if len(ui.frames) <= 1 {
		return
	}
	st := &ui.state
	if st.transition != nil {
		ui.logger.Infof("ui", "navigation ignored: transition in progress")
		return
	}
	frame = ui.wrap(frame)
	if frame == st.currentFrame {
		st.ticks = 0
		return
	}
	direction := 1
	if frame < st.currentFrame {
		direction = -1
	}
	ui.startTransition(frame, direction, Manual)
}

func (ui *UI) wrap(frame int) int {
	n := len(ui.frames)
	return ((frame % n) + n) % n
}
