package ui

import "time"

// FrameState is the phase of the frame cycle.
type FrameState int

const (
	// Fixed shows a single frame without animation.
	Fixed FrameState = iota
	// InTransition slides from the current frame to a target frame.
	InTransition
)

func (s FrameState) String() string {
	switch s {
	case Fixed:
		return "fixed"
	case InTransition:
		return "in_transition"
	default:
		return "unknown"
	}
}

// Origin records who started a transition.
type Origin int

const (
	// Auto transitions are started by the frame timer.
	Auto Origin = iota
	// Manual transitions are requested by the host.
	Manual
)

func (o Origin) String() string {
	if o == Manual {
		return "manual"
	}
	return "auto"
}

// Transition is an in-flight slide between two frames. Duration and
// Animation are captured when the transition starts so configuration
// changes only affect the next one.
type Transition struct {
	Target    int
	Origin    Origin
	Direction int
	Ticks     int
	Animation AnimationDirection
}

// IndicatorDrawState tells the indicator renderer how to animate during the
// current tick.
type IndicatorDrawState int

const (
	// IndicatorVisibleBoth: shown on both frames, or fixed. Drawn static.
	IndicatorVisibleBoth IndicatorDrawState = iota
	// IndicatorAppearingNext: hidden on the current frame, shown on the next.
	// Slides in.
	IndicatorAppearingNext
	// IndicatorDisappearingNext: shown on the current frame, hidden on the
	// next. Slides out.
	IndicatorDisappearingNext
	// IndicatorHiddenBoth: hidden on both frames. Not drawn.
	IndicatorHiddenBoth
)

func (s IndicatorDrawState) String() string {
	switch s {
	case IndicatorVisibleBoth:
		return "visible_both"
	case IndicatorAppearingNext:
		return "appearing_next"
	case IndicatorDisappearingNext:
		return "disappearing_next"
	case IndicatorHiddenBoth:
		return "hidden_both"
	default:
		return "unknown"
	}
}

// UiState is the mutable record the engine advances each tick. Frames and
// overlays receive it while drawing. Only UserData is owned by the caller;
// everything else is read through the getters.
type UiState struct {
	lastUpdate time.Time
	ticks      int

	currentFrame   int
	transition     *Transition
	indicatorDrawn bool
	direction      int

	// UserData is never touched by the engine.
	UserData any
}

func newUiState() UiState {
	return UiState{indicatorDrawn: true, direction: 1}
}

// LastUpdate is the clock time of the last tick.
func (s *UiState) LastUpdate() time.Time { return s.lastUpdate }

// TicksSinceStateSwitch counts ticks since the current phase began.
func (s *UiState) TicksSinceStateSwitch() int { return s.ticks }

func (s *UiState) FrameState() FrameState {
	if s.transition != nil {
		return InTransition
	}
	return Fixed
}

// CurrentFrame is the frame shown, or being transitioned away from.
func (s *UiState) CurrentFrame() int { return s.currentFrame }

// Transition returns the in-flight transition, if any.
func (s *UiState) Transition() (Transition, bool) {
	if s.transition == nil {
		return Transition{}, false
	}
	return *s.transition, true
}

// TransitionDirection is +1 or -1: the sign of the current or most recent
// transition.
func (s *UiState) TransitionDirection() int { return s.direction }

// ManualControl reports whether the in-flight transition was requested by
// the host rather than the frame timer.
func (s *UiState) ManualControl() bool {
	return s.transition != nil && s.transition.Origin == Manual
}

// IndicatorDrawn reports whether the indicator is drawn for the frame
// being drawn.
func (s *UiState) IndicatorDrawn() bool { return s.indicatorDrawn }

// EnableIndicator and DisableIndicator may be called by a frame while it
// draws to show or hide the indicator on that frame.
func (s *UiState) EnableIndicator()  { s.indicatorDrawn = true }
func (s *UiState) DisableIndicator() { s.indicatorDrawn = false }
