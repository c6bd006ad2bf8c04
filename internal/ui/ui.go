// Package ui cycles a set of frames on a small display. It slides between
// frames on a tick-driven timer or on request, composites overlays on top
// and draws an indicator showing the active frame.
//
// A UI is not safe for concurrent use. Hosts drive it from one control
// loop: call Update on a regular cadence and apply navigation requests from
// the same goroutine.
package ui

import (
	"time"

	"github.com/rook-computer/lcdui/internal/render"
)

// AnimationDirection selects how frames slide during a transition.
type AnimationDirection int

const (
	SlideUp AnimationDirection = iota
	SlideDown
	SlideLeft
	SlideRight
)

func (d AnimationDirection) String() string {
	switch d {
	case SlideUp:
		return "slide_up"
	case SlideDown:
		return "slide_down"
	case SlideLeft:
		return "slide_left"
	case SlideRight:
		return "slide_right"
	default:
		return "unknown"
	}
}

// IndicatorPosition is the panel edge the indicator is drawn along.
type IndicatorPosition int

const (
	Top IndicatorPosition = iota
	Right
	Bottom
	Left
)

func (p IndicatorPosition) String() string {
	switch p {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// IndicatorDirection orders the indicator markers.
type IndicatorDirection int

const (
	// LeftRight places frame 0 first.
	LeftRight IndicatorDirection = iota
	// RightLeft places frame 0 last.
	RightLeft
)

func (d IndicatorDirection) String() string {
	if d == RightLeft {
		return "right_left"
	}
	return "left_right"
}

// Frame draws one full-screen unit of the cycle. It must draw everything
// relative to (x, y) so two frames can share the panel mid-transition.
type Frame interface {
	DrawFrame(s render.Surface, st *UiState, x, y int)
}

// FrameFunc adapts a function to a Frame.
type FrameFunc func(s render.Surface, st *UiState, x, y int)

func (f FrameFunc) DrawFrame(s render.Surface, st *UiState, x, y int) { f(s, st, x, y) }

// Overlay is drawn on every tick on top of the frames, without offset.
type Overlay interface {
	DrawOverlay(s render.Surface, st *UiState)
}

// OverlayFunc adapts a function to an Overlay.
type OverlayFunc func(s render.Surface, st *UiState)

func (f OverlayFunc) DrawOverlay(s render.Surface, st *UiState) { f(s, st) }

// Logger is the component logger used across the app.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(component, format string, args ...interface{})  {}
func (nopLogger) Errorf(component, format string, args ...interface{}) {}

const (
	defaultUpdateInterval    = 33 * time.Millisecond
	defaultTimePerFrame      = 5000 * time.Millisecond
	defaultTimePerTransition = 500 * time.Millisecond
)

// UI is the frame-cycling engine.
type UI struct {
	surface render.Surface
	clock   Clock
	logger  Logger

	indicatorPosition    IndicatorPosition
	indicatorDirection   IndicatorDirection
	frameAnimation       AnimationDirection
	shouldDrawIndicators bool

	updateInterval     time.Duration
	timePerFrame       time.Duration
	timePerTransition  time.Duration
	ticksPerFrame      int
	ticksPerTransition int

	autoTransition bool
	autoDirection  int

	frames   []Frame
	overlays []Overlay

	indicatorDrawState IndicatorDrawState
	loadingDrawer      LoadingDrawer

	state UiState
}

// New returns an engine drawing on surface with the default configuration:
// about 30 updates per second, 5s per frame, 0.5s per transition, sliding
// right, indicator at the bottom.
func New(surface render.Surface) *UI {
	ui := &UI{
		surface:              surface,
		clock:                systemClock{},
		logger:               nopLogger{},
		indicatorPosition:    Bottom,
		indicatorDirection:   LeftRight,
		frameAnimation:       SlideRight,
		shouldDrawIndicators: true,
		updateInterval:       defaultUpdateInterval,
		autoTransition:       true,
		autoDirection:        1,
		loadingDrawer:        DefaultLoadingDrawer{},
		state:                newUiState(),
	}
	ui.SetTimePerFrame(defaultTimePerFrame)
	ui.SetTimePerTransition(defaultTimePerTransition)
	return ui
}

// SetClock replaces the time source used to throttle Update.
func (ui *UI) SetClock(clock Clock) {
	if clock == nil {
		clock = systemClock{}
	}
	ui.clock = clock
}

func (ui *UI) SetLogger(logger Logger) {
	if logger == nil {
		logger = nopLogger{}
	}
	ui.logger = logger
}

// Surface returns the surface the engine draws on.
func (ui *UI) Surface() render.Surface { return ui.surface }

// SetTargetFPS sets the refresh rate Update throttles to. Frame and
// transition times are converted to ticks again at the new rate.
func (ui *UI) SetTargetFPS(fps int) {
	if fps <= 0 {
		return
	}
	ui.updateInterval = time.Second / time.Duration(fps)
	ui.ticksPerFrame = ui.ticksFor(ui.timePerFrame)
	ui.ticksPerTransition = ui.ticksFor(ui.timePerTransition)
}

// UpdateInterval is the minimum time between two ticks.
func (ui *UI) UpdateInterval() time.Duration { return ui.updateInterval }

// SetTimePerFrame sets the approximate time a frame is shown before the
// automatic transition starts.
func (ui *UI) SetTimePerFrame(d time.Duration) {
	ui.timePerFrame = d
	ui.ticksPerFrame = ui.ticksFor(d)
}

// SetTimePerTransition sets the approximate duration of a transition.
func (ui *UI) SetTimePerTransition(d time.Duration) {
	ui.timePerTransition = d
	ui.ticksPerTransition = ui.ticksFor(d)
}

// SetTicksPerFrame sets the frame time directly in ticks.
func (ui *UI) SetTicksPerFrame(ticks int) {
	ticks = max(ticks, 0)
	ui.ticksPerFrame = ticks
	ui.timePerFrame = time.Duration(ticks) * ui.updateInterval
}

// SetTicksPerTransition sets the transition time directly in ticks.
func (ui *UI) SetTicksPerTransition(ticks int) {
	ticks = max(ticks, 0)
	ui.ticksPerTransition = ticks
	ui.timePerTransition = time.Duration(ticks) * ui.updateInterval
}

func (ui *UI) TicksPerFrame() int      { return ui.ticksPerFrame }
func (ui *UI) TicksPerTransition() int { return ui.ticksPerTransition }

func (ui *UI) ticksFor(d time.Duration) int {
	if ui.updateInterval <= 0 || d <= 0 {
		return 0
	}
	return int(d / ui.updateInterval)
}

// EnableAutoTransition lets the frame timer start transitions.
func (ui *UI) EnableAutoTransition() { ui.autoTransition = true }

// DisableAutoTransition keeps the current frame until the host navigates.
func (ui *UI) DisableAutoTransition() { ui.autoTransition = false }

func (ui *UI) SetAutoTransitionForwards() {
	ui.autoDirection = 1
	if ui.state.transition == nil {
		ui.state.direction = 1
	}
}

func (ui *UI) SetAutoTransitionBackwards() {
	ui.autoDirection = -1
	if ui.state.transition == nil {
		ui.state.direction = -1
	}
}

// EnableIndicator shows the indicator for the current frame. Frames are
// probed again on every tick, so a frame that hides the indicator wins.
func (ui *UI) EnableIndicator() { ui.state.EnableIndicator() }

// DisableIndicator hides the indicator for the current frame; it slides out
// during the next transition.
func (ui *UI) DisableIndicator() { ui.state.DisableIndicator() }

// EnableAllIndicators turns indicator drawing back on globally.
func (ui *UI) EnableAllIndicators() { ui.shouldDrawIndicators = true }

// DisableAllIndicators stops drawing the indicator regardless of frames.
func (ui *UI) DisableAllIndicators() { ui.shouldDrawIndicators = false }

func (ui *UI) SetIndicatorPosition(pos IndicatorPosition) { ui.indicatorPosition = pos }

func (ui *UI) SetIndicatorDirection(dir IndicatorDirection) { ui.indicatorDirection = dir }

// SetFrameAnimation selects the slide used by transitions started after
// this call.
func (ui *UI) SetFrameAnimation(dir AnimationDirection) { ui.frameAnimation = dir }

// SetFrames replaces the frame registry and resets the cycle to frame 0.
// The engine keeps a reference to frames; swap in a new slice rather than
// mutating one in place between ticks.
func (ui *UI) SetFrames(frames []Frame) {
	ui.frames = frames
	ui.resetState()
}

// SetOverlays replaces the overlay registry. Overlays do not depend on the
// frame position, so the cycle is left as is.
func (ui *UI) SetOverlays(overlays []Overlay) { ui.overlays = overlays }

// SetLoadingDrawer replaces the progress drawer used by RunLoadingProcess.
// nil restores the default drawer.
func (ui *UI) SetLoadingDrawer(drawer LoadingDrawer) {
	if drawer == nil {
		drawer = DefaultLoadingDrawer{}
	}
	ui.loadingDrawer = drawer
}

// FrameCount is the length of the frame registry.
func (ui *UI) FrameCount() int { return len(ui.frames) }

// State exposes the UI state. The pointer stays valid for the engine's
// lifetime.
func (ui *UI) State() *UiState { return &ui.state }

// IndicatorDrawState is the indicator animation decided for the last tick.
func (ui *UI) IndicatorDrawState() IndicatorDrawState { return ui.indicatorDrawState }

func (ui *UI) resetState() {
	ui.state.lastUpdate = time.Time{}
	ui.state.ticks = 0
	ui.state.transition = nil
	ui.state.currentFrame = 0
	ui.state.indicatorDrawn = true
	ui.indicatorDrawState = IndicatorVisibleBoth
}
