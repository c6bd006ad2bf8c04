package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTransitionToFrameDirection(t *testing.T) {
	tests := []struct {
		name      string
		from      int
		to        int
		wantDir   int
		wantFrame int
	}{
		{"forwards", 0, 3, 1, 3},
		{"backwards", 3, 1, -1, 1},
		{"last to first", 4, 0, -1, 0},
		{"wraps past end", 1, 7, 1, 2},
		{"wraps negative", 2, -1, 1, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ui, _ := newTestUI(5)
			ui.SwitchToFrame(tc.from)
			ui.TransitionToFrame(tc.to)
			st := ui.State()
			tr, ok := st.Transition()
			if !ok {
				t.Fatalf("no transition started")
			}
			if st.TransitionDirection() != tc.wantDir || tr.Direction != tc.wantDir {
				t.Errorf("direction = %d (transition %d), want %d", st.TransitionDirection(), tr.Direction, tc.wantDir)
			}
			if tr.Target != tc.wantFrame {
				t.Errorf("target = %d, want %d", tr.Target, tc.wantFrame)
			}
			if !st.ManualControl() {
				t.Errorf("want manual control")
			}
		})
	}
}

func TestTransitionToCurrentFrameIsNoop(t *testing.T) {
	ui, _ := newTestUI(3)
	tickN(ui, 40)
	ui.TransitionToFrame(0)
	st := ui.State()
	if st.FrameState() != Fixed {
		t.Errorf("want fixed")
	}
	if st.TicksSinceStateSwitch() != 0 {
		t.Errorf("ticks = %d, want frame timer restarted", st.TicksSinceStateSwitch())
	}
}

func TestNextFrameTwiceSchedulesOnce(t *testing.T) {
	ui, _ := newTestUI(3)
	ui.NextFrame()
	ui.NextFrame()
	st := ui.State()
	if tr, _ := st.Transition(); tr.Target != 1 {
		t.Fatalf("target = %d, want 1", tr.Target)
	}
	tickN(ui, 10)
	if st.FrameState() != Fixed || st.CurrentFrame() != 1 {
		t.Fatalf("state=%v current=%d, want fixed on 1", st.FrameState(), st.CurrentFrame())
	}
	ui.tick()
	if st.FrameState() != Fixed || st.CurrentFrame() != 1 {
		t.Errorf("a second transition was queued")
	}
}

func TestNavigationIgnoredDuringTransition(t *testing.T) {
	ui, _ := newTestUI(4)
	ui.NextFrame()
	ui.tick()
	ui.PreviousFrame()
	ui.TransitionToFrame(3)
	tr, _ := ui.State().Transition()
	if tr.Target != 1 || tr.Direction != 1 {
		t.Errorf("transition = %+v, want first request to win", tr)
	}
}

func TestManualTransitionKeepsAutoDirection(t *testing.T) {
	ui, _ := newTestUI(3)
	ui.SetAutoTransitionBackwards()
	ui.NextFrame()
	st := ui.State()
	if !st.ManualControl() || st.TransitionDirection() != 1 {
		t.Fatalf("manual=%t direction=%d", st.ManualControl(), st.TransitionDirection())
	}
	tickN(ui, 10)
	if st.ManualControl() {
		t.Errorf("manual control should end with the transition")
	}
	tickN(ui, 100)
	tr, ok := st.Transition()
	if !ok || tr.Origin != Auto || tr.Direction != -1 || tr.Target != 0 {
		t.Errorf("auto transition = %+v (ok=%t), want backwards to 0", tr, ok)
	}
}

func TestSwitchToFrameIsImmediate(t *testing.T) {
	ui, surface := newTestUI(3)
	ui.NextFrame()
	tickN(ui, 3)
	ui.SwitchToFrame(2)

	st := ui.State()
	if st.FrameState() != Fixed || st.CurrentFrame() != 2 || st.TicksSinceStateSwitch() != 0 {
		t.Fatalf("state=%v current=%d ticks=%d", st.FrameState(), st.CurrentFrame(), st.TicksSinceStateSwitch())
	}

	surface.reset()
	ui.tick()
	if diff := cmp.Diff([]string{"frame 2 @0,0"}, frameOps(surface.ops)); diff != "" {
		t.Errorf("frame draws (-want +got):\n%s", diff)
	}
}

func TestSwitchToFrameWraps(t *testing.T) {
	ui, _ := newTestUI(3)
	ui.SwitchToFrame(-1)
	if got := ui.State().CurrentFrame(); got != 2 {
		t.Errorf("current = %d, want 2", got)
	}
	ui.SwitchToFrame(4)
	if got := ui.State().CurrentFrame(); got != 1 {
		t.Errorf("current = %d, want 1", got)
	}
}

func TestNavigationWithTooFewFrames(t *testing.T) {
	for _, n := range []int{0, 1} {
		ui, _ := newTestUI(n)
		ui.NextFrame()
		ui.PreviousFrame()
		ui.TransitionToFrame(1)
		ui.SwitchToFrame(3)
		tickN(ui, 250)
		st := ui.State()
		if st.FrameState() != Fixed || st.CurrentFrame() != 0 {
			t.Errorf("n=%d: state=%v current=%d, want fixed on 0", n, st.FrameState(), st.CurrentFrame())
		}
	}
}

func TestSetFramesResetsState(t *testing.T) {
	ui, _ := newTestUI(5)
	ui.SwitchToFrame(2)
	ui.NextFrame()
	ui.tick()

	ui.SetFrames(makeFrames(2))
	st := ui.State()
	if st.CurrentFrame() != 0 || st.FrameState() != Fixed || st.TicksSinceStateSwitch() != 0 {
		t.Errorf("state=%v current=%d ticks=%d, want fixed on 0", st.FrameState(), st.CurrentFrame(), st.TicksSinceStateSwitch())
	}
	if !st.LastUpdate().IsZero() {
		t.Errorf("last update not reset")
	}
	if ui.IndicatorDrawState() != IndicatorVisibleBoth {
		t.Errorf("indicator state = %v", ui.IndicatorDrawState())
	}
	if ui.FrameCount() != 2 {
		t.Errorf("frame count = %d", ui.FrameCount())
	}
}

func TestSetOverlaysKeepsState(t *testing.T) {
	ui, _ := newTestUI(3)
	ui.SwitchToFrame(2)
	tickN(ui, 5)
	ui.SetOverlays(nil)
	st := ui.State()
	if st.CurrentFrame() != 2 || st.TicksSinceStateSwitch() != 5 {
		t.Errorf("current=%d ticks=%d, want 2 and 5", st.CurrentFrame(), st.TicksSinceStateSwitch())
	}
}
