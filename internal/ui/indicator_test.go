package ui

import (
	"image"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func indicatorOps(ops []string) []string {
	var out []string
	for _, op := range ops {
		if strings.HasPrefix(op, "disc ") || strings.HasPrefix(op, "circle ") {
			out = append(out, op)
		}
	}
	return out
}

func TestIndicatorDrawStates(t *testing.T) {
	tests := []struct {
		name   string
		hidden []int
		want   IndicatorDrawState
	}{
		{"shown on both", nil, IndicatorVisibleBoth},
		{"hidden on next", []int{1}, IndicatorDisappearingNext},
		{"hidden on current", []int{0}, IndicatorAppearingNext},
		{"hidden on both", []int{0, 1}, IndicatorHiddenBoth},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ui, _ := newTestUI(3)
			ui.SetFrames(makeFrames(3, tc.hidden...))
			ui.NextFrame()
			ui.tick()
			if got := ui.IndicatorDrawState(); got != tc.want {
				t.Errorf("indicator state = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIndicatorLayoutEdges(t *testing.T) {
	tests := []struct {
		pos         IndicatorPosition
		wantCells   []image.Point
		wantCompact bool
	}{
		{Bottom, []image.Point{{24, 40}, {36, 40}, {48, 40}}, false},
		{Top, []image.Point{{24, 0}, {36, 0}, {48, 0}}, false},
		{Left, []image.Point{{0, 17}, {0, 23}, {0, 29}}, true},
		{Right, []image.Point{{76, 17}, {76, 23}, {76, 29}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.pos.String(), func(t *testing.T) {
			ui, _ := newTestUI(3)
			ui.SetIndicatorPosition(tc.pos)
			ui.tick()
			layout, ok := ui.layoutIndicator()
			if !ok {
				t.Fatalf("indicator not drawn")
			}
			if diff := cmp.Diff(tc.wantCells, layout.cells); diff != "" {
				t.Errorf("cells (-want +got):\n%s", diff)
			}
			if layout.compact != tc.wantCompact {
				t.Errorf("compact = %t, want %t", layout.compact, tc.wantCompact)
			}
			if layout.highlight != 0 {
				t.Errorf("highlight = %d, want 0", layout.highlight)
			}
		})
	}
}

func TestIndicatorTallPanelSpacing(t *testing.T) {
	ui, surface := newTestUI(2)
	surface.height = 64
	ui.SetIndicatorPosition(Right)
	ui.tick()
	layout, _ := ui.layoutIndicator()
	want := []image.Point{{76, 22}, {76, 34}}
	if diff := cmp.Diff(want, layout.cells); diff != "" {
		t.Errorf("cells (-want +got):\n%s", diff)
	}
}

func TestIndicatorRightLeftHighlight(t *testing.T) {
	ui, surface := newTestUI(3)
	ui.SetIndicatorDirection(RightLeft)
	ui.tick()
	want := []string{"circle 28,44 r3", "circle 40,44 r3", "disc 52,44 r3"}
	if diff := cmp.Diff(want, indicatorOps(surface.ops)); diff != "" {
		t.Errorf("indicator (-want +got):\n%s", diff)
	}
}

func TestIndicatorSlidesOut(t *testing.T) {
	ui, surface := newTestUI(3)
	ui.SetFrames(makeFrames(3, 1))
	ui.NextFrame()
	tickN(ui, 4)
	surface.reset()
	ui.tick()

	// Halfway: pushed down by half a cell, still highlighting the outgoing frame.
	want := []string{"disc 28,48 r3", "circle 40,48 r3", "circle 52,48 r3"}
	if diff := cmp.Diff(want, indicatorOps(surface.ops)); diff != "" {
		t.Errorf("indicator (-want +got):\n%s", diff)
	}

	tickN(ui, 5)
	surface.reset()
	ui.tick()
	if ops := indicatorOps(surface.ops); len(ops) != 0 {
		t.Errorf("indicator drawn on a frame that hides it: %v", ops)
	}
}

func TestIndicatorSlidesIn(t *testing.T) {
	ui, surface := newTestUI(3)
	ui.SetFrames(makeFrames(3, 0))
	tickN(ui, 1)
	if ops := indicatorOps(surface.ops); len(ops) != 0 {
		t.Fatalf("indicator drawn on a frame that hides it: %v", ops)
	}

	ui.NextFrame()
	tickN(ui, 7)
	surface.reset()
	ui.tick()

	// 8 of 10 ticks in: 1-0.8 of a cell left to slide, lit on the incoming frame.
	want := []string{"circle 28,45 r3", "disc 40,45 r3", "circle 52,45 r3"}
	if diff := cmp.Diff(want, indicatorOps(surface.ops)); diff != "" {
		t.Errorf("indicator (-want +got):\n%s", diff)
	}
}

func TestIndicatorHiddenOnBoth(t *testing.T) {
	ui, surface := newTestUI(3)
	ui.SetFrames(makeFrames(3, 0, 1))
	ui.NextFrame()
	tickN(ui, 5)
	if ops := indicatorOps(surface.ops); len(ops) != 0 {
		t.Errorf("indicator drawn: %v", ops)
	}
}

func TestDisableAllIndicators(t *testing.T) {
	ui, surface := newTestUI(3)
	ui.DisableAllIndicators()
	ui.tick()
	ui.NextFrame()
	ui.tick()
	if ops := indicatorOps(surface.ops); len(ops) != 0 {
		t.Errorf("indicator drawn: %v", ops)
	}

	ui.EnableAllIndicators()
	surface.reset()
	ui.tick()
	if ops := indicatorOps(surface.ops); len(ops) != 3 {
		t.Errorf("indicator ops = %v, want 3 markers", ops)
	}
}
