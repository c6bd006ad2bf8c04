package ui

import (
	"fmt"
	"image"

	"github.com/rook-computer/lcdui/internal/render"
	"github.com/rook-computer/lcdui/internal/render/layout"
)

// LoadingStage is one step of a loading sequence. Callback may block; it is
// optional.
type LoadingStage struct {
	Process  string
	Callback func()
}

// LoadingDrawer draws the progress screen for a stage. progress is a
// percentage in [0, 100].
type LoadingDrawer interface {
	DrawLoading(s render.Surface, stage LoadingStage, progress int)
}

// LoadingDrawFunc adapts a function to a LoadingDrawer.
type LoadingDrawFunc func(s render.Surface, stage LoadingStage, progress int)

func (f LoadingDrawFunc) DrawLoading(s render.Surface, stage LoadingStage, progress int) {
	f(s, stage, progress)
}

// DefaultLoadingDrawer prints the stage name, a progress bar and the
// percentage.
type DefaultLoadingDrawer struct{}

func (DefaultLoadingDrawer) DrawLoading(s render.Surface, stage LoadingStage, progress int) {
	width, height := s.Size()
	s.SetTextSize(1)
	s.SetTextWrap(false)

	label := s.MeasureText(stage.Process)
	s.SetCursor((width-label.Width)/2, 2)
	s.Print(stage.Process)

	bar := image.Rect(4, height/2, width-4, height/2+6)
	s.DrawRect(bar)
	s.FillRect(layout.Progress(layout.Inset(bar, 1), progress))

	percent := fmt.Sprintf("%d%%", progress)
	m := s.MeasureText(percent)
	s.SetCursor((width-m.Width)/2, bar.Max.Y+2)
	s.Print(percent)
}

// RunLoadingProcess runs stages in order, blocking until all are done. After
// each stage's callback returns, the loading drawer shows the stage with
// its cumulative progress and the surface is committed once. It does not
// touch the frame cycle.
func (ui *UI) RunLoadingProcess(stages []LoadingStage) {
	n := len(stages)
	for i, stage := range stages {
		ui.logger.Infof("loading", "stage %d/%d: %s", i+1, n, stage.Process)
		if stage.Callback != nil {
			stage.Callback()
		}
		progress := (i + 1) * 100 / n
		ui.surface.Clear()
		ui.loadingDrawer.DrawLoading(ui.surface, stage, progress)
		if err := ui.surface.Display(); err != nil {
			ui.logger.Errorf("loading", "display commit failed: %v", err)
		}
	}
}
