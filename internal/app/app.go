// Package app hosts the UI engine: it runs the loading sequence, drives
// Update on a timer and serializes navigation from buttons and the web API
// onto the control loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rook-computer/lcdui/internal/buttons"
	"github.com/rook-computer/lcdui/internal/state"
	"github.com/rook-computer/lcdui/internal/ui"
	"github.com/rook-computer/lcdui/internal/web"
)

const commandQueueSize = 16

type command struct {
	name string
	fn   func(u *ui.UI)
}

type App struct {
	UI      *ui.UI
	Store   *state.Store
	Web     web.Server
	Buttons buttons.Buttons
	Logger  Logger

	// Stages run once, before the frame cycle starts.
	Stages []ui.LoadingStage

	commands chan command
	exitOnce atomic.Bool
	exitCh   chan error
}

func New(u *ui.UI, store *state.Store, webServer web.Server, buttonDriver buttons.Buttons) *App {
	return &App{
		UI:       u,
		Store:    store,
		Web:      webServer,
		Buttons:  buttonDriver,
		Logger:   NoopLogger{},
		commands: make(chan command, commandQueueSize),
		exitCh:   make(chan error, 1),
	}
}

// Exit requests the app to stop running. Only the first call counts.
func (app *App) Exit(err error) {
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Start blocks until ctx is done or Exit is called. It returns the error
// passed to Exit, or the context error.
func (app *App) Start(ctx context.Context) error {
	if app.UI == nil {
		return errors.New("app has no ui")
	}
	if app.Store == nil {
		app.Store = state.NewStore()
	}
	if app.Web == nil {
		app.Web = &web.NoopServer{}
	}
	if app.Buttons == nil {
		app.Buttons = buttons.NewNoopButtons()
	}
	app.UI.SetLogger(app.Logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := app.Buttons.Start(ctx); err != nil {
		return fmt.Errorf("start buttons: %w", err)
	}
	defer func() {
		if err := app.Buttons.Stop(); err != nil {
			app.Logger.Errorf("app", "stop buttons: %v", err)
		}
	}()
	if err := app.Web.Start(ctx); err != nil {
		return fmt.Errorf("start web server: %w", err)
	}
	defer func() {
		if err := app.Web.Stop(); err != nil {
			app.Logger.Errorf("app", "stop web server: %v", err)
		}
	}()

	app.runLoading()
	app.Logger.Infof("app", "frame cycle started with %d frames", app.UI.FrameCount())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return app.loop(gctx)
	})
	g.Go(func() error {
		app.pumpButtons(gctx)
		return nil
	})
	err := g.Wait()
	app.Logger.Infof("app", "frame cycle stopped: %v", err)
	return err
}

func (app *App) runLoading() {
	if len(app.Stages) == 0 {
		return
	}
	app.Store.SetLoading(true)
	start := time.Now()
	app.UI.RunLoadingProcess(app.Stages)
	app.Store.SetLoading(false)
	app.Logger.Infof("app", "loading finished in %s", time.Since(start).Round(time.Millisecond))
}

// loop owns the engine. Every engine call happens on this goroutine.
func (app *App) loop(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-app.exitCh:
			return err
		case cmd := <-app.commands:
			app.Logger.Infof("app", "command %s", cmd.name)
			cmd.fn(app.UI)
			app.Store.Publish(state.Capture(app.UI))
		case <-timer.C:
			wait := app.UI.Update()
			app.Store.Publish(state.Capture(app.UI))
			timer.Reset(max(wait, time.Millisecond))
		}
	}
}

func (app *App) pumpButtons(ctx context.Context) {
	events := app.Buttons.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			app.handleEvent(ev)
		}
	}
}

func (app *App) handleEvent(ev buttons.Event) {
	switch ev.Kind {
	case buttons.Next:
		app.NextFrame()
	case buttons.Previous:
		app.PreviousFrame()
	case buttons.Goto:
		app.TransitionToFrame(ev.Frame)
	case buttons.Jump:
		app.SwitchToFrame(ev.Frame)
	case buttons.Exit:
		app.Logger.Infof("input", "exit requested")
		app.Exit(nil)
	}
}

// enqueue never blocks the caller; a full queue drops the command.
func (app *App) enqueue(name string, fn func(u *ui.UI)) {
	select {
	case app.commands <- command{name: name, fn: fn}:
	default:
		app.Logger.Errorf("app", "command queue full, dropped %s", name)
	}
}

func (app *App) NextFrame()     { app.enqueue("next", (*ui.UI).NextFrame) }
func (app *App) PreviousFrame() { app.enqueue("previous", (*ui.UI).PreviousFrame) }

func (app *App) SwitchToFrame(frame int) {
	app.enqueue(fmt.Sprintf("switch %d", frame), func(u *ui.UI) { u.SwitchToFrame(frame) })
}

func (app *App) TransitionToFrame(frame int) {
	app.enqueue(fmt.Sprintf("transition %d", frame), func(u *ui.UI) { u.TransitionToFrame(frame) })
}

// Snapshot is the state published after the last tick or command.
func (app *App) Snapshot() state.Snapshot { return app.Store.Snapshot() }
