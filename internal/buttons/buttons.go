// Package buttons turns key presses into navigation events.
package buttons

import (
	"context"
	"fmt"
)

// Kind is the navigation requested by a key press.
type Kind int

const (
	Next Kind = iota
	Previous
	// Goto slides to Frame.
	Goto
	// Jump shows Frame without animation.
	Jump
	Exit
)

func (k Kind) String() string {
	switch k {
	case Next:
		return "next"
	case Previous:
		return "previous"
	case Goto:
		return "goto"
	case Jump:
		return "jump"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind  Kind
	Frame int
}

func (e Event) String() string {
	if e.Kind == Goto || e.Kind == Jump {
		return fmt.Sprintf("%s(%d)", e.Kind, e.Frame)
	}
	return e.Kind.String()
}

type Buttons interface {
	Start(ctx context.Context) error
	Stop() error
	Events() <-chan Event
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(component, format string, args ...interface{})  {}
func (nopLogger) Errorf(component, format string, args ...interface{}) {}

// NoopButtons never emits an event.
type NoopButtons struct{ ch chan Event }

func NewNoopButtons() *NoopButtons { return &NoopButtons{ch: make(chan Event)} }

func (n *NoopButtons) Start(ctx context.Context) error { return nil }
func (n *NoopButtons) Stop() error                     { return nil }
func (n *NoopButtons) Events() <-chan Event            { return n.ch }

// send delivers ev unless ctx is done first.
func send(ctx context.Context, ch chan<- Event, ev Event) bool {
	select {
	case ch <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
