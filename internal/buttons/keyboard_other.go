//go:build !linux

package buttons

import "context"

// KeyboardButtons needs Linux evdev; elsewhere it never emits an event.
type KeyboardButtons struct {
	Glob   string
	Logger Logger

	ch chan Event
}

func NewKeyboardButtons() *KeyboardButtons {
	return &KeyboardButtons{Logger: nopLogger{}, ch: make(chan Event)}
}

func (k *KeyboardButtons) Start(ctx context.Context) error {
	k.Logger.Infof("input", "evdev input is only available on linux")
	return nil
}

func (k *KeyboardButtons) Stop() error          { return nil }
func (k *KeyboardButtons) Events() <-chan Event { return k.ch }
