//go:build !linux

package system

import "errors"

func SetGraphicsMode() error { return errors.ErrUnsupported }
func RestoreTextMode() error { return errors.ErrUnsupported }
func HideCursor() error      { return errors.ErrUnsupported }
func ShowCursor() error      { return errors.ErrUnsupported }
