// Package system holds host glue for the device binary: console modes,
// stdio redirection and network addresses.
package system

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// EnterGraphics puts the console into graphics mode and hides the cursor.
// Failures are logged and otherwise ignored; the returned func undoes
// whatever succeeded.
func EnterGraphics(l Logger) (restore func()) {
	err := SetGraphicsMode()
	graphics := err == nil
	if graphics {
		l.Infof("tty", "KD_GRAPHICS set")
	} else {
		l.Errorf("tty", "KD_GRAPHICS failed: %v", err)
	}
	err = HideCursor()
	hidden := err == nil
	if !hidden {
		l.Errorf("tty", "hide cursor failed: %v", err)
	}

	return func() {
		if hidden {
			if err := ShowCursor(); err != nil {
				l.Errorf("tty", "show cursor failed: %v", err)
			}
		}
		if graphics {
			if err := RestoreTextMode(); err != nil {
				l.Errorf("tty", "KD_TEXT failed: %v", err)
			} else {
				l.Infof("tty", "KD_TEXT set")
			}
		}
	}
}
