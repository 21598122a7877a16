package window

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

// ErrUnsupported is returned by a Native that cannot perform an operation on
// the current platform or window system
var ErrUnsupported = errors.New("window operation not supported")

// Native is the OS-level window manipulation fyne doesn't expose.
// Each call reports whether it actually reached the window.
type Native interface {
	Minimize() error
	SetMaximized(on bool) error
	// BeginMove starts a pointer-driven window move. It is called once per drag.
	BeginMove() error
	// Move follows the pointer after a successful BeginMove
	Move() error
}

// runNative calls fn with the driver context of win. It returns false when
// the window does not expose one, as with the test driver.
func runNative(win fyne.Window, fn func(context any)) bool {
	nw, ok := win.(driver.NativeWindow)
	if !ok {
		return false
	}
	nw.RunNative(fn)
	return true
}
