//go:build !linux && !windows

package window

import (
	"os"

	"fyne.io/fyne/v2"
	"github.com/go-vgo/robotgo"
)

// robotgoNative drives this process's window through robotgo. macOS keeps
// its native frame, so moving is left to it.
type robotgoNative struct {
	pid int
}

// NewNative returns the robotgo-backed implementation for the current process
func NewNative(fyne.Window) Native {
	return &robotgoNative{pid: os.Getpid()}
}

func (n *robotgoNative) Minimize() error {
	robotgo.MinWindow(n.pid)
	return nil
}

// SetMaximized is unsupported: robotgo has no maximize on macOS
func (n *robotgoNative) SetMaximized(bool) error {
	return ErrUnsupported
}

func (n *robotgoNative) BeginMove() error {
	return ErrUnsupported
}

func (n *robotgoNative) Move() error {
	return ErrUnsupported
}
