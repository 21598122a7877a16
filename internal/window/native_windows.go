//go:build windows

package window

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"github.com/go-vgo/robotgo"
	"github.com/lxn/win"
)

// win32Native drives the window through its HWND
type win32Native struct {
	win fyne.Window
}

// NewNative returns the Win32 implementation
func NewNative(w fyne.Window) Native {
	return &win32Native{win: w}
}

func (n *win32Native) hwnd() (uintptr, error) {
	var h uintptr
	runNative(n.win, func(context any) {
		if ctx, ok := context.(driver.WindowsWindowContext); ok {
			h = ctx.HWND
		}
	})
	if h == 0 {
		return 0, ErrUnsupported
	}
	return h, nil
}

func (n *win32Native) Minimize() error {
	h, err := n.hwnd()
	if err != nil {
		return err
	}
	// The trailing argument marks the first one as a handle, not a pid
	robotgo.MinWindow(int(h), true, true)
	return nil
}

func (n *win32Native) SetMaximized(on bool) error {
	h, err := n.hwnd()
	if err != nil {
		return err
	}
	robotgo.MaxWindow(int(h), on, true)
	return nil
}

// BeginMove hands the drag to the system move loop, which returns once the
// mouse button is released
func (n *win32Native) BeginMove() error {
	h, err := n.hwnd()
	if err != nil {
		return err
	}
	win.ReleaseCapture()
	win.SendMessage(win.HWND(h), win.WM_NCLBUTTONDOWN, win.HTCAPTION, 0)
	return nil
}

// Move is a no-op, the system loop started by BeginMove tracks the pointer
func (n *win32Native) Move() error {
	return nil
}
