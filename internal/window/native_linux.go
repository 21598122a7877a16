//go:build linux

package window

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"github.com/robotn/xgb/xproto"
	"github.com/robotn/xgbutil"
	"github.com/robotn/xgbutil/ewmh"
	"github.com/robotn/xgbutil/icccm"
	"github.com/robotn/xgbutil/xwindow"
)

// x11Native talks to the window manager through EWMH and ICCCM requests
type x11Native struct {
	win fyne.Window

	once sync.Once
	xu   *xgbutil.XUtil
	err  error

	// Pointer and frame positions when the current move started
	startX, startY   int
	originX, originY int
}

// NewNative returns the X11 implementation. Wayland sessions get
// ErrUnsupported from every call.
func NewNative(win fyne.Window) Native {
	return &x11Native{win: win}
}

func (n *x11Native) conn() (*xgbutil.XUtil, error) {
	n.once.Do(func() {
		n.xu, n.err = xgbutil.NewConn()
		if n.err != nil {
			n.err = fmt.Errorf("connect to X server: %w", n.err)
		}
	})
	return n.xu, n.err
}

// handle returns the X11 id of the fyne window
func (n *x11Native) handle() (*xgbutil.XUtil, xproto.Window, error) {
	var id uintptr
	runNative(n.win, func(context any) {
		if ctx, ok := context.(driver.X11WindowContext); ok {
			id = ctx.WindowHandle
		}
	})
	if id == 0 {
		return nil, 0, ErrUnsupported
	}
	xu, err := n.conn()
	if err != nil {
		return nil, 0, err
	}
	return xu, xproto.Window(id), nil
}

func (n *x11Native) Minimize() error {
	xu, id, err := n.handle()
	if err != nil {
		return err
	}
	return ewmh.ClientEvent(xu, id, "WM_CHANGE_STATE", icccm.StateIconic)
}

func (n *x11Native) SetMaximized(on bool) error {
	xu, id, err := n.handle()
	if err != nil {
		return err
	}
	action := ewmh.StateRemove
	if on {
		action = ewmh.StateAdd
	}
	return ewmh.WmStateReqExtra(xu, id, action,
		"_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_MAXIMIZED_HORZ", 2)
}

// BeginMove records where the pointer and the decorated frame are. The move
// itself follows the pointer in Move, as GLFW keeps the pointer grabbed for
// the whole drag and _NET_WM_MOVERESIZE needs it released.
func (n *x11Native) BeginMove() error {
	xu, id, err := n.handle()
	if err != nil {
		return err
	}
	geom, err := xwindow.New(xu, id).DecorGeometry()
	if err != nil {
		return fmt.Errorf("window geometry: %w", err)
	}
	x, y, err := pointer(xu)
	if err != nil {
		return err
	}
	n.startX, n.startY = x, y
	n.originX, n.originY = geom.X(), geom.Y()
	return nil
}

func (n *x11Native) Move() error {
	xu, id, err := n.handle()
	if err != nil {
		return err
	}
	x, y, err := pointer(xu)
	if err != nil {
		return err
	}
	return xwindow.New(xu, id).WMMove(n.originX+x-n.startX, n.originY+y-n.startY)
}

// pointer returns the pointer position on the root window
func pointer(xu *xgbutil.XUtil) (int, int, error) {
	reply, err := xproto.QueryPointer(xu.Conn(), xu.RootWin()).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("query pointer: %w", err)
	}
	return int(reply.RootX), int(reply.RootY), nil
}
