package window

import (
	"sync"

	"github.com/ConserveLee/zoot/internal/logger"

	"fyne.io/fyne/v2"
)

// Controller tracks and changes the state of the main window
type Controller struct {
	win    fyne.Window
	native Native
	log    *logger.AppLogger

	mu        sync.Mutex
	maximized bool
	moving    bool
	listeners []func()
}

// NewController wraps win. native may be nil when the window cannot be
// minimized, maximized or moved from code.
func NewController(win fyne.Window, native Native, log *logger.AppLogger) *Controller {
	if log == nil {
		log = logger.NewAppLogger(nil)
	}
	return &Controller{win: win, native: native, log: log}
}

// IsFullScreen reports whether the window covers the whole screen
func (c *Controller) IsFullScreen() bool {
	return c.win.FullScreen()
}

// IsMaximized reports the last maximized state applied through the controller
func (c *Controller) IsMaximized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maximized
}

func (c *Controller) Minimize() {
	if c.native == nil {
		c.log.Debug("[Window] minimize unsupported")
		return
	}
	if err := c.native.Minimize(); err != nil {
		c.log.Debug("[Window] minimize: %v", err)
		return
	}
	c.log.Debug("[Window] minimize")
}

// ToggleMaximize maximizes a restored window and restores a maximized one.
// The state only changes when the window system accepted the request.
func (c *Controller) ToggleMaximize() {
	if c.native == nil {
		c.log.Debug("[Window] maximize unsupported")
		return
	}
	on := !c.IsMaximized()
	if err := c.native.SetMaximized(on); err != nil {
		c.log.Debug("[Window] maximized=%v: %v", on, err)
		return
	}

	c.mu.Lock()
	c.maximized = on
	c.mu.Unlock()

	c.log.Debug("[Window] maximized=%v", on)
	c.notify()
}

// ToggleFullScreen switches between fullscreen and windowed mode
func (c *Controller) ToggleFullScreen() {
	c.win.SetFullScreen(!c.win.FullScreen())
	c.log.Debug("[Window] fullscreen=%v", c.win.FullScreen())
	c.notify()
}

func (c *Controller) Close() {
	c.log.Debug("[Window] close")
	c.win.Close()
}

// Drag moves the window with the pointer. The first call of a gesture starts
// the move, later ones follow it until DragEnd.
func (c *Controller) Drag(fyne.Delta) {
	if c.native == nil {
		return
	}
	c.mu.Lock()
	started := c.moving
	c.mu.Unlock()

	if started {
		if err := c.native.Move(); err != nil {
			c.log.Debug("[Window] move: %v", err)
		}
		return
	}
	if err := c.native.BeginMove(); err != nil {
		c.log.Debug("[Window] begin move: %v", err)
		return
	}
	c.mu.Lock()
	c.moving = true
	c.mu.Unlock()
}

// DragEnd finishes the current move gesture
func (c *Controller) DragEnd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.moving = false
}

// OnChanged registers fn to run after the fullscreen or maximized state changes
func (c *Controller) OnChanged(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) notify() {
	c.mu.Lock()
	listeners := make([]func(), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
