package window

import (
	"testing"

	"github.com/ConserveLee/zoot/app/titlebar"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

var _ titlebar.Window = (*Controller)(nil)

type fakeNative struct {
	err       error
	minimized int
	maxCalls  []bool
	begins    int
	moves     int
}

func (n *fakeNative) Minimize() error {
	if n.err != nil {
		return n.err
	}
	n.minimized++
	return nil
}

func (n *fakeNative) SetMaximized(on bool) error {
	if n.err != nil {
		return n.err
	}
	n.maxCalls = append(n.maxCalls, on)
	return nil
}

func (n *fakeNative) BeginMove() error {
	if n.err != nil {
		return n.err
	}
	n.begins++
	return nil
}

func (n *fakeNative) Move() error {
	n.moves++
	return nil
}

func newTestController(t *testing.T) (*Controller, *fakeNative, fyne.Window) {
	test.NewTempApp(t)
	win := test.NewWindow(widget.NewLabel("content"))
	t.Cleanup(win.Close)
	native := &fakeNative{}
	return NewController(win, native, nil), native, win
}

func TestToggleMaximizeFlipsState(t *testing.T) {
	c, native, _ := newTestController(t)
	changes := 0
	c.OnChanged(func() { changes++ })

	assert.False(t, c.IsMaximized())
	c.ToggleMaximize()
	assert.True(t, c.IsMaximized())
	c.ToggleMaximize()
	assert.False(t, c.IsMaximized())

	assert.Equal(t, []bool{true, false}, native.maxCalls)
	assert.Equal(t, 2, changes)
}

func TestToggleMaximizeKeepsStateWhenRejected(t *testing.T) {
	c, native, _ := newTestController(t)
	native.err = ErrUnsupported
	changes := 0
	c.OnChanged(func() { changes++ })

	c.ToggleMaximize()
	assert.False(t, c.IsMaximized())
	assert.Zero(t, changes)

	c.Minimize()
	assert.Zero(t, native.minimized)
}

func TestMinimize(t *testing.T) {
	c, native, _ := newTestController(t)
	c.Minimize()
	assert.Equal(t, 1, native.minimized)
	assert.False(t, c.IsMaximized())
}

func TestDragStartsOneMovePerGesture(t *testing.T) {
	c, native, _ := newTestController(t)

	c.Drag(fyne.NewDelta(1, 1))
	c.Drag(fyne.NewDelta(2, 0))
	c.Drag(fyne.NewDelta(0, 3))
	assert.Equal(t, 1, native.begins)
	assert.Equal(t, 2, native.moves)

	c.DragEnd()
	c.Drag(fyne.NewDelta(1, 1))
	assert.Equal(t, 2, native.begins)
	assert.Equal(t, 2, native.moves)
}

func TestDragRetriesWhenMoveFailedToStart(t *testing.T) {
	c, native, _ := newTestController(t)
	native.err = ErrUnsupported

	c.Drag(fyne.NewDelta(1, 1))
	c.Drag(fyne.NewDelta(1, 1))
	assert.Zero(t, native.moves)

	native.err = nil
	c.Drag(fyne.NewDelta(1, 1))
	assert.Equal(t, 1, native.begins)
}

func TestToggleFullScreen(t *testing.T) {
	c, _, win := newTestController(t)
	changes := 0
	c.OnChanged(func() { changes++ })

	c.ToggleFullScreen()
	assert.True(t, win.FullScreen())
	assert.True(t, c.IsFullScreen())

	c.ToggleFullScreen()
	assert.False(t, c.IsFullScreen())
	assert.Equal(t, 2, changes)
}

func TestWithoutNativeIsNoop(t *testing.T) {
	test.NewTempApp(t)
	win := test.NewWindow(nil)
	defer win.Close()
	c := NewController(win, nil, nil)

	c.Minimize()
	c.ToggleMaximize()
	c.Drag(fyne.NewDelta(1, 1))
	c.DragEnd()
	assert.False(t, c.IsMaximized())
}

func TestNativeWithoutHandleIsUnsupported(t *testing.T) {
	test.NewTempApp(t)
	win := test.NewWindow(nil)
	defer win.Close()

	// The test driver exposes no native handle, so the platform backend
	// must refuse instead of reporting success
	c := NewController(win, NewNative(win), nil)
	c.ToggleMaximize()
	assert.False(t, c.IsMaximized())
}
