package titlebar

import (
	"github.com/ConserveLee/zoot/internal/constants"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Window is what the title bar needs from the host window
type Window interface {
	IsFullScreen() bool
	IsMaximized() bool
	Minimize()
	ToggleMaximize()
	Close()
	Drag(delta fyne.Delta)
	DragEnd()
	// OnChanged registers fn to run after fullscreen or maximized state changes
	OnChanged(fn func())
}

// TitleBar draws the window chrome: app name, drag area and window buttons.
// It keeps no state of its own and recomputes its Bar on every refresh.
type TitleBar struct {
	widget.BaseWidget

	title    string
	win      Window
	platform Platform
	palette  func() Palette
}

var (
	_ fyne.DoubleTappable = (*TitleBar)(nil)
	_ fyne.Draggable      = (*TitleBar)(nil)
	_ desktop.Mouseable   = (*TitleBar)(nil)
)

// New creates the title bar for win on the current platform
func New(title string, win Window) *TitleBar {
	return newTitleBar(title, win, CurrentPlatform(), CurrentPalette)
}

func newTitleBar(title string, win Window, p Platform, palette func() Palette) *TitleBar {
	t := &TitleBar{title: title, win: win, platform: p, palette: palette}
	t.ExtendBaseWidget(t)
	win.OnChanged(func() { fyne.Do(t.Refresh) })
	return t
}

// Bar computes the bar for the window's current state
func (t *TitleBar) Bar() Bar {
	m := Metrics{FullScreen: t.win.IsFullScreen(), Maximized: t.win.IsMaximized()}
	return Layout(t.title, m, t.palette(), t.platform)
}

// DoubleTapped zooms the window where the platform expects it
func (t *TitleBar) DoubleTapped(*fyne.PointEvent) {
	if t.Bar().DoubleClickZoom {
		t.win.ToggleMaximize()
	}
}

func (t *TitleBar) Dragged(e *fyne.DragEvent) {
	if t.Bar().Area == AreaDrag {
		t.win.Drag(e.Dragged)
	}
}

func (t *TitleBar) DragEnd() {
	t.win.DragEnd()
}

// MouseDown starts a fresh gesture. A system move loop may swallow the
// release that would otherwise end the previous one.
func (t *TitleBar) MouseDown(*desktop.MouseEvent) {
	t.win.DragEnd()
}

func (t *TitleBar) MouseUp(*desktop.MouseEvent) {}

// action maps a control area to the window operation it triggers
func (t *TitleBar) action(area ControlArea) func() {
	switch area {
	case AreaMin:
		return t.win.Minimize
	case AreaMax:
		return t.win.ToggleMaximize
	case AreaClose:
		return t.win.Close
	}
	return nil
}

func (t *TitleBar) CreateRenderer() fyne.WidgetRenderer {
	r := &titleBarRenderer{
		bar:   t,
		bg:    canvas.NewRectangle(nil),
		label: widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	}
	r.Refresh()
	return r
}

type titleBarRenderer struct {
	bar     *TitleBar
	current Bar

	bg       *canvas.Rectangle
	label    *widget.Label
	controls []*controlIcon
}

func (r *titleBarRenderer) Layout(s fyne.Size) {
	r.bg.Resize(s)
	r.bg.Move(fyne.NewPos(0, 0))

	b := r.current
	ls := r.label.MinSize()
	r.label.Resize(ls)
	r.label.Move(fyne.NewPos(b.PaddingLeft, (s.Height-ls.Height)/2))

	x := s.Width - b.PaddingRight - r.controlsWidth()
	for _, c := range r.controls {
		cs := c.MinSize()
		c.Resize(cs)
		c.Move(fyne.NewPos(x, (s.Height-cs.Height)/2))
		x += cs.Width + constants.ControlIconGap
	}
}

func (r *titleBarRenderer) controlsWidth() float32 {
	if len(r.controls) == 0 {
		return 0
	}
	w := float32(0)
	for _, c := range r.controls {
		w += c.MinSize().Width
	}
	return w + float32(len(r.controls)-1)*constants.ControlIconGap
}

func (r *titleBarRenderer) MinSize() fyne.Size {
	b := r.current
	if !b.Visible {
		return fyne.NewSize(0, 0)
	}
	w := b.PaddingLeft + r.label.MinSize().Width + r.controlsWidth() + b.PaddingRight
	return fyne.NewSize(w, b.Height)
}

func (r *titleBarRenderer) Refresh() {
	t := r.bar
	b := t.Bar()
	r.current = b

	r.bg.FillColor = b.Background
	r.label.SetText(b.Title)

	// Reuse buttons in place so hover state survives a maximize toggle
	if len(r.controls) > len(b.Controls) {
		r.controls = r.controls[:len(b.Controls)]
	}
	for i, c := range b.Controls {
		if i < len(r.controls) {
			r.controls[i].onTap = t.action(c.Area)
			r.controls[i].setControl(c, b.Radius)
			continue
		}
		r.controls = append(r.controls, newControlIcon(c, b.Radius, t.action(c.Area)))
	}

	for _, o := range r.Objects() {
		if b.Visible {
			o.Show()
		} else {
			o.Hide()
		}
	}
	r.bg.Refresh()
	r.Layout(t.Size())
}

func (r *titleBarRenderer) Objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.bg, r.label}
	for _, c := range r.controls {
		objs = append(objs, c)
	}
	return objs
}

func (r *titleBarRenderer) Destroy() {}
