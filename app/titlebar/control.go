package titlebar

import (
	"image/color"

	"github.com/ConserveLee/zoot/internal/constants"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// controlIcon is a single window button with a hover fill
type controlIcon struct {
	widget.BaseWidget

	control Control
	radius  float32
	hovered bool
	onTap   func()
}

var (
	_ fyne.Tappable      = (*controlIcon)(nil)
	_ desktop.Hoverable  = (*controlIcon)(nil)
	_ desktop.Cursorable = (*controlIcon)(nil)
)

func newControlIcon(c Control, radius float32, onTap func()) *controlIcon {
	i := &controlIcon{control: c, radius: radius, onTap: onTap}
	i.ExtendBaseWidget(i)
	return i
}

func (i *controlIcon) setControl(c Control, radius float32) {
	i.control = c
	i.radius = radius
	i.Refresh()
}

func (i *controlIcon) Tapped(*fyne.PointEvent) {
	if i.onTap != nil {
		i.onTap()
	}
}

func (i *controlIcon) MouseIn(*desktop.MouseEvent) {
	i.hovered = true
	i.Refresh()
}

func (i *controlIcon) MouseMoved(*desktop.MouseEvent) {}

func (i *controlIcon) MouseOut() {
	i.hovered = false
	i.Refresh()
}

func (i *controlIcon) Cursor() desktop.Cursor {
	return desktop.DefaultCursor
}

// fill returns the background drawn behind the glyph
func (i *controlIcon) fill() color.Color {
	if i.hovered && i.control.Hover != nil {
		return i.control.Hover
	}
	return color.Transparent
}

func (i *controlIcon) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(i.fill())
	bg.CornerRadius = i.radius
	glyph := widget.NewIcon(iconResource(i.control.Icon))
	return &controlIconRenderer{icon: i, bg: bg, glyph: glyph}
}

func iconResource(name fyne.ThemeIconName) fyne.Resource {
	return fyne.CurrentApp().Settings().Theme().Icon(name)
}

type controlIconRenderer struct {
	icon  *controlIcon
	bg    *canvas.Rectangle
	glyph *widget.Icon
}

func (r *controlIconRenderer) Layout(s fyne.Size) {
	r.bg.Resize(s)
	r.bg.Move(fyne.NewPos(0, 0))

	side := theme.IconInlineSize()
	r.glyph.Resize(fyne.NewSquareSize(side))
	r.glyph.Move(fyne.NewPos((s.Width-side)/2, (s.Height-side)/2))
}

func (r *controlIconRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(constants.ControlIconSize)
}

func (r *controlIconRenderer) Refresh() {
	r.bg.FillColor = r.icon.fill()
	r.bg.CornerRadius = r.icon.radius
	r.bg.Refresh()
	r.glyph.SetResource(iconResource(r.icon.control.Icon))
}

func (r *controlIconRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.glyph}
}

func (r *controlIconRenderer) Destroy() {}
