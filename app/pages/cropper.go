package pages

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// CropperWidget displays an image and lets the user drag out a rectangle on it
type CropperWidget struct {
	widget.BaseWidget

	// State
	originalImg image.Image
	startPos    fyne.Position
	currentPos  fyne.Position
	isDragging  bool

	// UI Elements
	raster    *canvas.Image
	selection *canvas.Rectangle

	// Callback with the selection in image pixels
	OnSelected func(rect image.Rectangle)
}

func NewCropperWidget(img image.Image, onSelected func(image.Rectangle)) *CropperWidget {
	c := &CropperWidget{
		originalImg: img,
		OnSelected:  onSelected,
	}
	c.ExtendBaseWidget(c)

	c.raster = canvas.NewImageFromImage(img)
	c.raster.ScaleMode = canvas.ImageScalePixels // No smoothing, templates must match pixel for pixel
	c.raster.FillMode = canvas.ImageFillContain

	c.selection = canvas.NewRectangle(color.NRGBA{R: 255, A: 60})
	c.selection.StrokeColor = color.NRGBA{R: 255, A: 255}
	c.selection.StrokeWidth = 2
	c.selection.Hide()

	return c
}

func (c *CropperWidget) CreateRenderer() fyne.WidgetRenderer {
	return &cropperRenderer{cropper: c}
}

func (c *CropperWidget) Dragged(e *fyne.DragEvent) {
	if !c.isDragging {
		c.isDragging = true
		c.startPos = e.Position.Subtract(e.Dragged)
		c.selection.Show()
	}
	c.currentPos = e.Position
	c.Refresh()
}

func (c *CropperWidget) DragEnd() {
	c.isDragging = false
	c.Refresh()
	if c.OnSelected == nil {
		return
	}
	r := selectionToPixels(c.Size(), c.originalImg.Bounds(), c.startPos, c.currentPos)
	if !r.Empty() {
		c.OnSelected(r)
	}
}

// Tapped clears the selection
func (c *CropperWidget) Tapped(e *fyne.PointEvent) {
	c.startPos = e.Position
	c.currentPos = e.Position
	c.selection.Hide()
	c.Refresh()
}

func (c *CropperWidget) Cursor() desktop.Cursor {
	return desktop.CrosshairCursor
}

// containRect is where an image of the given bounds is drawn inside view
// with ImageFillContain
func containRect(view fyne.Size, img image.Rectangle) (fyne.Position, fyne.Size) {
	if view.Width == 0 || view.Height == 0 || img.Empty() {
		return fyne.Position{}, fyne.Size{}
	}
	aspect := float32(img.Dx()) / float32(img.Dy())

	if view.Width/view.Height > aspect {
		// View is wider: fit height
		w := view.Height * aspect
		return fyne.NewPos((view.Width-w)/2, 0), fyne.NewSize(w, view.Height)
	}
	// View is taller: fit width
	h := view.Width / aspect
	return fyne.NewPos(0, (view.Height-h)/2), fyne.NewSize(view.Width, h)
}

// selectionToPixels maps a drag between a and b in widget space to image pixels,
// clipped to the drawn image
func selectionToPixels(view fyne.Size, img image.Rectangle, a, b fyne.Position) image.Rectangle {
	origin, size := containRect(view, img)
	if size.Width == 0 || size.Height == 0 {
		return image.Rectangle{}
	}

	x0 := max(origin.X, min(a.X, b.X))
	y0 := max(origin.Y, min(a.Y, b.Y))
	x1 := min(origin.X+size.Width, max(a.X, b.X))
	y1 := min(origin.Y+size.Height, max(a.Y, b.Y))
	if x1 <= x0 || y1 <= y0 {
		return image.Rectangle{}
	}

	scaleX := float32(img.Dx()) / size.Width
	scaleY := float32(img.Dy()) / size.Height
	r := image.Rect(
		img.Min.X+int((x0-origin.X)*scaleX),
		img.Min.Y+int((y0-origin.Y)*scaleY),
		img.Min.X+int((x1-origin.X)*scaleX),
		img.Min.Y+int((y1-origin.Y)*scaleY),
	)
	// Float math can overshoot by a pixel
	return r.Intersect(img)
}

type cropperRenderer struct {
	cropper *CropperWidget
}

func (r *cropperRenderer) Layout(s fyne.Size) {
	r.cropper.raster.Resize(s)
	r.cropper.raster.Move(fyne.NewPos(0, 0))
	r.layoutSelection()
}

func (r *cropperRenderer) layoutSelection() {
	c := r.cropper
	minX, minY := min(c.startPos.X, c.currentPos.X), min(c.startPos.Y, c.currentPos.Y)
	maxX, maxY := max(c.startPos.X, c.currentPos.X), max(c.startPos.Y, c.currentPos.Y)

	c.selection.Move(fyne.NewPos(minX, minY))
	c.selection.Resize(fyne.NewSize(maxX-minX, maxY-minY))
}

func (r *cropperRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *cropperRenderer) Refresh() {
	r.layoutSelection()
	canvas.Refresh(r.cropper)
}

func (r *cropperRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.cropper.raster, r.cropper.selection}
}

func (r *cropperRenderer) Destroy() {}
