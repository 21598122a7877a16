package screen

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/kbinani/screenshot"
)

// Display describes one active monitor
type Display struct {
	Index  int
	Bounds image.Rectangle
}

func (d Display) String() string {
	return fmt.Sprintf("Display %d (%dx%d)", d.Index, d.Bounds.Dx(), d.Bounds.Dy())
}

// Displays lists the active monitors. It never returns an empty slice: when
// none are reported the primary display is assumed.
func Displays() []Display {
	n := screenshot.NumActiveDisplays()
	displays := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		displays = append(displays, Display{Index: i, Bounds: screenshot.GetDisplayBounds(i)})
	}
	if len(displays) == 0 {
		displays = append(displays, Display{Index: 0})
	}
	return displays
}

// Capturer grabs screenshots of a chosen display
type Capturer struct {
	DisplayIndex int
}

// NewCapturer creates a capturer for the main display
func NewCapturer() *Capturer {
	return &Capturer{
		DisplayIndex: 0,
	}
}

// SetDisplayID sets the target display index for capturing
func (c *Capturer) SetDisplayID(index int) {
	c.DisplayIndex = index
}

// CaptureScreen returns the current contents of the target display
func (c *Capturer) CaptureScreen() (image.Image, error) {
	// kbinani/screenshot handles multi-monitor bounds correctly
	bounds := screenshot.GetDisplayBounds(c.DisplayIndex)

	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("capture display %d: %w", c.DisplayIndex, err)
	}
	return img, nil
}

// Crop returns the part of img inside r, sharing its pixels
func Crop(img image.Image, r image.Rectangle) (image.Image, error) {
	sub, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		return nil, fmt.Errorf("image type %T does not support cropping", img)
	}
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return nil, fmt.Errorf("crop %v is outside the image", r)
	}
	return sub.SubImage(r), nil
}

// SavePNG encodes img to path, creating parent folders
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// LoadImage decodes a PNG from the filesystem
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return png.Decode(f)
}
