package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"github.com/ConserveLee/zoot/internal/screen"
)

func main() {
	display := flag.Int("display", 0, "display index to capture")
	in := flag.String("in", "", "crop an existing PNG instead of capturing")
	crop := flag.String("crop", "", "region to keep as x,y,w,h")
	out := flag.String("out", "capture.png", "output PNG path")
	list := flag.Bool("list", false, "list active displays and exit")
	flag.Parse()

	if *list {
		for _, d := range screen.Displays() {
			fmt.Println(d)
		}
		return
	}

	if err := run(*display, *in, *crop, *out); err != nil {
		fmt.Fprintf(os.Stderr, "capture: %v\n", err)
		os.Exit(1)
	}
}

func run(display int, in, crop, out string) error {
	var img image.Image
	var err error
	if in != "" {
		img, err = screen.LoadImage(in)
	} else {
		c := screen.NewCapturer()
		c.SetDisplayID(display)
		img, err = c.CaptureScreen()
	}
	if err != nil {
		return err
	}
	fmt.Printf("Source size: %dx%d\n", img.Bounds().Dx(), img.Bounds().Dy())

	if crop != "" {
		r, err := parseRect(crop)
		if err != nil {
			return err
		}
		// Offsets are relative to the source's top-left corner
		if img, err = screen.Crop(img, r.Add(img.Bounds().Min)); err != nil {
			return err
		}
	}

	if err := screen.SavePNG(out, img); err != nil {
		return err
	}
	fmt.Printf("Saved %s (%dx%d)\n", out, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

// parseRect reads "x,y,w,h" into a rectangle
func parseRect(s string) (image.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("crop %q: want x,y,w,h", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("crop %q: %w", s, err)
		}
		v[i] = n
	}
	if v[2] <= 0 || v[3] <= 0 {
		return image.Rectangle{}, fmt.Errorf("crop %q: width and height must be positive", s)
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]), nil
}
