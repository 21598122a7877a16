package pages

import (
	"fmt"
	"image"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ConserveLee/zoot/internal/logger"
	"github.com/ConserveLee/zoot/internal/screen"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// NewRecruitPanel creates the template capture tool used by recruit recognition
func NewRecruitPanel(win fyne.Window, log *logger.AppLogger) fyne.CanvasObject {
	capturer := screen.NewCapturer()
	root := defaultTemplateRoot()

	// 1. Screen Selector
	options := displayOptions()
	displaySelect := widget.NewSelect(options, func(selected string) {
		capturer.SetDisplayID(parseDisplayID(selected))
	})
	displaySelect.SetSelected(options[0])

	// 2. Info Label
	infoLabel := widget.NewLabel("1. 选择屏幕\n2. 点击“截取并裁切”\n3. 在弹出的窗口中框选目标\n4. 保存素材")
	infoLabel.Alignment = fyne.TextAlignCenter

	// 3. Action Buttons
	cropBtn := widget.NewButton("截取并裁切 (Capture & Crop)", func() {
		img, err := capturer.CaptureScreen()
		if err != nil {
			log.Error("%v", err)
			dialog.ShowError(err, win)
			return
		}
		log.Debug("[Recruit] captured display %d (%dx%d)", capturer.DisplayIndex, img.Bounds().Dx(), img.Bounds().Dy())
		showCropperWindow(img, root, log)
	})
	cropBtn.Importance = widget.HighImportance

	openDirBtn := widget.NewButton("打开素材目录 (Open Templates)", func() {
		if err := openDir(root); err != nil {
			log.Error("open %s: %v", root, err)
			dialog.ShowError(err, win)
		}
	})

	return container.NewVBox(
		widget.NewLabel("选择屏幕:"),
		displaySelect,
		widget.NewSeparator(),
		infoLabel,
		cropBtn,
		widget.NewSeparator(),
		openDirBtn,
	)
}

func openDir(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return err
	}
	p := filepath.ToSlash(absPath)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // Windows drive paths
	}
	return fyne.CurrentApp().OpenURL(&url.URL{Scheme: "file", Path: p})
}

func showCropperWindow(fullImg image.Image, root string, log *logger.AppLogger) {
	w := fyne.CurrentApp().NewWindow("裁切素材 (Crop Template)")
	w.Resize(fyne.NewSize(800, 600))

	lbl := widget.NewLabel("请在图片上拖拽鼠标框选目标...")
	lbl.Alignment = fyne.TextAlignCenter

	saveBtn := widget.NewButton("保存选区", nil)
	saveBtn.Disable()

	var currentSelection image.Rectangle
	cropper := NewCropperWidget(fullImg, func(rect image.Rectangle) {
		currentSelection = rect
		lbl.SetText(fmt.Sprintf("已选区: %v (点击保存)", rect))
		saveBtn.Enable()
	})

	saveBtn.OnTapped = func() {
		if currentSelection.Empty() {
			return
		}
		cropped, err := screen.Crop(fullImg, currentSelection)
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		showSaveForm(w, cropped, root, log)
	}

	w.SetContent(container.NewBorder(nil, container.NewVBox(lbl, saveBtn), nil, nil, cropper))
	w.Show()
}

func showSaveForm(win fyne.Window, img image.Image, root string, log *logger.AppLogger) {
	preview := canvas.NewImageFromImage(img)
	preview.FillMode = canvas.ImageFillContain
	preview.SetMinSize(fyne.NewSize(100, 100))

	targets := templateTargets(root)
	labels := make([]string, len(targets))
	for i, t := range targets {
		labels[i] = t.Label
	}
	dirFor := func(label string) string {
		for _, t := range targets {
			if t.Label == label {
				return t.Dir
			}
		}
		return root
	}

	nameEntry := widget.NewEntry()
	dirSelect := widget.NewSelect(labels, func(s string) {
		nameEntry.SetText(nextTemplateName(dirFor(s)))
	})
	dirSelect.SetSelected(labels[0])

	content := container.NewVBox(
		widget.NewLabel("确认保存此素材?"),
		container.NewCenter(preview),
		widget.NewLabel("保存至 (Target):"),
		dirSelect,
		widget.NewLabel("文件名 (Suggestion):"),
		nameEntry,
	)

	dialog.ShowCustomConfirm("保存素材", "保存", "取消", content, func(confirm bool) {
		if !confirm {
			return
		}
		path, err := saveTemplate(dirFor(dirSelect.Selected), nameEntry.Text, img)
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		log.Info("Saved template %s", path)
		dialog.ShowInformation("成功", fmt.Sprintf("已保存: %s", path), win)
		win.Close()
	}, win)
}
