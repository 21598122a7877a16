package pages

import (
	"fmt"
	"image"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ConserveLee/zoot/internal/constants"
	"github.com/ConserveLee/zoot/internal/screen"
)

// templateTarget is a folder recognition templates are saved into
type templateTarget struct {
	Label string
	Dir   string
}

// templateTargets lists the save destinations offered by the capture tool
func templateTargets(root string) []templateTarget {
	return []templateTarget{
		{Label: "公招识别 - 标签 (Tags)", Dir: filepath.Join(root, "recruit", "tags")},
		{Label: "公招识别 - 确认 (Confirm)", Dir: filepath.Join(root, "recruit", "confirm")},
		{Label: "自动战斗 - 开始 (Start)", Dir: filepath.Join(root, "copilot", "start")},
		{Label: "牛牛抽卡 - 结果 (Result)", Dir: filepath.Join(root, "gacha", "result")},
	}
}

// displayOptions describes each active display for the screen selector
func displayOptions() []string {
	var options []string
	for _, d := range screen.Displays() {
		options = append(options, d.String())
	}
	return options
}

// parseDisplayID reads the index back out of a displayOptions entry
func parseDisplayID(option string) int {
	var id int
	if _, err := fmt.Sscanf(option, "Display %d", &id); err != nil {
		return 0
	}
	return id
}

// nextTemplateName suggests the next free numbered file name in dir
func nextTemplateName(dir string) string {
	files, _ := filepath.Glob(filepath.Join(dir, "*.png"))

	maxIdx := 0
	for _, f := range files {
		name := strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
		// "20-1" counts as 20
		parts := strings.FieldsFunc(name, func(r rune) bool { return r < '0' || r > '9' })
		if len(parts) == 0 {
			continue
		}
		if idx, err := strconv.Atoi(parts[0]); err == nil && idx > maxIdx {
			maxIdx = idx
		}
	}
	return fmt.Sprintf("%d.png", maxIdx+1)
}

// saveTemplate writes img as a PNG named name inside dir
func saveTemplate(dir, name string, img image.Image) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("文件名不能为空")
	}
	if filepath.Ext(name) == "" {
		name += ".png"
	}
	path := filepath.Join(dir, filepath.Base(name))
	if err := screen.SavePNG(path, img); err != nil {
		return "", fmt.Errorf("save template: %w", err)
	}
	return path, nil
}

// defaultTemplateRoot is the folder the capture tool saves into
func defaultTemplateRoot() string {
	return constants.TemplateDir
}
