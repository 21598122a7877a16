package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteIDsUniqueAndStable(t *testing.T) {
	seen := make(map[string]Route)
	for _, r := range All() {
		id := r.ID()
		require.NotEmpty(t, id)
		assert.Equal(t, id, r.ID(), "ID must be idempotent")
		if prev, dup := seen[id]; dup {
			t.Fatalf("id %q shared by %v and %v", id, prev, r)
		}
		seen[id] = r
	}
	assert.Len(t, seen, 9)
}

func TestRouteIDs(t *testing.T) {
	cases := map[Route]string{
		Home():                     "home",
		Tools(ToolsCopilot):        "tools-copliot",
		Tools(ToolsRecruit):        "tools-recruit",
		Tools(ToolsGacha):          "tools-gacha",
		Tasks():                    "tasks",
		Dashboard():                "dashboard",
		Settings(SettingsGeneral):  "settings-general",
		Settings(SettingsAdvanced): "settings-advanced",
		Settings(SettingsAbout):    "settings-about",
	}
	for r, want := range cases {
		assert.Equal(t, want, r.ID())
		assert.Equal(t, want, r.String())
	}
}

func TestParentLabelIgnoresSubRoute(t *testing.T) {
	assert.Equal(t, Tools(ToolsCopilot).Label(), Tools(ToolsGacha).Label())
	assert.Equal(t, Tools(ToolsCopilot).Label(), Tools(ToolsRecruit).Label())
	assert.Equal(t, "工具", Tools(ToolsGacha).Label())

	assert.Equal(t, Settings(SettingsGeneral).Label(), Settings(SettingsAbout).Label())
	assert.Equal(t, "设置", Settings(SettingsAdvanced).Label())

	assert.Equal(t, "主页", Home().Label())
	assert.Equal(t, "任务列表", Tasks().Label())
	assert.Equal(t, "仪表盘", Dashboard().Label())
}

func TestSubRouteLabels(t *testing.T) {
	assert.Equal(t, "自动战斗", ToolsCopilot.Label())
	assert.Equal(t, "公招识别", ToolsRecruit.Label())
	assert.Equal(t, "牛牛抽卡", ToolsGacha.Label())
	assert.Equal(t, "基础设置", SettingsGeneral.Label())
	assert.Equal(t, "高级设置", SettingsAdvanced.Label())
	assert.Equal(t, "关于", SettingsAbout.Label())
}

func TestSubRouteAccessors(t *testing.T) {
	sub, ok := Tools(ToolsRecruit).ToolsSub()
	assert.True(t, ok)
	assert.Equal(t, ToolsRecruit, sub)

	_, ok = Home().ToolsSub()
	assert.False(t, ok)
	_, ok = Tools(ToolsGacha).SettingsSub()
	assert.False(t, ok)

	set, ok := Settings(SettingsAbout).SettingsSub()
	assert.True(t, ok)
	assert.Equal(t, SettingsAbout, set)
	assert.Equal(t, PageSettings, Settings(SettingsAbout).Page())
}

func TestRouteEquality(t *testing.T) {
	assert.True(t, Tools(ToolsGacha) == Tools(ToolsGacha))
	assert.False(t, Tools(ToolsGacha) == Tools(ToolsCopilot))
	// The zero sub-route of Tools must not collide with pages that have none
	assert.False(t, Tools(ToolsCopilot) == Home())
	assert.Equal(t, Home(), Route{})
}

func TestParse(t *testing.T) {
	for _, r := range All() {
		got, err := Parse(r.ID())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := Parse("tools-unknown")
	assert.ErrorIs(t, err, ErrUnknownRoute)
	_, err = Parse("")
	assert.ErrorIs(t, err, ErrUnknownRoute)
}
