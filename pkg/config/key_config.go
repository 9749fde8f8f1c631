package config

import (
	"fmt"
	"image/color"

	"github.com/gonewx/keycube/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// keysFile 对应 data/keys.yaml 的文件结构
type keysFile struct {
	Keys []keyEntry `yaml:"keys"`
}

// keyEntry 是配置文件中的单个按键条目
type keyEntry struct {
	Key   string   `yaml:"key"`   // ebiten 按键名，如 "Q"
	Color rgbEntry `yaml:"color"` // 方块底色
}

// rgbEntry 是配置文件中的 RGB 颜色（0 ~ 255）
type rgbEntry struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// KeyBinding 是解析并校验后的按键绑定
type KeyBinding struct {
	Code  ebiten.Key // 绑定的键盘按键
	Label string     // 显示标签（冗余前缀已去除）
	Color color.RGBA // 方块底色
}

// LoadKeyBindings 解析并校验按键绑定配置
//
// 配置非法（空列表、未知按键名、重复按键）属于启动期错误，
// 直接返回 error 终止启动，而不是运行期降级。
func LoadKeyBindings(data []byte) ([]KeyBinding, error) {
	var file keysFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse key bindings: %w", err)
	}

	if len(file.Keys) == 0 {
		return nil, fmt.Errorf("key bindings config contains no keys")
	}

	seen := make(map[ebiten.Key]bool, len(file.Keys))
	bindings := make([]KeyBinding, 0, len(file.Keys))

	for i, entry := range file.Keys {
		code, err := utils.ParseKey(entry.Key)
		if err != nil {
			return nil, fmt.Errorf("key binding %d: %w", i, err)
		}

		if seen[code] {
			return nil, fmt.Errorf("key binding %d: duplicate key %q", i, entry.Key)
		}
		seen[code] = true

		bindings = append(bindings, KeyBinding{
			Code:  code,
			Label: utils.KeyLabel(code),
			Color: color.RGBA{R: entry.Color.R, G: entry.Color.G, B: entry.Color.B, A: 255},
		})
	}

	return bindings, nil
}

// DefaultKeyBindings 返回内置的默认按键绑定：Q/W/C 对应红/绿/蓝
// 在配置文件缺失时使用
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Code: ebiten.KeyQ, Label: "Q", Color: color.RGBA{R: 255, A: 255}},
		{Code: ebiten.KeyW, Label: "W", Color: color.RGBA{G: 255, A: 255}},
		{Code: ebiten.KeyC, Label: "C", Color: color.RGBA{B: 255, A: 255}},
	}
}
