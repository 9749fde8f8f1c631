// Package utils 提供通用工具函数
package utils

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ParseKey 将配置中的按键名解析为 ebiten.Key
// 接受 ebiten 的标准按键名（"Q"、"Digit1"、"Space" 等），大小写不敏感
func ParseKey(name string) (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key name %q: %w", name, err)
	}
	return key, nil
}

// KeyLabel 返回按键的显示标签
// 去掉按键名中冗余的类别前缀，如 "Digit1" → "1"、"Numpad7" → "7"
func KeyLabel(key ebiten.Key) string {
	name := key.String()
	for _, prefix := range []string{"Digit", "Numpad"} {
		if trimmed := strings.TrimPrefix(name, prefix); trimmed != name && trimmed != "" {
			return trimmed
		}
	}
	return name
}
