package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyComponent 按键组件
// 每个配置的按键对应一个 Key 实体，启动时创建一次，进程内不销毁
type KeyComponent struct {
	Code  ebiten.Key // 绑定的键盘按键
	Label string     // 显示标签（按键名去掉冗余前缀，如 "Q"）
	Color color.RGBA // 方块底色
	Alpha float64    // 当前不透明度：松开为 1.0，按住为 0.5
}
