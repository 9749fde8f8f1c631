package components

import "github.com/hajimehoshi/ebiten/v2"

// TrailComponent 轨迹组件
// 每次按键按下瞬间生成一条轨迹，记录来源按键以匹配后续的松开事件。
//
// 状态机: Growing(IsActive且按键按住) → Rising(松开后) → 销毁
// IsActive 只会从 true 变为 false，不会反转。
type TrailComponent struct {
	Key      ebiten.Key // 来源按键
	IsActive bool       // 松开来源按键的瞬间置为 false
}
