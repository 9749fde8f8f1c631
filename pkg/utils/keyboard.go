package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardInput 是一帧键盘状态的只读视图
// 系统通过该接口读取输入，测试可以注入伪造的键盘状态
type KeyboardInput interface {
	// Pressed 返回按键当前是否处于按下状态
	Pressed(key ebiten.Key) bool
	// JustPressed 返回按键是否在本帧刚被按下（上升沿）
	JustPressed(key ebiten.Key) bool
	// JustReleased 返回按键是否在本帧刚被松开（下降沿）
	JustReleased(key ebiten.Key) bool
}

// DeviceKeyboard 是基于 ebiten/inpututil 的真实键盘输入
// 边沿检测由 inpututil 对比前后两帧状态得出
type DeviceKeyboard struct{}

func (DeviceKeyboard) Pressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (DeviceKeyboard) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (DeviceKeyboard) JustReleased(key ebiten.Key) bool {
	return inpututil.IsKeyJustReleased(key)
}
