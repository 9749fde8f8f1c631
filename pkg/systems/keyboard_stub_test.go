package systems

import "github.com/hajimehoshi/ebiten/v2"

// fakeKeyboard 是可编程的键盘状态，用于在测试中模拟按键时序
// 实现 utils.KeyboardInput 接口
type fakeKeyboard struct {
	pressed      map[ebiten.Key]bool
	justPressed  map[ebiten.Key]bool
	justReleased map[ebiten.Key]bool
}

func newFakeKeyboard() *fakeKeyboard {
	return &fakeKeyboard{
		pressed:      make(map[ebiten.Key]bool),
		justPressed:  make(map[ebiten.Key]bool),
		justReleased: make(map[ebiten.Key]bool),
	}
}

func (f *fakeKeyboard) Pressed(key ebiten.Key) bool { return f.pressed[key] }

func (f *fakeKeyboard) JustPressed(key ebiten.Key) bool { return f.justPressed[key] }

func (f *fakeKeyboard) JustReleased(key ebiten.Key) bool { return f.justReleased[key] }

// press 模拟按键在本帧刚被按下
func (f *fakeKeyboard) press(key ebiten.Key) {
	f.pressed[key] = true
	f.justPressed[key] = true
}

// release 模拟按键在本帧刚被松开
func (f *fakeKeyboard) release(key ebiten.Key) {
	f.pressed[key] = false
	f.justReleased[key] = true
}

// nextFrame 清除边沿事件，保留按住状态（进入下一帧）
func (f *fakeKeyboard) nextFrame() {
	f.justPressed = make(map[ebiten.Key]bool)
	f.justReleased = make(map[ebiten.Key]bool)
}
