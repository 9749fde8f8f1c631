package systems

import (
	"image/color"
	"testing"

	"github.com/gonewx/keycube/pkg/components"
	"github.com/gonewx/keycube/pkg/config"
	"github.com/gonewx/keycube/pkg/ecs"
	"github.com/gonewx/keycube/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

const testDelta = 1.0 / 60.0

// newTestKey 创建一个测试用按键实体
func newTestKey(em *ecs.EntityManager, code ebiten.Key, x, y float64) ecs.EntityID {
	return entities.CreateKeyEntity(em, config.KeyBinding{
		Code:  code,
		Label: code.String(),
		Color: color.RGBA{R: 255, A: 255},
	}, x, y)
}

func TestKeyAlphaFollowsHeldState(t *testing.T) {
	em := ecs.NewEntityManager()
	kb := newFakeKeyboard()
	system := NewKeyPressSystem(em, nil, kb)

	id := newTestKey(em, ebiten.KeyQ, 50, 560)

	// 按下：半透明
	kb.press(ebiten.KeyQ)
	system.Update(testDelta)
	key, _ := ecs.GetComponent[*components.KeyComponent](em, id)
	if key.Alpha != config.KeyHeldAlpha {
		t.Errorf("Alpha while held = %f, want %f", key.Alpha, config.KeyHeldAlpha)
	}

	// 持续按住多帧：幂等
	kb.nextFrame()
	system.Update(testDelta)
	system.Update(testDelta)
	if key.Alpha != config.KeyHeldAlpha {
		t.Errorf("Alpha should stay %f while held, got %f", config.KeyHeldAlpha, key.Alpha)
	}

	// 松开：恢复不透明
	kb.release(ebiten.KeyQ)
	system.Update(testDelta)
	if key.Alpha != config.KeyIdleAlpha {
		t.Errorf("Alpha after release = %f, want %f", key.Alpha, config.KeyIdleAlpha)
	}
}

func TestClickCountIncrementsOncePerEdge(t *testing.T) {
	em := ecs.NewEntityManager()
	kb := newFakeKeyboard()
	system := NewKeyPressSystem(em, nil, kb)

	id := newTestKey(em, ebiten.KeyQ, 50, 560)

	// 第一次按下
	kb.press(ebiten.KeyQ)
	system.Update(testDelta)

	count, _ := ecs.GetComponent[*components.ClickCountComponent](em, id)
	if count.Count != 1 || count.Text != "1" {
		t.Errorf("After first press: count=%d text=%q, want 1/\"1\"", count.Count, count.Text)
	}

	// 按住后续帧不再计数（只响应上升沿）
	kb.nextFrame()
	system.Update(testDelta)
	system.Update(testDelta)
	if count.Count != 1 {
		t.Errorf("Count while held = %d, want 1", count.Count)
	}

	// 松开再按：计数只增不减
	kb.release(ebiten.KeyQ)
	system.Update(testDelta)
	kb.nextFrame()
	kb.press(ebiten.KeyQ)
	system.Update(testDelta)
	if count.Count != 2 || count.Text != "2" {
		t.Errorf("After second press: count=%d text=%q, want 2/\"2\"", count.Count, count.Text)
	}
}

func TestPressSpawnsTrailAtKeyTop(t *testing.T) {
	em := ecs.NewEntityManager()
	kb := newFakeKeyboard()
	system := NewKeyPressSystem(em, nil, kb)

	newTestKey(em, ebiten.KeyQ, 50, 560)

	// 未按下时没有轨迹
	system.Update(testDelta)
	if n := len(ecs.GetEntitiesWith1[*components.TrailComponent](em)); n != 0 {
		t.Fatalf("Expected 0 trails before press, got %d", n)
	}

	kb.press(ebiten.KeyQ)
	system.Update(testDelta)

	trails := ecs.GetEntitiesWith1[*components.TrailComponent](em)
	if len(trails) != 1 {
		t.Fatalf("Expected 1 trail after press, got %d", len(trails))
	}

	trail, _ := ecs.GetComponent[*components.TrailComponent](em, trails[0])
	if trail.Key != ebiten.KeyQ {
		t.Errorf("Trail key = %v, want KeyQ", trail.Key)
	}
	if !trail.IsActive {
		t.Error("New trail should be active")
	}

	// 轨迹位于按键顶边（中心Y - 半个按键边长）
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, trails[0])
	if pos.X != 50 || pos.Y != 560-config.KeySize/2 {
		t.Errorf("Trail position = (%f, %f), want (50, %f)", pos.X, pos.Y, 560-config.KeySize/2)
	}

	// 按住后续帧不再生成新轨迹
	kb.nextFrame()
	system.Update(testDelta)
	if n := len(ecs.GetEntitiesWith1[*components.TrailComponent](em)); n != 1 {
		t.Errorf("Expected still 1 trail while held, got %d", n)
	}
}

func TestSimultaneousPressesSpawnIndependentTrails(t *testing.T) {
	em := ecs.NewEntityManager()
	kb := newFakeKeyboard()
	system := NewKeyPressSystem(em, nil, kb)

	q := newTestKey(em, ebiten.KeyQ, 50, 560)
	w := newTestKey(em, ebiten.KeyW, 140, 560)
	c := newTestKey(em, ebiten.KeyC, 230, 560)

	// 同一帧按下三个键
	kb.press(ebiten.KeyQ)
	kb.press(ebiten.KeyW)
	kb.press(ebiten.KeyC)
	system.Update(testDelta)

	// 三条独立轨迹，各自对应自己的来源按键
	trails := ecs.GetEntitiesWith1[*components.TrailComponent](em)
	if len(trails) != 3 {
		t.Fatalf("Expected 3 trails, got %d", len(trails))
	}

	seen := make(map[ebiten.Key]int)
	for _, id := range trails {
		trail, _ := ecs.GetComponent[*components.TrailComponent](em, id)
		seen[trail.Key]++
	}
	for _, key := range []ebiten.Key{ebiten.KeyQ, ebiten.KeyW, ebiten.KeyC} {
		if seen[key] != 1 {
			t.Errorf("Expected exactly 1 trail for %v, got %d", key, seen[key])
		}
	}

	// 各按键计数独立，均为 1
	for _, id := range []ecs.EntityID{q, w, c} {
		count, _ := ecs.GetComponent[*components.ClickCountComponent](em, id)
		if count.Count != 1 {
			t.Errorf("Entity %d count = %d, want 1", id, count.Count)
		}
	}
}
