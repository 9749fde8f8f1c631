package entities

import (
	"image/color"
	"testing"

	"github.com/gonewx/keycube/pkg/components"
	"github.com/gonewx/keycube/pkg/config"
	"github.com/gonewx/keycube/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestCreateKeyEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	binding := config.KeyBinding{
		Code:  ebiten.KeyQ,
		Label: "Q",
		Color: color.RGBA{R: 255, A: 255},
	}

	id := CreateKeyEntity(em, binding, 50, 560)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("Key entity should have a PositionComponent")
	}
	if pos.X != 50 || pos.Y != 560 {
		t.Errorf("Position = (%f, %f), want (50, 560)", pos.X, pos.Y)
	}

	key, ok := ecs.GetComponent[*components.KeyComponent](em, id)
	if !ok {
		t.Fatal("Key entity should have a KeyComponent")
	}
	if key.Code != ebiten.KeyQ || key.Label != "Q" {
		t.Errorf("KeyComponent = %+v, want Q binding", key)
	}
	if key.Alpha != config.KeyIdleAlpha {
		t.Errorf("Initial alpha = %f, want %f", key.Alpha, config.KeyIdleAlpha)
	}

	rect, ok := ecs.GetComponent[*components.RectComponent](em, id)
	if !ok {
		t.Fatal("Key entity should have a RectComponent")
	}
	if rect.Width != config.KeySize || rect.Height != config.KeySize {
		t.Errorf("Rect = %fx%f, want %fx%f", rect.Width, rect.Height, config.KeySize, config.KeySize)
	}

	// 计数从 "0" 开始
	count, ok := ecs.GetComponent[*components.ClickCountComponent](em, id)
	if !ok {
		t.Fatal("Key entity should have a ClickCountComponent")
	}
	if count.Count != 0 || count.Text != "0" {
		t.Errorf("ClickCount = %+v, want count 0 with text \"0\"", count)
	}
}

func TestCreateTrailEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	id := CreateTrailEntity(em, ebiten.KeyW, 140, 560)

	// 轨迹生成在按键顶边
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("Trail entity should have a PositionComponent")
	}
	if pos.X != 140 || pos.Y != 560-config.KeySize/2 {
		t.Errorf("Position = (%f, %f), want (140, %f)", pos.X, pos.Y, 560-config.KeySize/2)
	}

	trail, ok := ecs.GetComponent[*components.TrailComponent](em, id)
	if !ok {
		t.Fatal("Trail entity should have a TrailComponent")
	}
	if trail.Key != ebiten.KeyW {
		t.Errorf("Trail key = %v, want KeyW", trail.Key)
	}
	if !trail.IsActive {
		t.Error("Trail should start active")
	}

	// 初始为细长白色矩形
	rect, ok := ecs.GetComponent[*components.RectComponent](em, id)
	if !ok {
		t.Fatal("Trail entity should have a RectComponent")
	}
	if rect.Width != config.KeySize || rect.Height != config.TrailStartHeight {
		t.Errorf("Rect = %fx%f, want %fx%f", rect.Width, rect.Height, config.KeySize, config.TrailStartHeight)
	}
	if rect.Color.R != 255 || rect.Color.G != 255 || rect.Color.B != 255 {
		t.Errorf("Trail color = %v, want white", rect.Color)
	}
}
