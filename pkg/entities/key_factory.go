package entities

import (
	"github.com/gonewx/keycube/pkg/components"
	"github.com/gonewx/keycube/pkg/config"
	"github.com/gonewx/keycube/pkg/ecs"
)

// CreateKeyEntity 创建一个按键实体
// 参数:
//   - manager: EntityManager 实例
//   - binding: 解析后的按键绑定（按键、标签、颜色）
//   - x, y: 按键方块中心的屏幕坐标
//
// 返回: 创建的实体ID
func CreateKeyEntity(manager *ecs.EntityManager, binding config.KeyBinding, x, y float64) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: x,
		Y: y,
	})

	manager.AddComponent(id, &components.KeyComponent{
		Code:  binding.Code,
		Label: binding.Label,
		Color: binding.Color,
		Alpha: config.KeyIdleAlpha,
	})

	manager.AddComponent(id, &components.RectComponent{
		Width:  config.KeySize,
		Height: config.KeySize,
		Color:  binding.Color,
	})

	// 点击计数从 0 开始，只增不减
	manager.AddComponent(id, &components.ClickCountComponent{
		Count: 0,
		Text:  "0",
	})

	return id
}
