package entities

import (
	"image/color"

	"github.com/gonewx/keycube/pkg/components"
	"github.com/gonewx/keycube/pkg/config"
	"github.com/gonewx/keycube/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// CreateTrailEntity 创建一条按键轨迹实体
// 轨迹生成在按键方块的顶边（按键中心向上偏移半个按键边长），
// 初始为细长白色矩形，IsActive 为 true。
//
// 参数:
//   - manager: EntityManager 实例
//   - key: 来源按键
//   - keyX, keyY: 来源按键方块中心的屏幕坐标
//
// 返回: 创建的实体ID
func CreateTrailEntity(manager *ecs.EntityManager, key ebiten.Key, keyX, keyY float64) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: keyX,
		Y: keyY - config.KeySize/2,
	})

	manager.AddComponent(id, &components.TrailComponent{
		Key:      key,
		IsActive: true,
	})

	manager.AddComponent(id, &components.RectComponent{
		Width:  config.KeySize,
		Height: config.TrailStartHeight,
		Color:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	})

	return id
}
