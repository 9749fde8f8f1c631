package systems

import (
	"github.com/gonewx/keycube/pkg/components"
	"github.com/gonewx/keycube/pkg/config"
	"github.com/gonewx/keycube/pkg/ecs"
	"github.com/gonewx/keycube/pkg/utils"
)

// TrailSystem 驱动轨迹动画
//
// 每个 tick 对每条轨迹：
//  1. 来源按键刚松开 → IsActive 置 false（只发生一次，不会反转）
//  2. IsActive 时中心半速上移；按键仍按住则高度全速增长（底边钉住按键顶部）
//  3. 非 IsActive 时整体全速上移
//  4. 按键未按住且底边已完全移出窗口顶部时销毁
//
// 销毁通过 EntityManager 的延迟删除完成，在 tick 结束时统一清理。
// 注意：按键在旧轨迹离屏前再次按下会让旧轨迹继续全速上升而不销毁，
// 同一按键允许同时存在多条轨迹。
type TrailSystem struct {
	entityManager *ecs.EntityManager
	keyboard      utils.KeyboardInput
}

// NewTrailSystem 创建一个新的轨迹动画系统
func NewTrailSystem(em *ecs.EntityManager, keyboard utils.KeyboardInput) *TrailSystem {
	return &TrailSystem{
		entityManager: em,
		keyboard:      keyboard,
	}
}

// Update 推进所有轨迹实体的动画
// deltaTime 为距离上一个 tick 的秒数
func (s *TrailSystem) Update(deltaTime float64) {
	trailEntities := ecs.GetEntitiesWith2[
		*components.TrailComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range trailEntities {
		trail, ok := ecs.GetComponent[*components.TrailComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		rect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 来源按键松开的下降沿：轨迹停止生长
		if s.keyboard.JustReleased(trail.Key) {
			trail.IsActive = false
		}

		if trail.IsActive {
			pos.Y -= deltaTime * config.TrailScaleSpeed
			if s.keyboard.Pressed(trail.Key) {
				rect.Height += deltaTime * config.TrailSpeed
			}
		} else {
			pos.Y -= deltaTime * config.TrailSpeed
		}

		// 底边（中心Y + 半高）移出窗口顶部且按键未按住时销毁
		if !s.keyboard.Pressed(trail.Key) && pos.Y+rect.Height/2 < 0 {
			s.entityManager.DestroyEntity(id)
		}
	}
}
