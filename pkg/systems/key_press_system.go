package systems

import (
	"strconv"

	"github.com/gonewx/keycube/pkg/components"
	"github.com/gonewx/keycube/pkg/config"
	"github.com/gonewx/keycube/pkg/ecs"
	"github.com/gonewx/keycube/pkg/entities"
	"github.com/gonewx/keycube/pkg/game"
	"github.com/gonewx/keycube/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyPressSystem 处理按键状态更新
//
// 每个 tick 对每个按键实体：
//  1. 根据按住/松开状态设置方块不透明度（幂等，每帧覆写）
//  2. 在刚按下的上升沿：点击计数 +1、刷新显示文本、登记一条轨迹生成请求
//
// 所有按键扫描完成后统一处理生成请求：每条请求生成一条轨迹实体
// 并播放一次低音量的按键音效。先收集再生成，避免在遍历实体集合时修改它。
type KeyPressSystem struct {
	entityManager *ecs.EntityManager
	audioManager  *game.AudioManager  // 可为 nil（无音频环境下跳过音效）
	keyboard      utils.KeyboardInput // 当前帧的键盘状态
}

// spawnRequest 一条待生成的轨迹请求
type spawnRequest struct {
	key  ebiten.Key
	x, y float64
}

// NewKeyPressSystem 创建一个新的按键状态系统
func NewKeyPressSystem(em *ecs.EntityManager, am *game.AudioManager, keyboard utils.KeyboardInput) *KeyPressSystem {
	return &KeyPressSystem{
		entityManager: em,
		audioManager:  am,
		keyboard:      keyboard,
	}
}

// Update 更新所有按键实体的状态
func (s *KeyPressSystem) Update(deltaTime float64) {
	pending := make([]spawnRequest, 0)

	keyEntities := ecs.GetEntitiesWith2[
		*components.KeyComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range keyEntities {
		key, ok := ecs.GetComponent[*components.KeyComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 按住半透明，松开恢复不透明
		if s.keyboard.Pressed(key.Code) {
			key.Alpha = config.KeyHeldAlpha
		} else {
			key.Alpha = config.KeyIdleAlpha
		}

		// 上升沿：计数+1 并登记轨迹
		if s.keyboard.JustPressed(key.Code) {
			if count, ok := ecs.GetComponent[*components.ClickCountComponent](s.entityManager, id); ok {
				count.Count++
				count.Text = strconv.Itoa(count.Count)
			}

			pending = append(pending, spawnRequest{key: key.Code, x: pos.X, y: pos.Y})
		}
	}

	// 统一处理生成请求
	for _, req := range pending {
		entities.CreateTrailEntity(s.entityManager, req.key, req.x, req.y)

		if s.audioManager != nil {
			s.audioManager.PlaySoundWithVolume(config.HitSoundID, config.HitSoundVolume)
		}
	}
}
