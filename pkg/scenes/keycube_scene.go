// Package scenes 实现游戏场景
package scenes

import (
	"image/color"
	"log"

	"github.com/gonewx/keycube/pkg/config"
	"github.com/gonewx/keycube/pkg/ecs"
	"github.com/gonewx/keycube/pkg/entities"
	"github.com/gonewx/keycube/pkg/game"
	"github.com/gonewx/keycube/pkg/systems"
	"github.com/gonewx/keycube/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// backgroundColor 是场景背景色（深灰）
var backgroundColor = color.RGBA{R: 25, G: 25, B: 25, A: 255}

// KeyCubeScene 是按键反馈场景
//
// 初始化时按配置的绑定列表创建一排水平居中、底边贴着窗口底部的按键实体。
// 每个 tick 按固定顺序运行：按键状态更新 → 轨迹动画 → 清理标记删除的实体。
// 两个系统操作互不相交的实体集合，输入快照和帧时长为只读共享。
type KeyCubeScene struct {
	entityManager   *ecs.EntityManager
	keyPressSystem  *systems.KeyPressSystem
	trailSystem     *systems.TrailSystem
	renderSystem    *systems.RenderSystem
	settingsManager *game.SettingsManager // 可为 nil
	keyboard        utils.KeyboardInput
}

// NewKeyCubeScene 创建按键反馈场景并完成布局初始化
// audioManager 和 settingsManager 可为 nil（无音频环境）
func NewKeyCubeScene(
	audioManager *game.AudioManager,
	settingsManager *game.SettingsManager,
	bindings []config.KeyBinding,
	keyboard utils.KeyboardInput,
) *KeyCubeScene {
	em := ecs.NewEntityManager()

	// 布局：按键行水平居中，底边与窗口底边齐平
	n := len(bindings)
	windowWidth := float64(config.WindowWidthFor(n))
	keyY := config.KeyCenterY(config.WindowHeight)
	for i, binding := range bindings {
		entities.CreateKeyEntity(em, binding, config.KeyCenterX(i, n, windowWidth), keyY)
	}
	log.Printf("[KeyCubeScene] Created %d key entities", n)

	return &KeyCubeScene{
		entityManager:   em,
		keyPressSystem:  systems.NewKeyPressSystem(em, audioManager, keyboard),
		trailSystem:     systems.NewTrailSystem(em, keyboard),
		renderSystem:    systems.NewRenderSystem(em),
		settingsManager: settingsManager,
		keyboard:        keyboard,
	}
}

// Update 更新场景逻辑
// 系统顺序固定：按键状态先于轨迹动画，实体删除在 tick 末尾统一生效
func (s *KeyCubeScene) Update(deltaTime float64) {
	// M 键切换音效开关（设置落盘）
	if s.keyboard.JustPressed(ebiten.KeyM) && s.settingsManager != nil {
		enabled := !s.settingsManager.GetSettings().SoundEnabled
		s.settingsManager.SetSoundEnabled(enabled)
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[KeyCubeScene] Warning: Failed to save settings: %v", err)
		}
		log.Printf("[KeyCubeScene] Sound enabled: %v", enabled)
	}

	s.keyPressSystem.Update(deltaTime)
	s.trailSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *KeyCubeScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)
}
