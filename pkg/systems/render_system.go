package systems

import (
	"image/color"

	"github.com/gonewx/keycube/pkg/components"
	"github.com/gonewx/keycube/pkg/config"
	"github.com/gonewx/keycube/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// basicFontHeight 是 basicfont.Face7x13 的行高（像素）
// 标签和计数文本按目标字号相对该行高缩放
const basicFontHeight = 13.0

// RenderSystem 负责绘制所有按键和轨迹
//
// 绘制顺序（从底到顶）：按键方块 → 按键标签/计数 → 轨迹
// 所有矩形以 PositionComponent 为中心、RectComponent 为尺寸，
// 使用 vector.DrawFilledRect 绘制；文本使用 text/v2 绘制并居中对齐。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	fontFace      text.Face // 内置像素字体，无需外部字体资源
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		fontFace:      text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw 绘制所有拥有位置和矩形组件的实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawKeys(screen)
	s.drawTrails(screen)
}

// drawKeys 绘制按键方块、标签和点击计数
func (s *RenderSystem) drawKeys(screen *ebiten.Image) {
	keyEntities := ecs.GetEntitiesWith3[
		*components.KeyComponent,
		*components.PositionComponent,
		*components.RectComponent,
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
		rect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 方块底色应用当前不透明度（按住时半透明）
		fillColor := applyAlpha(rect.Color, key.Alpha)
		vector.DrawFilledRect(
			screen,
			float32(pos.X-rect.Width/2),
			float32(pos.Y-rect.Height/2),
			float32(rect.Width),
			float32(rect.Height),
			fillColor,
			true,
		)

		// 按键标签居中显示在方块上
		s.drawCenteredText(screen, key.Label, pos.X, pos.Y, config.LabelFontSize)

		// 点击计数显示在标签下方
		if count, ok := ecs.GetComponent[*components.ClickCountComponent](s.entityManager, id); ok {
			s.drawCenteredText(screen, count.Text, pos.X, pos.Y+config.CounterOffsetY, config.CounterFontSize)
		}
	}
}

// drawTrails 绘制所有轨迹矩形
func (s *RenderSystem) drawTrails(screen *ebiten.Image) {
	trailEntities := ecs.GetEntitiesWith3[
		*components.TrailComponent,
		*components.PositionComponent,
		*components.RectComponent,
	](s.entityManager)

	for _, id := range trailEntities {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		rect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		if !ok {
			continue
		}

		vector.DrawFilledRect(
			screen,
			float32(pos.X-rect.Width/2),
			float32(pos.Y-rect.Height/2),
			float32(rect.Width),
			float32(rect.Height),
			rect.Color,
			true,
		)
	}
}

// drawCenteredText 以 (x, y) 为中心绘制白色文本
// size 为目标字号，相对内置字体行高缩放
func (s *RenderSystem) drawCenteredText(screen *ebiten.Image, str string, x, y, size float64) {
	scale := size / basicFontHeight

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)

	text.Draw(screen, str, s.fontFace, op)
}

// applyAlpha 返回按 alpha 预乘后的颜色
func applyAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1.0 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
