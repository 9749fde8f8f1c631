package components

import "image/color"

// RectComponent 矩形外观组件
// 以 PositionComponent 为中心绘制的实心矩形
// 轨迹的拉伸只改变 Height，Width 保持不变
type RectComponent struct {
	Width  float64    // 宽度（像素）
	Height float64    // 高度（像素）
	Color  color.RGBA // 填充颜色
}
