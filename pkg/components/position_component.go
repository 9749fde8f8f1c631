// Package components 定义所有 ECS 组件
//
// 组件是纯数据结构体，不包含任何行为逻辑。
// 行为由 pkg/systems 中的系统实现。
package components

// PositionComponent 位置组件
// 坐标为屏幕坐标系（原点在左上角，Y 轴向下），表示实体矩形的中心点
type PositionComponent struct {
	X float64 // 中心X坐标（像素）
	Y float64 // 中心Y坐标（像素）
}
