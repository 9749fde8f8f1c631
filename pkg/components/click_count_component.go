package components

// ClickCountComponent 点击计数组件
// 记录按键被按下的次数，只增不减（进程生命周期内不重置）
type ClickCountComponent struct {
	Count int    // 累计按下次数
	Text  string // 当前显示文本，按下时刷新为 Count 的十进制表示
}
