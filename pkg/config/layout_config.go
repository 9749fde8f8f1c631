package config

// 布局与动画配置常量
// 本文件定义按键方块的尺寸、间距、窗口大小以及轨迹动画速度。
// 所有坐标使用屏幕坐标系（原点在左上角，Y 轴向下）。
const (
	// KeySize 是按键方块的边长（像素）
	KeySize = 80.0

	// KeySpacing 是相邻按键之间的间距（像素）
	KeySpacing = 10.0

	// TrailSpeed 是轨迹的全速（像素/秒）
	// 松开后整体以此速度上升；按住期间高度以此速度增长
	TrailSpeed = 250.0

	// TrailScaleSpeed 是按住期间轨迹中心的上升速度（全速的一半）
	// 中心半速上移加上高度全速增长，底边恰好钉在按键顶部不动
	TrailScaleSpeed = TrailSpeed / 2.0

	// TrailStartHeight 是轨迹刚生成时的高度（细长矩形）
	TrailStartHeight = 1.0

	// WindowHeight 是窗口的固定高度（像素）
	WindowHeight = 600

	// WindowTitle 是窗口标题
	WindowTitle = "Key Cube"

	// KeyHeldAlpha 是按键按住时的不透明度
	KeyHeldAlpha = 0.5

	// KeyIdleAlpha 是按键松开时的不透明度
	KeyIdleAlpha = 1.0

	// LabelFontSize 是按键标签的字号（像素）
	LabelFontSize = 32.0

	// CounterFontSize 是点击计数的字号（像素）
	CounterFontSize = 16.0

	// CounterOffsetY 是点击计数相对按键中心的垂直偏移（向下，像素）
	CounterOffsetY = 26.0

	// HitSoundVolume 是按键音效的基础音量（0.0 ~ 1.0）
	// 实际播放音量还会乘以设置中的音效音量
	HitSoundVolume = 0.2

	// HitSoundID 是按键音效在 resources.yaml 中的资源ID
	HitSoundID = "SOUND_HIT"
)

// TotalKeysWidth 返回 n 个按键连同间距占用的总宽度
func TotalKeysWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return KeySize*float64(n) + KeySpacing*float64(n-1)
}

// WindowWidthFor 返回容纳 n 个按键的窗口宽度
// 按键行两侧各留一个 KeySpacing 的边距
func WindowWidthFor(n int) int {
	return int(TotalKeysWidth(n) + KeySpacing*2)
}

// KeyCenterX 返回第 i 个按键（0-based）的中心X坐标
// 按键行整体在宽度为 windowWidth 的窗口内水平居中
func KeyCenterX(i int, n int, windowWidth float64) float64 {
	startX := (windowWidth - TotalKeysWidth(n)) / 2
	return startX + float64(i)*(KeySize+KeySpacing) + KeySize/2
}

// KeyCenterY 返回按键的中心Y坐标
// 按键底边与窗口底边齐平
func KeyCenterY(windowHeight float64) float64 {
	return windowHeight - KeySize/2
}
