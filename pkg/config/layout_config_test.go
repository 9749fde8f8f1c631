package config

import "testing"

func TestTotalKeysWidth(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want float64
	}{
		{"zero keys", 0, 0},
		{"one key", 1, 80},
		{"three keys", 3, 80*3 + 10*2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalKeysWidth(tt.n); got != tt.want {
				t.Errorf("TotalKeysWidth(%d) = %f, want %f", tt.n, got, tt.want)
			}
		})
	}
}

func TestWindowWidthFor(t *testing.T) {
	// 三个按键：260 + 两侧各 10 边距 = 280
	if got := WindowWidthFor(3); got != 280 {
		t.Errorf("WindowWidthFor(3) = %d, want 280", got)
	}
}

func TestKeyCenterXCentered(t *testing.T) {
	n := 3
	windowWidth := float64(WindowWidthFor(n))

	// 第一个按键：边距10 + 半个按键40 = 50
	if got := KeyCenterX(0, n, windowWidth); got != 50 {
		t.Errorf("KeyCenterX(0) = %f, want 50", got)
	}

	// 按键行整体居中：首末按键中心到窗口两边的距离应相等
	first := KeyCenterX(0, n, windowWidth)
	last := KeyCenterX(n-1, n, windowWidth)
	if first != windowWidth-last {
		t.Errorf("Key row is not centered: first=%f, last=%f, width=%f", first, last, windowWidth)
	}

	// 相邻按键中心间距 = KeySize + KeySpacing
	second := KeyCenterX(1, n, windowWidth)
	if second-first != KeySize+KeySpacing {
		t.Errorf("Key pitch = %f, want %f", second-first, KeySize+KeySpacing)
	}
}

func TestKeyCenterY(t *testing.T) {
	// 按键底边与窗口底边齐平：中心Y = 600 - 40
	if got := KeyCenterY(WindowHeight); got != 560 {
		t.Errorf("KeyCenterY(%d) = %f, want 560", WindowHeight, got)
	}
}
