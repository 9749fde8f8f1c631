package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/keycube/pkg/app"
	"github.com/gonewx/keycube/pkg/config"
	"github.com/gonewx/keycube/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose log output")
	flag.Parse()

	// 初始化嵌入资源，必须在任何资源加载之前
	embedded.Init(assetsFS, dataFS)

	keycube, err := app.NewApp(app.Config{Verbose: *verbose})
	if err != nil {
		fmt.Fprintf(os.Stderr, "keycube: %v\n", err)
		os.Exit(1)
	}

	// 窗口尺寸由按键数量推导；窗口不可缩放（最大化按钮随之禁用），开启垂直同步
	ebiten.SetWindowSize(keycube.WindowWidth(), config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(keycube); err != nil {
		fmt.Fprintf(os.Stderr, "keycube: %v\n", err)
		os.Exit(1)
	}
}
