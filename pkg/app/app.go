// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：构建音频上下文、资源管理器、
// 设置管理器和场景，并实现 ebiten.Game 接口驱动帧循环。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/gonewx/keycube/pkg/config"
	"github.com/gonewx/keycube/pkg/embedded"
	"github.com/gonewx/keycube/pkg/game"
	"github.com/gonewx/keycube/pkg/scenes"
	"github.com/gonewx/keycube/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	windowWidth  int // 由按键数量推导的逻辑屏幕宽度
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 按键绑定配置非法属于启动期错误，直接返回 error。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器并加载资源配置
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		return nil, fmt.Errorf("failed to load resource config: %w", err)
	}
	resourceManager.PreloadSounds()

	// gdata 存储（打开失败降级为仅内存设置）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "keycube"})
	if err != nil {
		log.Printf("[App] Warning: Failed to open gdata storage: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized")

	// 加载按键绑定；配置文件缺失时使用内置默认值（Q/W/C）
	bindings := config.DefaultKeyBindings()
	if data, err := embedded.ReadFile("data/keys.yaml"); err == nil {
		loaded, err := config.LoadKeyBindings(data)
		if err != nil {
			return nil, fmt.Errorf("invalid key bindings: %w", err)
		}
		bindings = loaded
		log.Printf("[App] Loaded %d key bindings from data/keys.yaml", len(bindings))
	} else {
		log.Printf("[App] keys.yaml not found, using default bindings")
	}

	// 创建场景管理器并切换到按键反馈场景
	sceneManager := game.NewSceneManager()
	scene := scenes.NewKeyCubeScene(audioManager, settingsManager, bindings, utils.DeviceKeyboard{})
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
		windowWidth:  config.WindowWidthFor(len(bindings)),
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次），使用固定帧时长
func (a *App) Update() error {
	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小（窗口不可缩放，两者始终一致）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.windowWidth, config.WindowHeight
}

// WindowWidth 返回由按键数量推导的窗口宽度
// 供 main 设置窗口尺寸使用
func (a *App) WindowWidth() int {
	return a.windowWidth
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
