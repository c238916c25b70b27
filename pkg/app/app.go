// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	cue "github.com/decker502/dragonegg/internal/audio"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/embedded"
	"github.com/decker502/dragonegg/pkg/game"
	"github.com/decker502/dragonegg/pkg/spectator"
	"github.com/decker502/dragonegg/pkg/utils"
	"github.com/decker502/dragonegg/pkg/world"
)

// snapshotInterval 每隔多少帧向观众推送一次快照
const snapshotInterval = 6

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的游戏配置文件，为空则使用嵌入的 data/game.yaml
	ConfigPath string
	// SpectateAddr 观战服务监听地址（如 ":8080"），为空则不启动
	SpectateAddr string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig *config.GameConfig
	world      *world.World
	settings   *game.SettingsManager
	audio      *AudioManager
	hub        *spectator.Hub
	stopHub    context.CancelFunc
	verbose    bool

	ticks     int64   // 已执行的 Update 次数
	timestamp float64 // 当前帧时间戳（毫秒）
	banner    banner

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := embedded.LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	// 设置存储失败时降级为内存设置
	store, err := game.OpenSettingsStore(game.AppName)
	if err != nil {
		log.Printf("[App] Settings store unavailable: %v", err)
	}
	settings, _ := game.NewSettingsManager(store)

	a := &App{
		gameConfig: gameConfig,
		settings:   settings,
		audio:      NewAudioManager(audio.NewContext(AudioSampleRate), settings),
		verbose:    cfg.Verbose,
	}

	if cfg.SpectateAddr != "" {
		ctx, cancel := context.WithCancel(context.Background())
		a.hub = spectator.NewHub()
		a.stopHub = cancel
		go func() {
			if err := a.hub.Serve(ctx, cfg.SpectateAddr); err != nil {
				log.Printf("[App] %v", err)
			}
		}()
	}

	a.newRun()
	log.Printf("[App] Started (spectate=%q)", cfg.SpectateAddr)

	return a, nil
}

// newRun 创建新的一局并挂接事件订阅
func (a *App) newRun() {
	a.world = world.NewWorld(a.gameConfig, nil)
	a.banner = banner{}

	bus := a.world.Bus()
	cue.NewTracker(a.gameConfig, func(c cue.Cue) { a.audio.PlaySound(c) }).Attach(bus)
	a.banner.attach(bus, func() float64 { return a.timestamp })
	if a.hub != nil {
		bus.SubscribeAll(a.hub.PublishEvent)
	}

	a.world.Start()
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			a.applyWindowSize()
			a.pendingWindowSizeReset = false
		}
	}

	if err := a.handleSystemKeys(); err != nil {
		return err
	}

	if a.flapPressed() {
		if a.world.IsTerminal() {
			a.newRun()
		} else {
			a.world.Flap()
		}
	}

	a.ticks++
	a.timestamp = float64(a.ticks) * 1000 / float64(ebiten.TPS())
	a.world.Update(a.timestamp)

	if a.hub != nil && a.ticks%snapshotInterval == 0 {
		a.hub.PublishSnapshot(a.world.Snapshot(a.timestamp))
	}
	return nil
}

// handleSystemKeys 处理与模拟无关的按键
func (a *App) handleSystemKeys() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			// 退出全屏
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(ebiten.IsFullscreen())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		log.Printf("[App] Sound enabled: %v", a.settings.ToggleSound())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.settings.SetShowHUD(!a.settings.GetSettings().ShowHUD)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.settings.SetWindowScale(a.settings.GetSettings().WindowScale + 1)
		a.applyWindowSize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		a.settings.SetWindowScale(a.settings.GetSettings().WindowScale - 1)
		a.applyWindowSize()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// flapPressed 空格、鼠标左键或触摸均可拍翅膀
func (a *App) flapPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (a *App) applyWindowSize() {
	if utils.IsMobile() {
		return
	}
	scale := a.settings.GetSettings().WindowScale
	ebiten.SetWindowSize(config.GameWindowWidth*scale, config.GameWindowHeight*scale)
	log.Printf("[App] SetWindowSize(%d, %d)", config.GameWindowWidth*scale, config.GameWindowHeight*scale)
}

// ApplySettings 应用已保存的窗口设置，在 RunGame 之前调用
func (a *App) ApplySettings() {
	a.applyWindowSize()
	ebiten.SetFullscreen(a.settings.GetSettings().Fullscreen)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.world.Snapshot(a.timestamp)
	drawWorld(screen, snap, a.gameConfig)
	if a.settings.GetSettings().ShowHUD {
		drawHUD(screen, snap)
	}
	a.banner.draw(screen, a.timestamp, a.world.IsTerminal())
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 保存设置并停止观战服务
func (a *App) Shutdown() error {
	if a.stopHub != nil {
		a.stopHub()
	}
	if err := a.settings.Save(); err != nil {
		return fmt.Errorf("保存设置失败: %w", err)
	}
	return nil
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
