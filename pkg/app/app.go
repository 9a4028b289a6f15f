// Package app 提供游戏应用的核心包装器
//
// 该包把各个系统、场景和设置组装成一个 ebiten.Game，
// 帧时钟与渲染目标都由显式创建的 App 持有，不依赖全局状态。
package app

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/ecs"
	"github.com/decker502/royale/pkg/game"
	"github.com/decker502/royale/pkg/logging"
	"github.com/decker502/royale/pkg/scenes"
	"github.com/decker502/royale/pkg/systems"
	"github.com/decker502/royale/pkg/systems/behavior"
	"github.com/decker502/royale/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Tuning 数值配置，必填
	Tuning *config.TuningConfig
	// Seed 随机种子
	Seed int64
	// TPS 每秒逻辑帧数
	TPS int
	// Settings 持久化的显示设置，可为 nil（使用内存中的默认设置）
	Settings *game.SettingsManager
	// Metrics 回合指标，可为 nil
	Metrics *game.RoundMetrics
	// Input 输入源，为 nil 时使用键盘
	Input utils.InputSource
	// Fonts 字体管理器，为 nil 时自动创建
	Fonts *game.FontManager
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	tuning       *config.TuningConfig
	clock        *game.FrameClock
	sceneManager *game.SceneManager
	round        *game.RoundState
	battle       *behavior.BattleSystem
	settings     *game.SettingsManager
	input        utils.InputSource

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数

	logger zerolog.Logger
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if cfg.Tuning == nil {
		return nil, fmt.Errorf("tuning config cannot be nil")
	}

	settings := cfg.Settings
	if settings == nil {
		var err error
		settings, err = game.NewSettingsManager(nil)
		if err != nil {
			return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
		}
	}

	input := cfg.Input
	if input == nil {
		input = utils.NewKeyboardInput(nil)
	}

	fonts := cfg.Fonts
	if fonts == nil {
		var err error
		fonts, err = game.NewFontManager()
		if err != nil {
			return nil, fmt.Errorf("字体加载失败: %w", err)
		}
	}

	em := ecs.NewEntityManager()
	round := game.NewRoundState(cfg.Metrics)
	rng := rand.New(rand.NewSource(cfg.Seed))

	battle, err := behavior.NewBattleSystem(em, cfg.Tuning, rng, input, round)
	if err != nil {
		return nil, fmt.Errorf("战斗系统初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(&scenes.Context{
		Battle: battle,
		Round:  round,
		Render: systems.NewRenderSystem(em),
		Fonts:  fonts,
		Input:  input,
		Arena:  cfg.Tuning.Arena,
	}))
	sceneManager.SyncPhase(round.Phase)

	a := &App{
		tuning:       cfg.Tuning,
		clock:        game.NewFrameClock(cfg.TPS),
		sceneManager: sceneManager,
		round:        round,
		battle:       battle,
		settings:     settings,
		input:        input,
		logger:       logging.For("App"),
	}

	a.logger.Info().Int64("seed", cfg.Seed).Int("tps", a.clock.TPS()).Msg("App initialized")
	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.Close()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.tuning.Arena.Width, a.tuning.Arena.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if a.input.IsJustPressed(utils.ActionToggleFullscreen) {
		a.toggleFullscreen()
	}

	a.step()
	return nil
}

// step 推进一帧：处理调试开关、同步场景并更新当前场景
func (a *App) step() {
	if a.input.IsJustPressed(utils.ActionToggleDebug) {
		a.settings.SetShowDebugOverlay(!a.settings.GetSettings().ShowDebugOverlay)
		a.saveSettings()
	}

	a.sceneManager.SyncPhase(a.round.Phase)
	a.sceneManager.Update(a.clock.DeltaTime())
	// 阶段在本帧发生变化时，立即切换场景以便 Draw 绘制新画面
	a.sceneManager.SyncPhase(a.round.Phase)

	a.clock.Advance()
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		a.logger.Warn().Err(err).Msg("保存设置失败")
	}
}

// Close 在程序退出前保存设置
func (a *App) Close() {
	a.saveSettings()
	a.logger.Info().Uint64("frames", a.clock.Frame()).Msg("App closed")
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)

	if a.settings.GetSettings().ShowDebugOverlay {
		ebitenutil.DebugPrintAt(screen, a.DebugText(), 10, a.tuning.Arena.Height-70)
	}
}

// DebugText 返回调试信息覆盖层的文字
func (a *App) DebugText() string {
	return fmt.Sprintf("TPS: %.1f  FPS: %.1f\nZone radius: %.0f\nPhase: %s\nRound: %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(), a.battle.ZoneRadius(), a.round.Phase, a.round.ID)
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
	return a.tuning.Arena.Width, a.tuning.Arena.Height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Round 返回回合状态
func (a *App) Round() *game.RoundState {
	return a.round
}

// Settings 返回设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}
