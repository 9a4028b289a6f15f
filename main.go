package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/decker502/royale/pkg/app"
	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/game"
	"github.com/decker502/royale/pkg/logging"
	"github.com/decker502/royale/pkg/telemetry"
)

// gdata 存储使用的应用名
const appName = "royale"

func main() {
	fs := pflag.NewFlagSet(appName, pflag.ExitOnError)
	config.RegisterLaunchFlags(fs)
	_ = fs.Parse(os.Args[1:])

	launch, err := config.LoadLaunchConfig(viper.New(), fs, launchConfigDir())
	if err != nil {
		bootLogger := logging.Init(logging.Options{Verbose: true})
		bootLogger.Fatal().Err(err).Msg("启动配置加载失败")
	}

	logger := logging.Init(logging.Options{
		Level:   launch.LogLevel,
		Verbose: launch.Verbose,
	})

	tuning, err := loadTuning(launch.TuningPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("数值配置加载失败")
	}

	// 设置存储不可用时退化为内存模式
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn().Err(err).Msg("gdata 不可用，设置将不会被保存")
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		logger.Fatal().Err(err).Msg("设置管理器初始化失败")
	}

	telemetryProvider, err := telemetry.New(telemetry.Config{
		Enabled:     launch.Metrics,
		ServiceName: appName,
		Writer:      os.Stderr,
		Interval:    launch.MetricsInterval,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("指标导出初始化失败")
	}
	telemetryProvider.InstallGlobal()
	defer func() {
		if err := telemetryProvider.Shutdown(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("指标导出关闭失败")
		}
	}()

	metrics, err := game.NewRoundMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("指标初始化失败")
	}

	seed := launch.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gameApp, err := app.NewApp(app.Config{
		Tuning:   tuning,
		Seed:     seed,
		TPS:      launch.TPS,
		Settings: settings,
		Metrics:  metrics,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("游戏初始化失败")
	}

	ebiten.SetWindowSize(tuning.Arena.Width, tuning.Arena.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(launch.TPS)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(launch.Fullscreen || settings.GetSettings().Fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error().Err(err).Msg("游戏异常退出")
		return
	}
}

// loadTuning 读取外部数值配置，未指定路径时使用内嵌的默认配置
func loadTuning(path string) (*config.TuningConfig, error) {
	if path != "" {
		return config.LoadTuningConfig(path)
	}
	return config.ParseTuningConfig(defaultTuningYAML)
}

// launchConfigDir 返回启动配置文件所在目录（用户配置目录下的 royale/）
func launchConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName)
}
