package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// 启动配置文件名（不含扩展名），在配置目录中查找 royale.yaml / royale.json 等
const launchConfigName = "royale"

// 环境变量前缀，例如 ROYALE_LOGLEVEL=debug
const launchEnvPrefix = "ROYALE"

// LaunchConfig 定义应用启动配置
//
// 优先级：命令行参数 > 环境变量 > 配置文件 > 默认值
type LaunchConfig struct {
	// LogLevel 日志级别（trace/debug/info/warn/error）
	LogLevel string `mapstructure:"logLevel"`
	// Verbose 启用日志输出，关闭时日志写入 io.Discard
	Verbose bool `mapstructure:"verbose"`
	// TuningPath 外部数值配置路径，为空则使用内嵌的 data/tuning.yaml
	TuningPath string `mapstructure:"tuningPath"`
	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `mapstructure:"seed"`
	// TPS 每秒逻辑帧数
	TPS int `mapstructure:"tps"`
	// Fullscreen 启动时是否全屏（覆盖已保存的设置）
	Fullscreen bool `mapstructure:"fullscreen"`
	// Metrics 将回合指标周期性地以 JSON 写到 stderr
	Metrics bool `mapstructure:"metrics"`
	// MetricsInterval 指标导出间隔
	MetricsInterval time.Duration `mapstructure:"metricsInterval"`
}

// RegisterLaunchFlags 在 FlagSet 上注册启动参数
func RegisterLaunchFlags(fs *pflag.FlagSet) {
	fs.String("logLevel", "info", "log level (trace, debug, info, warn, error)")
	fs.BoolP("verbose", "v", false, "enable log output")
	fs.String("tuningPath", "", "path to a tuning YAML file (defaults to the embedded data/tuning.yaml)")
	fs.Int64("seed", 0, "random seed for reproducible rounds (0 = time based)")
	fs.Int("tps", 60, "logic ticks per second")
	fs.Bool("fullscreen", false, "start in fullscreen mode")
	fs.Bool("metrics", false, "export round metrics to stderr")
	fs.Duration("metricsInterval", 30*time.Second, "metrics export interval")
}

// LoadLaunchConfig 读取启动配置
//
// 参数:
//   - v: viper 实例（测试中可传入独立实例）
//   - fs: 已解析的命令行参数，可为 nil
//   - configDir: 配置文件所在目录，配置文件不存在不视为错误
//
// 返回:
//   - *LaunchConfig: 合并后的启动配置
//   - error: 配置文件格式错误或取值非法时返回错误
func LoadLaunchConfig(v *viper.Viper, fs *pflag.FlagSet, configDir string) (*LaunchConfig, error) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("verbose", false)
	v.SetDefault("tuningPath", "")
	v.SetDefault("seed", 0)
	v.SetDefault("tps", 60)
	v.SetDefault("fullscreen", false)
	v.SetDefault("metrics", false)
	v.SetDefault("metricsInterval", 30*time.Second)

	v.SetEnvPrefix(launchEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if configDir != "" {
		v.SetConfigName(launchConfigName)
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg LaunchConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode launch config: %w", err)
	}

	if cfg.TPS <= 0 {
		return nil, fmt.Errorf("tps must be positive, got %d", cfg.TPS)
	}
	if cfg.Metrics && cfg.MetricsInterval <= 0 {
		return nil, fmt.Errorf("metricsInterval must be positive, got %s", cfg.MetricsInterval)
	}

	return &cfg, nil
}
