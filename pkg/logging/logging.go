// Package logging 提供全局结构化日志
//
// 基于 zerolog，按组件名派生子日志器（component 字段），
// 取代原先 "[Tag] message" 形式的前缀日志。
// 在 Init 被调用之前所有日志器都是 Nop，测试中无需额外配置。
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options 日志初始化参数
type Options struct {
	// Level 日志级别字符串（trace/debug/info/warn/error），无法识别时使用 info
	Level string
	// Verbose 为 false 时丢弃所有日志输出
	Verbose bool
	// Out 日志输出目标，为 nil 时使用 os.Stderr
	Out io.Writer
	// NoColor 关闭控制台颜色（写入文件或测试缓冲区时使用）
	NoColor bool
}

var root = zerolog.Nop()

// Init 初始化全局日志器
func Init(opts Options) zerolog.Logger {
	if !opts.Verbose {
		root = zerolog.New(io.Discard)
		return root
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.TimeOnly,
		NoColor:    opts.NoColor,
	}

	root = zerolog.New(writer).
		Level(ParseLevel(opts.Level)).
		With().Timestamp().Logger()
	return root
}

// ParseLevel 将级别字符串转换为 zerolog.Level
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// For 返回带 component 字段的子日志器
//
// 注意：子日志器在创建时复制全局日志器，Init 之后创建的子日志器才会输出。
func For(component string) zerolog.Logger {
	return root.With().Str("component", component).Logger()
}
