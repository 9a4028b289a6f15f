// Package telemetry 管理 OpenTelemetry 指标的导出
//
// 启用时回合指标由 sdk MeterProvider 周期性地以 JSON 写出；
// 未启用时返回 no-op provider，指标调用没有任何开销。
package telemetry

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// 默认导出间隔
const defaultExportInterval = 30 * time.Second

// Config 指标导出配置
type Config struct {
	Enabled     bool
	ServiceName string
	// Writer 指标输出目标，启用时必填
	Writer io.Writer
	// Interval 导出间隔，<= 0 时使用默认值
	Interval time.Duration
}

// Provider 持有指标 MeterProvider
type Provider struct {
	meterProvider *sdkmetric.MeterProvider
	config        Config
}

// New 根据配置创建 Provider
// 未启用时返回的 Provider 只提供 no-op meter
func New(cfg Config) (*Provider, error) {
	p := &Provider{config: cfg}
	if !cfg.Enabled {
		return p, nil
	}
	if cfg.Writer == nil {
		return nil, fmt.Errorf("metrics enabled but no writer configured")
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(cfg.Writer))
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultExportInterval
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
	)
	return p, nil
}

// MeterProvider 返回指标 provider，未启用时为 no-op
func (p *Provider) MeterProvider() metric.MeterProvider {
	if p.meterProvider == nil {
		return noop.NewMeterProvider()
	}
	return p.meterProvider
}

// InstallGlobal 将 provider 注册为全局 MeterProvider
func (p *Provider) InstallGlobal() {
	otel.SetMeterProvider(p.MeterProvider())
}

// Shutdown 导出剩余指标并关闭 provider
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	if err := p.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("metric shutdown failed: %w", err)
	}
	return nil
}

// Enabled 是否启用了指标导出
func (p *Provider) Enabled() bool {
	return p.config.Enabled
}
