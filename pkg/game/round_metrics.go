package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/decker502/royale/pkg/game"

// RoundMetrics 回合相关的 OpenTelemetry 指标
// 未配置全局 MeterProvider 时所有指标为 no-op
type RoundMetrics struct {
	started      metric.Int64Counter
	finished     metric.Int64Counter
	eliminations metric.Int64Counter
}

// NewRoundMetrics 从全局 MeterProvider 创建回合指标
func NewRoundMetrics() (*RoundMetrics, error) {
	return NewRoundMetricsWithMeter(otel.Meter(instrumentationName))
}

// NewRoundMetricsWithMeter 使用指定 Meter 创建回合指标
func NewRoundMetricsWithMeter(m metric.Meter) (*RoundMetrics, error) {
	rm := &RoundMetrics{}

	var err error
	rm.started, err = m.Int64Counter(
		"royale.rounds.started",
		metric.WithDescription("Total rounds started"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rounds started counter: %w", err)
	}

	rm.finished, err = m.Int64Counter(
		"royale.rounds.finished",
		metric.WithDescription("Total rounds finished, by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rounds finished counter: %w", err)
	}

	rm.eliminations, err = m.Int64Counter(
		"royale.opponents.eliminated",
		metric.WithDescription("Total opponents eliminated"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating eliminations counter: %w", err)
	}

	return rm, nil
}

// RoundStarted 记录回合开始
func (rm *RoundMetrics) RoundStarted(ctx context.Context) {
	rm.started.Add(ctx, 1)
}

// RoundFinished 记录回合结束
func (rm *RoundMetrics) RoundFinished(ctx context.Context, outcome Outcome) {
	rm.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome.String())))
}

// Eliminated 记录一次淘汰
func (rm *RoundMetrics) Eliminated(ctx context.Context) {
	rm.eliminations.Add(ctx, 1)
}
