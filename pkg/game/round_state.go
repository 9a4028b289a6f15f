package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Phase 回合的粗粒度阶段
// 状态转换是单向循环：menu → playing → over → menu
type Phase int

const (
	// PhaseMenu 主菜单，等待确认键开始回合
	PhaseMenu Phase = iota
	// PhasePlaying 回合进行中
	PhasePlaying
	// PhaseOver 回合结束，显示结算画面
	PhaseOver
)

// String 返回阶段的字符串表示
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Outcome 回合结果
type Outcome int

const (
	// OutcomeNone 回合尚未结束
	OutcomeNone Outcome = iota
	// OutcomeVictory 所有对手被淘汰且玩家存活
	OutcomeVictory
	// OutcomeDefeat 玩家生命值归零
	OutcomeDefeat
)

// String 返回结果的字符串表示
func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// RoundState 存储当前回合的状态
// 每次开始新回合时重置
type RoundState struct {
	ID                 uuid.UUID // 回合ID，用于日志关联
	Phase              Phase
	Outcome            Outcome
	Kills              int // 被淘汰的对手数量
	RemainingOpponents int // 剩余对手数量
	Frame              int // 本回合已经过的帧数

	metrics *RoundMetrics
}

// NewRoundState 创建处于菜单阶段的回合状态
//
// 参数：
//   - metrics: 回合指标，可为 nil（不记录指标）
func NewRoundState(metrics *RoundMetrics) *RoundState {
	return &RoundState{
		Phase:   PhaseMenu,
		Outcome: OutcomeNone,
		metrics: metrics,
	}
}

// Start 开始新回合（menu → playing）
//
// 参数：
//   - opponents: 本回合的对手数量
//
// 返回：
//   - error: 当前不在菜单阶段时返回错误
func (rs *RoundState) Start(opponents int) error {
	if rs.Phase != PhaseMenu {
		return fmt.Errorf("cannot start round from phase %s", rs.Phase)
	}
	if opponents < 0 {
		return fmt.Errorf("opponent count must be >= 0, got %d", opponents)
	}

	rs.ID = uuid.New()
	rs.Phase = PhasePlaying
	rs.Outcome = OutcomeNone
	rs.Kills = 0
	rs.RemainingOpponents = opponents
	rs.Frame = 0

	if rs.metrics != nil {
		rs.metrics.RoundStarted(context.Background())
	}
	return nil
}

// Tick 记录一帧
func (rs *RoundState) Tick() {
	if rs.Phase == PhasePlaying {
		rs.Frame++
	}
}

// RecordElimination 记录一名对手被淘汰：击杀数 +1，剩余对手 -1
func (rs *RoundState) RecordElimination() {
	if rs.Phase != PhasePlaying {
		return
	}
	rs.Kills++
	if rs.RemainingOpponents > 0 {
		rs.RemainingOpponents--
	}
	if rs.metrics != nil {
		rs.metrics.Eliminated(context.Background())
	}
}

// Finish 结束回合（playing → over）
//
// 返回：
//   - error: 当前不在进行阶段或结果为 OutcomeNone 时返回错误
func (rs *RoundState) Finish(outcome Outcome) error {
	if rs.Phase != PhasePlaying {
		return fmt.Errorf("cannot finish round from phase %s", rs.Phase)
	}
	if outcome == OutcomeNone {
		return fmt.Errorf("a finished round needs an outcome")
	}

	rs.Phase = PhaseOver
	rs.Outcome = outcome

	if rs.metrics != nil {
		rs.metrics.RoundFinished(context.Background(), outcome)
	}
	return nil
}

// ReturnToMenu 返回主菜单（over → menu）
//
// 返回：
//   - error: 当前不在结算阶段时返回错误
func (rs *RoundState) ReturnToMenu() error {
	if rs.Phase != PhaseOver {
		return fmt.Errorf("cannot return to menu from phase %s", rs.Phase)
	}
	rs.Phase = PhaseMenu
	return nil
}

// IsVictory 回合是否以胜利结束
func (rs *RoundState) IsVictory() bool {
	return rs.Phase == PhaseOver && rs.Outcome == OutcomeVictory
}
