package behavior

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/ecs"
	"github.com/decker502/royale/pkg/logging"
	"github.com/decker502/royale/pkg/systems"
	"github.com/decker502/royale/pkg/types"
	"github.com/decker502/royale/pkg/utils"
)

// 日志输出间隔常量
const LogOutputFrameInterval = 100 // 日志输出间隔（每N帧输出一次）

// handlerFunc 阵营行为处理函数
type handlerFunc func(s *BehaviorSystem, entityID, playerID ecs.EntityID)

// FactionStrategy 一个阵营的行为策略
//
// 玩家与敌人共用同一套移动与拾取流程，区别只在意图来源和开火触发方式：
//   - Intent: 写入本帧的移动意图
//   - BeforeMove: 移动前执行（玩家的离散开火事件）
//   - AfterMove: 移动和拾取之后执行（敌人的自动开火）
type FactionStrategy struct {
	Intent     handlerFunc
	BeforeMove handlerFunc
	AfterMove  handlerFunc
}

// Strategies 阵营 → 行为策略
var Strategies = map[types.Faction]FactionStrategy{
	types.FactionPlayer: {
		Intent:     (*BehaviorSystem).handlePlayerIntent,
		BeforeMove: (*BehaviorSystem).handlePlayerFire,
	},
	types.FactionEnemy: {
		Intent:    (*BehaviorSystem).handleEnemyIntent,
		AfterMove: (*BehaviorSystem).handleEnemyFire,
	},
}

// BehaviorSystem 按阵营执行战斗单位的单帧行为
// 流程：意图 → (移动前行为) → 移动并钳制 → 拾取 → (移动后行为)
type BehaviorSystem struct {
	entityManager  *ecs.EntityManager
	config         *config.TuningConfig
	rng            *rand.Rand
	inputSystem    *systems.InputSystem
	movementSystem *systems.MovementSystem
	pickupSystem   *systems.PickupSystem
	combatSystem   *systems.CombatSystem
	logger         zerolog.Logger
}

// NewBehaviorSystem 创建一个新的行为系统
// 参数:
//   - em: EntityManager 实例
//   - cfg: 数值配置
//   - rng: 敌人随机游走使用的随机数源
//   - input: 玩家输入源
//   - pickup: 拾取系统（由调用方在每帧开始时重建索引）
//   - combat: 战斗系统
func NewBehaviorSystem(em *ecs.EntityManager, cfg *config.TuningConfig, rng *rand.Rand, input utils.InputSource,
	pickup *systems.PickupSystem, combat *systems.CombatSystem) *BehaviorSystem {
	return &BehaviorSystem{
		entityManager:  em,
		config:         cfg,
		rng:            rng,
		inputSystem:    systems.NewInputSystem(em, input),
		movementSystem: systems.NewMovementSystem(em, cfg),
		pickupSystem:   pickup,
		combatSystem:   combat,
		logger:         logging.For("BehaviorSystem"),
	}
}

// UpdateCombatant 执行一个战斗单位的单帧行为
func (s *BehaviorSystem) UpdateCombatant(entityID, playerID ecs.EntityID) {
	faction, ok := ecs.GetComponent[*components.FactionComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	strategy, ok := Strategies[faction.Faction]
	if !ok {
		s.logger.Warn().Uint64("entity", uint64(entityID)).Stringer("faction", faction.Faction).Msg("未知阵营")
		return
	}

	if strategy.Intent != nil {
		strategy.Intent(s, entityID, playerID)
	}
	if strategy.BeforeMove != nil {
		strategy.BeforeMove(s, entityID, playerID)
	}

	s.movementSystem.Move(entityID)
	s.pickupSystem.TryPickup(entityID)

	if strategy.AfterMove != nil {
		strategy.AfterMove(s, entityID, playerID)
	}
}
