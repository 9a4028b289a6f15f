package behavior

import (
	"math"

	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/ecs"
)

// handleEnemyIntent 敌人 AI：远离玩家时直线逼近，靠近时随机游走
//
// 距离在移动前测量并记录到意图中，自动开火使用同一个距离。
func (s *BehaviorSystem) handleEnemyIntent(entityID, playerID ecs.EntityID) {
	intent, ok := ecs.GetComponent[*components.IntentComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	playerPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	if !ok {
		// 没有玩家时原地不动
		intent.MoveX, intent.MoveY = 0, 0
		intent.TargetDistance = math.Inf(1)
		return
	}

	dx := playerPos.X - pos.X
	dy := playerPos.Y - pos.Y
	distance := math.Hypot(dx, dy)
	intent.TargetDistance = distance

	if distance > s.config.Enemy.ChaseDistance {
		intent.MoveX = dx / distance
		intent.MoveY = dy / distance
		return
	}

	// 每个轴独立地在 {-1, 0, +1} 中随机选择
	intent.MoveX = float64(s.rng.Intn(3) - 1)
	intent.MoveY = float64(s.rng.Intn(3) - 1)
}

// handleEnemyFire 持枪敌人在射程内按冷却自动开火
func (s *BehaviorSystem) handleEnemyFire(entityID, playerID ecs.EntityID) {
	intent, ok := ecs.GetComponent[*components.IntentComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	if s.combatSystem.EnemyAutoFire(entityID, playerID, intent.TargetDistance) {
		s.logger.Debug().
			Uint64("enemy", uint64(entityID)).
			Float64("distance", intent.TargetDistance).
			Msg("敌人开火")
	}
}
