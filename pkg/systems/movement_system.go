package systems

import (
	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/ecs"
)

// MovementSystem 按意图移动战斗单位并钳制在竞技场内
type MovementSystem struct {
	entityManager *ecs.EntityManager
	arenaWidth    float64
	arenaHeight   float64
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager, cfg *config.TuningConfig) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		arenaWidth:    float64(cfg.Arena.Width),
		arenaHeight:   float64(cfg.Arena.Height),
	}
}

// Move 沿两个轴各自前进 intent*speed，然后钳制到竞技场范围内
// 两轴独立计算，对角线移动的实际速度为 speed·√2
func (s *MovementSystem) Move(entityID ecs.EntityID) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	intent, ok := ecs.GetComponent[*components.IntentComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	movement, ok := ecs.GetComponent[*components.MovementComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	pos.X += intent.MoveX * movement.Speed
	pos.Y += intent.MoveY * movement.Speed

	s.Clamp(entityID)
}

// Clamp 将实体位置限制在 [0, W-width] × [0, H-height]
func (s *MovementSystem) Clamp(entityID ecs.EntityID) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	var width, height float64
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, entityID); ok {
		width, height = col.Width, col.Height
	}

	pos.X = clamp(pos.X, 0, s.arenaWidth-width)
	pos.Y = clamp(pos.Y, 0, s.arenaHeight-height)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
