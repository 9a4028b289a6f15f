package systems

import (
	"image/color"
	"math"

	"github.com/rs/zerolog"

	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/ecs"
	"github.com/decker502/royale/pkg/entities"
	"github.com/decker502/royale/pkg/logging"
	"github.com/decker502/royale/pkg/types"
)

// CombatSystem 处理伤害结算
//
// 没有子弹实体：开火即命中，命中时生成一条仅用于表现的弹道线。
type CombatSystem struct {
	entityManager *ecs.EntityManager
	config        *config.TuningConfig
	logger        zerolog.Logger
}

// NewCombatSystem 创建战斗系统
func NewCombatSystem(em *ecs.EntityManager, cfg *config.TuningConfig) *CombatSystem {
	return &CombatSystem{
		entityManager: em,
		config:        cfg,
		logger:        logging.For("CombatSystem"),
	}
}

// ApplyDamage 扣除生命值，结果不低于 0
//
// 返回：
//   - bool: 扣血后目标是否死亡
func ApplyDamage(em *ecs.EntityManager, target ecs.EntityID, amount float64) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](em, target)
	if !ok {
		return false
	}

	health.Current -= amount
	if health.Current < 0 {
		health.Current = 0
	}
	return health.IsDead()
}

// Distance 两个实体位置（包围盒左上角）之间的欧氏距离
func Distance(em *ecs.EntityManager, a, b ecs.EntityID) float64 {
	posA, okA := ecs.GetComponent[*components.PositionComponent](em, a)
	posB, okB := ecs.GetComponent[*components.PositionComponent](em, b)
	if !okA || !okB {
		return math.Inf(1)
	}
	return math.Hypot(posA.X-posB.X, posA.Y-posB.Y)
}

// PlayerFire 玩家开火：命中射程内最近的存活敌人
//
// 未持枪时什么都不做。距离必须严格小于射程；距离相同时先创建的敌人优先。
//
// 返回：
//   - ecs.EntityID: 被命中的敌人，未命中为 0
//   - bool: 是否命中
func (s *CombatSystem) PlayerFire(shooterID ecs.EntityID) (ecs.EntityID, bool) {
	armament, ok := ecs.GetComponent[*components.ArmamentComponent](s.entityManager, shooterID)
	if !ok || !armament.Armed {
		return 0, false
	}

	var target ecs.EntityID
	best := s.config.Player.FireRange

	for _, enemyID := range s.livingEnemies() {
		d := Distance(s.entityManager, shooterID, enemyID)
		if d < best {
			best = d
			target = enemyID
		}
	}

	if target == 0 {
		s.logger.Debug().Msg("射程内没有敌人")
		return 0, false
	}

	killed := ApplyDamage(s.entityManager, target, armament.Damage)
	s.spawnTracer(shooterID, target, config.ColorTracerShot)

	s.logger.Debug().
		Uint64("target", uint64(target)).
		Float64("distance", best).
		Float64("damage", armament.Damage).
		Bool("killed", killed).
		Msg("玩家命中敌人")

	return target, true
}

// EnemyAutoFire 持枪敌人在射程内自动开火
//
// 参数：
//   - shooterID: 敌人实体
//   - targetID: 玩家实体
//   - distance: 本帧移动前测得的与玩家的距离
//
// 冷却计数只在持枪且目标在射程内时变化：计数 <= 0 时开火并重置，否则减 1。
//
// 返回：
//   - bool: 本帧是否开火
func (s *CombatSystem) EnemyAutoFire(shooterID, targetID ecs.EntityID, distance float64) bool {
	armament, ok := ecs.GetComponent[*components.ArmamentComponent](s.entityManager, shooterID)
	if !ok || !armament.Armed {
		return false
	}
	if distance >= s.config.Enemy.FireRange {
		return false
	}
	cooldown, ok := ecs.GetComponent[*components.FireCooldownComponent](s.entityManager, shooterID)
	if !ok {
		return false
	}

	if cooldown.Frames > 0 {
		cooldown.Frames--
		return false
	}

	ApplyDamage(s.entityManager, targetID, armament.Damage)
	cooldown.Frames = cooldown.ResetFrames
	s.spawnTracer(shooterID, targetID, config.ColorTracerEnemy)

	return true
}

// livingEnemies 返回所有存活的敌人，按创建顺序
func (s *CombatSystem) livingEnemies() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.FactionComponent, *components.HealthComponent](s.entityManager)
	result := make([]ecs.EntityID, 0, len(ids))
	for _, id := range ids {
		faction, _ := ecs.GetComponent[*components.FactionComponent](s.entityManager, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		if faction.Faction == types.FactionEnemy && !health.IsDead() {
			result = append(result, id)
		}
	}
	return result
}

// spawnTracer 在射手与目标的中心之间生成弹道线
func (s *CombatSystem) spawnTracer(from, to ecs.EntityID, clr color.RGBA) {
	if s.config.Effects.TracerLifetime <= 0 {
		return
	}
	fx, fy := s.center(from)
	tx, ty := s.center(to)
	if _, err := entities.NewTracerEffect(s.entityManager, fx, fy, tx, ty, clr, s.config.Effects.TracerLifetime); err != nil {
		s.logger.Warn().Err(err).Msg("创建弹道线失败")
	}
}

func (s *CombatSystem) center(id ecs.EntityID) (float64, float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return 0, 0
	}
	x, y := pos.X, pos.Y
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		x += col.Width / 2
		y += col.Height / 2
	}
	return x, y
}
