package systems

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/ecs"
	"github.com/decker502/royale/pkg/logging"
)

// ZoneSystem 驱动安全区收缩并对圈外的战斗单位造成伤害
type ZoneSystem struct {
	entityManager *ecs.EntityManager
	logger        zerolog.Logger
}

// NewZoneSystem 创建安全区系统
func NewZoneSystem(em *ecs.EntityManager) *ZoneSystem {
	return &ZoneSystem{
		entityManager: em,
		logger:        logging.For("ZoneSystem"),
	}
}

// Update 推进收缩计时，到达间隔时收缩一次
//
// 返回：
//   - bool: 本帧是否发生了收缩
func (s *ZoneSystem) Update() bool {
	shrunk := false
	for _, id := range ecs.GetEntitiesWith1[*components.ZoneComponent](s.entityManager) {
		zone, _ := ecs.GetComponent[*components.ZoneComponent](s.entityManager, id)
		if Shrink(zone) {
			shrunk = true
			s.logger.Info().Float64("radius", zone.CurrentRadius).Msg("安全区收缩")
		}
	}
	return shrunk
}

// Shrink 推进一帧收缩计时
// 计时达到间隔时归零，并将半径减少 ShrinkRate*MaxRadius，不低于 MinRadius
func Shrink(zone *components.ZoneComponent) bool {
	zone.ShrinkTimer++
	if zone.ShrinkTimer < zone.ShrinkIntervalFrames {
		return false
	}

	zone.ShrinkTimer = 0
	zone.CurrentRadius = math.Max(zone.MinRadius, zone.CurrentRadius-zone.ShrinkRate*zone.MaxRadius)
	return true
}

// ApplyZoneDamage 对所有位于圈外的存活战斗单位造成伤害
// 判定点为包围盒左上角
//
// 返回：
//   - []ecs.EntityID: 本帧受到安全区伤害的实体
func (s *ZoneSystem) ApplyZoneDamage() []ecs.EntityID {
	zones := ecs.GetEntitiesWith1[*components.ZoneComponent](s.entityManager)
	if len(zones) == 0 {
		return nil
	}
	zone, _ := ecs.GetComponent[*components.ZoneComponent](s.entityManager, zones[0])

	var damaged []ecs.EntityID
	combatants := ecs.GetEntitiesWith3[*components.FactionComponent, *components.PositionComponent, *components.HealthComponent](s.entityManager)
	for _, id := range combatants {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		if health.IsDead() || zone.Contains(pos.X, pos.Y) {
			continue
		}
		ApplyDamage(s.entityManager, id, zone.DamagePerFrame)
		damaged = append(damaged, id)
	}
	return damaged
}

// Zone 返回当前安全区组件，没有安全区时返回 nil
func (s *ZoneSystem) Zone() *components.ZoneComponent {
	zones := ecs.GetEntitiesWith1[*components.ZoneComponent](s.entityManager)
	if len(zones) == 0 {
		return nil
	}
	zone, _ := ecs.GetComponent[*components.ZoneComponent](s.entityManager, zones[0])
	return zone
}
