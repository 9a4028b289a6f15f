package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/ecs"
	"github.com/decker502/royale/pkg/types"
)

// NewPlayerEntity 创建玩家实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 数值配置
//   - x, y: 出生位置（包围盒左上角）
//
// 返回:
//   - ecs.EntityID: 创建的玩家实体ID，失败返回 0
//   - error: 参数非法时返回错误
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.TuningConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("tuning config cannot be nil")
	}

	return newCombatant(em, types.FactionPlayer, cfg.Player.CombatantStats, x, y, config.ColorPlayer), nil
}

// NewEnemyEntity 创建敌人实体
// 敌人与玩家共用同一套组件，额外携带开火冷却计数
//
// 参数:
//   - em: 实体管理器
//   - cfg: 数值配置
//   - x, y: 出生位置（包围盒左上角）
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID，失败返回 0
//   - error: 参数非法时返回错误
func NewEnemyEntity(em *ecs.EntityManager, cfg *config.TuningConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("tuning config cannot be nil")
	}

	entityID := newCombatant(em, types.FactionEnemy, cfg.Enemy.CombatantStats, x, y, config.ColorEnemy)

	// 冷却从 0 开始：拾取武器后第一次进入射程立即开火
	em.AddComponent(entityID, &components.FireCooldownComponent{
		Frames:      0,
		ResetFrames: cfg.Enemy.FireCooldownFrames,
	})

	return entityID, nil
}

// newCombatant 组装战斗单位的公共组件
func newCombatant(em *ecs.EntityManager, faction types.Faction, stats config.CombatantStats, x, y float64, clr color.RGBA) ecs.EntityID {
	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  stats.Width,
		Height: stats.Height,
	})
	em.AddComponent(entityID, &components.MovementComponent{Speed: stats.Speed})
	em.AddComponent(entityID, &components.HealthComponent{
		Current: stats.Health,
		Max:     stats.Health,
	})
	em.AddComponent(entityID, &components.ArmamentComponent{
		Armed:  false,
		Weapon: types.WeaponNone,
		Damage: stats.DefaultDamage,
	})
	em.AddComponent(entityID, &components.FactionComponent{Faction: faction})
	em.AddComponent(entityID, &components.IntentComponent{})
	em.AddComponent(entityID, &components.ShapeComponent{
		Color:         clr,
		ShowHealthBar: true,
	})

	return entityID
}
