package entities

import (
	"fmt"

	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/ecs"
	"github.com/decker502/royale/pkg/types"
)

// NewWeaponEntity 创建地图上的可拾取武器
// 伤害值由武器类型查表得到
func NewWeaponEntity(em *ecs.EntityManager, cfg *config.TuningConfig, weaponType types.WeaponType, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("tuning config cannot be nil")
	}
	if weaponType == types.WeaponNone {
		return 0, fmt.Errorf("cannot spawn a pickup without a weapon type")
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.WeaponPickupComponent{
		Type:   weaponType,
		Damage: cfg.WeaponDamage(weaponType),
	})
	em.AddComponent(entityID, &components.ShapeComponent{
		Color: config.WeaponColors[weaponType.String()],
		Size:  cfg.Weapons.Size,
	})

	return entityID, nil
}
