package entities

import (
	"fmt"

	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/ecs"
)

// NewZoneEntity 创建安全区实体
// 圆心固定在竞技场中心，初始半径为最大半径（对角线的一半）
func NewZoneEntity(em *ecs.EntityManager, cfg *config.TuningConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("tuning config cannot be nil")
	}

	maxRadius := cfg.MaxZoneRadius()

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.ZoneComponent{
		CenterX:              float64(cfg.Arena.Width / 2),
		CenterY:              float64(cfg.Arena.Height / 2),
		MaxRadius:            maxRadius,
		CurrentRadius:        maxRadius,
		MinRadius:            cfg.Zone.MinRadius,
		ShrinkTimer:          0,
		ShrinkIntervalFrames: cfg.Zone.ShrinkIntervalFrames,
		ShrinkRate:           cfg.Zone.ShrinkRate,
		DamagePerFrame:       cfg.Zone.DamagePerFrame,
	})

	return entityID, nil
}
