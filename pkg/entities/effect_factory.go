package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/ecs"
)

// NewTracerEffect 创建一次命中的弹道线特效
// 特效只用于表现，由 LifetimeSystem 在 lifetime 秒后清理
//
// 参数:
//   - em: 实体管理器
//   - fromX, fromY: 射手中心
//   - toX, toY: 目标中心
//   - clr: 弹道颜色
//   - lifetime: 存在时间（秒）
func NewTracerEffect(em *ecs.EntityManager, fromX, fromY, toX, toY float64, clr color.RGBA, lifetime float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if lifetime <= 0 {
		return 0, fmt.Errorf("tracer lifetime must be positive, got %f", lifetime)
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.TracerComponent{
		FromX: fromX,
		FromY: fromY,
		ToX:   toX,
		ToY:   toY,
		Color: clr,
	})
	em.AddComponent(entityID, &components.LifetimeComponent{
		MaxLifetime: lifetime,
	})

	return entityID, nil
}
