package systems

import (
	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/ecs"
)

// LifetimeSystem 管理短暂存在的实体（弹道线等表现实体）
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 推进所有拥有生命周期组件的实体，过期的实体标记待删除
func (s *LifetimeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.CurrentLifetime += deltaTime

		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
		}

		// 如果已过期,标记实体待删除
		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
		}
	}
}
