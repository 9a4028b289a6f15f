package behavior

import (
	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/ecs"
)

// handlePlayerIntent 从输入读取移动方向和开火事件
func (s *BehaviorSystem) handlePlayerIntent(entityID, _ ecs.EntityID) {
	s.inputSystem.Update(entityID)
}

// handlePlayerFire 本帧触发了开火事件时，命中射程内最近的敌人
func (s *BehaviorSystem) handlePlayerFire(entityID, _ ecs.EntityID) {
	intent, ok := ecs.GetComponent[*components.IntentComponent](s.entityManager, entityID)
	if !ok || !intent.Fire {
		return
	}
	s.combatSystem.PlayerFire(entityID)
}
