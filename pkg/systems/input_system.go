package systems

import (
	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/ecs"
	"github.com/decker502/royale/pkg/utils"
)

// InputSystem 将输入采样写入玩家的意图组件
//
// 方向键在按住期间持续生效；开火键只在刚按下的那一帧触发一次。
type InputSystem struct {
	entityManager *ecs.EntityManager
	input         utils.InputSource
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, input utils.InputSource) *InputSystem {
	return &InputSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 刷新指定实体的意图
func (s *InputSystem) Update(entityID ecs.EntityID) {
	intent, ok := ecs.GetComponent[*components.IntentComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	intent.MoveX, intent.MoveY = utils.AxisIntent(s.input)
	intent.Fire = s.input.IsJustPressed(utils.ActionFire)
}
