package utils

// ScriptedInput 可编程的 InputSource，用于测试和无窗口运行
//
// Held 中的动作在每帧都视为按下；Press 注册的动作只在下一次 Advance 之前有效。
type ScriptedInput struct {
	Held    map[Action]bool
	pressed map[Action]bool
}

// NewScriptedInput 创建空的脚本输入
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{
		Held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Hold 设置动作的持续按下状态
func (s *ScriptedInput) Hold(action Action, down bool) {
	s.Held[action] = down
}

// Press 触发一次离散动作（仅本帧有效）
func (s *ScriptedInput) Press(action Action) {
	s.pressed[action] = true
}

// Advance 进入下一帧，清空离散动作
func (s *ScriptedInput) Advance() {
	for action := range s.pressed {
		delete(s.pressed, action)
	}
}

// IsPressed 实现 InputSource
func (s *ScriptedInput) IsPressed(action Action) bool {
	return s.Held[action] || s.pressed[action]
}

// IsJustPressed 实现 InputSource
func (s *ScriptedInput) IsJustPressed(action Action) bool {
	return s.pressed[action]
}
