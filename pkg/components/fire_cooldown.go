package components

// FireCooldownComponent 敌人自动开火的冷却计数（帧）
// 计数 <= 0 时可以开火，开火后重置为 ResetFrames
type FireCooldownComponent struct {
	Frames      int
	ResetFrames int
}
