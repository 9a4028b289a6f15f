package components

// IntentComponent 本帧的移动与开火意图
//
// 玩家由输入系统写入，敌人由 AI 策略写入，移动系统只读取意图，
// 因此两种阵营共用同一套移动、钳制与拾取逻辑。
type IntentComponent struct {
	// MoveX, MoveY 各轴方向，取值通常为 -1/0/+1；
	// 敌人逼近时为单位向量分量。两轴独立计算，不做对角线归一化。
	MoveX float64
	MoveY float64
	// Fire 本帧是否触发了一次开火动作（离散事件）
	Fire bool
	// TargetDistance 敌人在本帧移动前与玩家的距离，自动开火按此判定射程
	TargetDistance float64
}
