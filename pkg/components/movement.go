package components

// MovementComponent 战斗单位的移动属性
type MovementComponent struct {
	Speed float64 // 每帧每个轴向的移动距离（像素）
}
