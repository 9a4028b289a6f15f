package components

import "math"

// ZoneComponent 收缩的圆形安全区
//
// 不变量：MinRadius <= CurrentRadius <= MaxRadius，且 CurrentRadius 只会通过
// 周期性收缩事件减小。
type ZoneComponent struct {
	CenterX float64
	CenterY float64

	MaxRadius     float64
	CurrentRadius float64
	MinRadius     float64

	ShrinkTimer          int     // 距离上次收缩已经过的帧数
	ShrinkIntervalFrames int     // 收缩间隔（帧）
	ShrinkRate           float64 // 每次收缩减少 MaxRadius 的比例

	DamagePerFrame float64 // 圈外每帧伤害
}

// Contains 判断点是否在安全区内（边界上视为在圈内）
func (z *ZoneComponent) Contains(x, y float64) bool {
	return math.Hypot(x-z.CenterX, y-z.CenterY) <= z.CurrentRadius
}
