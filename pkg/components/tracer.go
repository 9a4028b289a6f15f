package components

import "image/color"

// TracerComponent 一次命中的弹道线（纯表现，不参与伤害计算）
type TracerComponent struct {
	FromX, FromY float64
	ToX, ToY     float64
	Color        color.RGBA
}
