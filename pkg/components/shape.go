package components

import "image/color"

// ShapeComponent 纯色矩形外观
// 尺寸取自 CollisionComponent（战斗单位）或 Size（武器）
type ShapeComponent struct {
	Color color.RGBA
	// Size 非零时覆盖包围盒尺寸，绘制为 Size×Size 的方块
	Size float64
	// ShowHealthBar 是否在头顶绘制血条
	ShowHealthBar bool
}
