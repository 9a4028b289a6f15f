package components

// CollisionComponent 定义实体的包围盒尺寸
// 包围盒以 PositionComponent 为左上角，用于边界钳制和绘制
type CollisionComponent struct {
	Width  float64 // 包围盒宽度（像素）
	Height float64 // 包围盒高度（像素）
}
