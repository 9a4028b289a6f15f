package components

// PositionComponent 存储实体在竞技场中的位置（像素）
// 对于战斗单位和武器，位置是包围盒的左上角
type PositionComponent struct {
	X float64
	Y float64
}
