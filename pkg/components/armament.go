package components

import "github.com/decker502/royale/pkg/types"

// ArmamentComponent 战斗单位的持枪状态
type ArmamentComponent struct {
	Armed  bool             // 是否已拾取武器
	Weapon types.WeaponType // 当前武器类型，未持枪时为 WeaponNone
	Damage float64          // 当前伤害值（未持枪时为默认伤害）
}
