package components

import "github.com/decker502/royale/pkg/types"

// WeaponPickupComponent 地图上可拾取的武器
// 创建后不可变，被拾取时整个实体被销毁
type WeaponPickupComponent struct {
	Type   types.WeaponType
	Damage float64
}
