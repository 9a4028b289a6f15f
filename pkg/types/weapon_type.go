// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// WeaponType 定义武器的类型
type WeaponType int

const (
	// WeaponNone 未持有武器
	WeaponNone WeaponType = iota
	// WeaponPistol 手枪
	WeaponPistol
	// WeaponRifle 步枪
	WeaponRifle
	// WeaponShotgun 霰弹枪
	WeaponShotgun
)

// PickupWeaponTypes 地图上可以刷新的武器类型（随机选取的候选列表）
var PickupWeaponTypes = []WeaponType{WeaponPistol, WeaponRifle, WeaponShotgun}

// String 返回武器类型的字符串表示（同时用作配置文件中的键名）
func (w WeaponType) String() string {
	switch w {
	case WeaponPistol:
		return "pistol"
	case WeaponRifle:
		return "rifle"
	case WeaponShotgun:
		return "shotgun"
	default:
		return "none"
	}
}

// DisplayName 返回 HUD 上显示的武器名称
func (w WeaponType) DisplayName() string {
	if w == WeaponNone {
		return "None"
	}
	return w.String()
}

// ParseWeaponType 将配置文件中的键名解析为 WeaponType
func ParseWeaponType(name string) (WeaponType, error) {
	for _, wt := range PickupWeaponTypes {
		if wt.String() == name {
			return wt, nil
		}
	}
	return WeaponNone, fmt.Errorf("unknown weapon type %q", name)
}
