package config

import "image/color"

// 画面配色
var (
	ColorGrass       = color.RGBA{R: 0, G: 255, B: 0, A: 255} // 背景（草地）
	ColorText        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorPlayer      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	ColorEnemy       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorZoneRing    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	ColorHealthBack  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorHealthFill  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorTracerShot  = color.RGBA{R: 255, G: 255, B: 0, A: 255} // 玩家弹道
	ColorTracerEnemy = color.RGBA{R: 255, G: 128, B: 0, A: 255} // 敌人弹道

	// WeaponColors 武器方块颜色，key 为武器类型名
	WeaponColors = map[string]color.RGBA{
		"pistol":  {R: 0, G: 0, B: 0, A: 255},
		"rifle":   {R: 139, G: 69, B: 19, A: 255},
		"shotgun": {R: 255, G: 255, B: 255, A: 255},
	}
)

// 窗口与界面布局常量
const (
	WindowTitle = "Arena Royale"

	HealthBarHeight  = 5.0  // 血条高度
	HealthBarOffsetY = 10.0 // 血条位于包围盒上方的距离
	ZoneRingWidth    = 2.0  // 安全区圆环线宽

	HUDFontSize   = 24.0
	TitleFontSize = 36.0
	HUDMarginX    = 10.0
	HUDLineHeight = 40.0
)
