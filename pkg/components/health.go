package components

// HealthComponent 存储战斗单位的生命值信息
// 生命值为实数（安全区每帧造成 0.5 伤害），始终被钳制在 [0, Max]
type HealthComponent struct {
	Current float64 // 当前生命值
	Max     float64 // 最大生命值（血条满格对应的值）
}

// IsDead 生命值归零即视为死亡
func (h *HealthComponent) IsDead() bool {
	return h.Current <= 0
}

// Ratio 返回当前生命值占最大值的比例，用于绘制血条
func (h *HealthComponent) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}
