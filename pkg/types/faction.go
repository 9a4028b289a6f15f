package types

// Faction 战斗单位所属阵营
// 玩家与敌人共用同一套组件，阵营决定移动意图和开火触发的来源
type Faction int

const (
	// FactionPlayer 玩家（键盘控制）
	FactionPlayer Faction = iota
	// FactionEnemy 敌人（AI 控制）
	FactionEnemy
)

// String 返回阵营的字符串表示
func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}
