package components

import "github.com/decker502/royale/pkg/types"

// FactionComponent 标识战斗单位所属阵营
// 行为系统根据阵营从策略表中选择意图来源和开火触发方式
type FactionComponent struct {
	Faction types.Faction
}
