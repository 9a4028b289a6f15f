package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/types"
)

// BattleScene 回合进行中：推进模拟并绘制竞技场与 HUD
type BattleScene struct {
	ctx *Context
}

// NewBattleScene 创建战斗场景
func NewBattleScene(ctx *Context) *BattleScene {
	return &BattleScene{ctx: ctx}
}

// Update 推进一帧战斗模拟
func (b *BattleScene) Update(deltaTime float64) {
	b.ctx.Battle.Update(deltaTime)
}

// Draw 绘制竞技场和 HUD
func (b *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorGrass)
	b.ctx.Render.Draw(screen)

	for i, line := range b.HUDLines() {
		drawText(screen, b.ctx, line, config.HUDFontSize, config.HUDMarginX, config.HUDMarginX+float64(i)*config.HUDLineHeight)
	}
}

// HUDLines 返回左上角 HUD 的文字行
// 剩余人数包含玩家自己
func (b *BattleScene) HUDLines() []string {
	return FormatHUD(b.ctx.Battle.PlayerHealth(), b.ctx.Battle.PlayerWeapon(), b.ctx.Round.Kills, b.ctx.Round.RemainingOpponents)
}

// FormatHUD 格式化 HUD 文字，生命值向下取整显示
func FormatHUD(health float64, weapon types.WeaponType, kills, remainingOpponents int) []string {
	return []string{
		fmt.Sprintf("Health: %d", int(health)),
		fmt.Sprintf("Weapon: %s", weapon.DisplayName()),
		fmt.Sprintf("Kills: %d", kills),
		fmt.Sprintf("Players left: %d", remainingOpponents+1),
	}
}
