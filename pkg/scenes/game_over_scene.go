package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/logging"
	"github.com/decker502/royale/pkg/utils"
)

// 结算画面文字
const (
	VictoryTitle = "WINNER WINNER CHICKEN DINNER!"
	DefeatTitle  = "GAME OVER"
)

// GameOverScene 结算画面，按确认键返回主菜单
type GameOverScene struct {
	ctx    *Context
	logger zerolog.Logger
}

// NewGameOverScene 创建结算场景
func NewGameOverScene(ctx *Context) *GameOverScene {
	return &GameOverScene{
		ctx:    ctx,
		logger: logging.For("GameOverScene"),
	}
}

// Update 检测确认键并返回主菜单
func (g *GameOverScene) Update(deltaTime float64) {
	if !g.ctx.Input.IsJustPressed(utils.ActionConfirm) {
		return
	}
	if err := g.ctx.Round.ReturnToMenu(); err != nil {
		g.logger.Error().Err(err).Msg("无法返回主菜单")
	}
}

// Title 根据回合结果返回标题
func (g *GameOverScene) Title() string {
	if g.ctx.Round.IsVictory() {
		return VictoryTitle
	}
	return DefeatTitle
}

// Draw 绘制结果、击杀数和提示
func (g *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorGrass)

	h := g.ctx.Arena.Height
	drawCenteredText(screen, g.ctx, g.Title(), config.TitleFontSize, float64(h/3))
	drawCenteredText(screen, g.ctx, fmt.Sprintf("Kills: %d", g.ctx.Round.Kills), config.HUDFontSize, float64(h/2))
	drawCenteredText(screen, g.ctx, "Press ENTER to return to menu", config.HUDFontSize, float64(h/2+50))
}
