package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/logging"
	"github.com/decker502/royale/pkg/utils"
)

// MenuScene 主菜单，按确认键开始新回合
type MenuScene struct {
	ctx    *Context
	logger zerolog.Logger
}

// NewMenuScene 创建主菜单场景
func NewMenuScene(ctx *Context) *MenuScene {
	return &MenuScene{
		ctx:    ctx,
		logger: logging.For("MenuScene"),
	}
}

// Update 检测确认键并开始回合
func (m *MenuScene) Update(deltaTime float64) {
	if !m.ctx.Input.IsJustPressed(utils.ActionConfirm) {
		return
	}
	if err := m.ctx.Battle.StartRound(); err != nil {
		m.logger.Error().Err(err).Msg("无法开始回合")
	}
}

// Draw 绘制标题和提示
func (m *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorGrass)

	h := m.ctx.Arena.Height
	drawCenteredText(screen, m.ctx, config.WindowTitle, config.TitleFontSize, float64(h/3))
	drawCenteredText(screen, m.ctx, "Press ENTER to start", config.HUDFontSize, float64(h/2))
}
