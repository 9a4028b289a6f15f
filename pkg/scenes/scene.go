package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/game"
	"github.com/decker502/royale/pkg/systems"
	"github.com/decker502/royale/pkg/systems/behavior"
	"github.com/decker502/royale/pkg/utils"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Context 场景共享的依赖
type Context struct {
	Battle *behavior.BattleSystem
	Round  *game.RoundState
	Render *systems.RenderSystem
	Fonts  *game.FontManager
	Input  utils.InputSource
	Arena  config.ArenaConfig
}

// NewSceneFactory 返回按回合阶段创建场景的工厂
func NewSceneFactory(ctx *Context) game.SceneFactory {
	return func(phase game.Phase) game.Scene {
		switch phase {
		case game.PhaseMenu:
			return NewMenuScene(ctx)
		case game.PhasePlaying:
			return NewBattleScene(ctx)
		case game.PhaseOver:
			return NewGameOverScene(ctx)
		default:
			return nil
		}
	}
}

// drawCenteredText 在屏幕水平居中位置绘制一行文字，y 为文字顶部
func drawCenteredText(screen *ebiten.Image, ctx *Context, s string, size, y float64) {
	if ctx.Fonts == nil {
		return
	}
	face := ctx.Fonts.Face(size)
	utils.DrawText(screen, s, face, utils.CenteredTextX(s, face, float64(ctx.Arena.Width)), y, config.ColorText)
}

// drawText 在指定位置绘制一行文字
func drawText(screen *ebiten.Image, ctx *Context, s string, size, x, y float64) {
	if ctx.Fonts == nil {
		return
	}
	utils.DrawText(screen, s, ctx.Fonts.Face(size), x, y, config.ColorText)
}
