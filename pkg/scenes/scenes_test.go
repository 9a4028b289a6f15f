package scenes

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/ecs"
	"github.com/decker502/royale/pkg/game"
	"github.com/decker502/royale/pkg/systems"
	"github.com/decker502/royale/pkg/systems/behavior"
	"github.com/decker502/royale/pkg/types"
	"github.com/decker502/royale/pkg/utils"
)

func newTestContext(t *testing.T) (*Context, *utils.ScriptedInput) {
	t.Helper()
	ctx, input, _ := newTestWorldContext(t)
	return ctx, input
}

func newTestWorldContext(t *testing.T) (*Context, *utils.ScriptedInput, *ecs.EntityManager) {
	t.Helper()

	em := ecs.NewEntityManager()
	cfg := config.DefaultTuningConfig()
	input := utils.NewScriptedInput()
	round := game.NewRoundState(nil)

	battle, err := behavior.NewBattleSystem(em, cfg, rand.New(rand.NewSource(1)), input, round)
	require.NoError(t, err)

	return &Context{
		Battle: battle,
		Round:  round,
		Render: systems.NewRenderSystem(em),
		Input:  input,
		Arena:  cfg.Arena,
	}, input, em
}

func TestSceneFactoryByPhase(t *testing.T) {
	ctx, _ := newTestContext(t)
	factory := NewSceneFactory(ctx)

	assert.IsType(t, &MenuScene{}, factory(game.PhaseMenu))
	assert.IsType(t, &BattleScene{}, factory(game.PhasePlaying))
	assert.IsType(t, &GameOverScene{}, factory(game.PhaseOver))
	assert.Nil(t, factory(game.Phase(99)))
}

// TestRoundLifecycleThroughScenes menu → playing → over → menu
func TestRoundLifecycleThroughScenes(t *testing.T) {
	ctx, input := newTestContext(t)
	sm := game.NewSceneManager()
	sm.SetSceneFactory(NewSceneFactory(ctx))

	sm.SyncPhase(ctx.Round.Phase)
	sm.Update(1.0 / 60.0)
	assert.Equal(t, game.PhaseMenu, ctx.Round.Phase, "menu waits for confirm")

	input.Press(utils.ActionConfirm)
	sm.Update(1.0 / 60.0)
	input.Advance()
	require.Equal(t, game.PhasePlaying, ctx.Round.Phase)
	assert.Equal(t, 9, ctx.Round.RemainingOpponents)

	require.True(t, sm.SyncPhase(ctx.Round.Phase))
	require.IsType(t, &BattleScene{}, sm.GetCurrentScene())

	// 直接判负以进入结算
	require.NoError(t, ctx.Round.Finish(game.OutcomeDefeat))
	require.True(t, sm.SyncPhase(ctx.Round.Phase))
	over, ok := sm.GetCurrentScene().(*GameOverScene)
	require.True(t, ok)
	assert.Equal(t, DefeatTitle, over.Title())

	sm.Update(1.0 / 60.0)
	assert.Equal(t, game.PhaseOver, ctx.Round.Phase, "game over waits for confirm")

	input.Press(utils.ActionConfirm)
	sm.Update(1.0 / 60.0)
	assert.Equal(t, game.PhaseMenu, ctx.Round.Phase)
}

// TestShotDownWithOpponentsLeftShowsDefeat 对手尚存时玩家被击倒，结算画面显示 GAME OVER
func TestShotDownWithOpponentsLeftShowsDefeat(t *testing.T) {
	ctx, _, em := newTestWorldContext(t)
	sm := game.NewSceneManager()
	sm.SetSceneFactory(NewSceneFactory(ctx))
	require.NoError(t, ctx.Battle.StartRound())
	require.True(t, sm.SyncPhase(ctx.Round.Phase))

	playerID := ctx.Battle.PlayerID()
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)
	playerHealth, _ := ecs.GetComponent[*components.HealthComponent](em, playerID)
	playerHealth.Current = 5

	// 只有敌人带开火冷却组件；把第一个敌人放到射程内并给它一把步枪
	enemies := ecs.GetEntitiesWith1[*components.FireCooldownComponent](em)
	require.NotEmpty(t, enemies)
	shooter := enemies[0]
	shooterPos, _ := ecs.GetComponent[*components.PositionComponent](em, shooter)
	shooterPos.X, shooterPos.Y = playerPos.X, playerPos.Y+100
	armament, _ := ecs.GetComponent[*components.ArmamentComponent](em, shooter)
	armament.Armed = true
	armament.Weapon = types.WeaponRifle
	armament.Damage = 35

	sm.Update(1.0 / 60.0)

	require.Equal(t, game.PhaseOver, ctx.Round.Phase)
	assert.Equal(t, game.OutcomeDefeat, ctx.Round.Outcome)
	assert.Greater(t, ctx.Round.RemainingOpponents, 0)

	require.True(t, sm.SyncPhase(ctx.Round.Phase))
	over, ok := sm.GetCurrentScene().(*GameOverScene)
	require.True(t, ok)
	assert.Equal(t, DefeatTitle, over.Title())
}

func TestGameOverVictoryTitle(t *testing.T) {
	ctx, _ := newTestContext(t)
	require.NoError(t, ctx.Round.Start(0))
	require.NoError(t, ctx.Round.Finish(game.OutcomeVictory))

	assert.Equal(t, VictoryTitle, NewGameOverScene(ctx).Title())
}

func TestFormatHUD(t *testing.T) {
	assert.Equal(t, []string{
		"Health: 99",
		"Weapon: None",
		"Kills: 0",
		"Players left: 10",
	}, FormatHUD(99.5, types.WeaponNone, 0, 9))

	assert.Equal(t, []string{
		"Health: 0",
		"Weapon: shotgun",
		"Kills: 9",
		"Players left: 1",
	}, FormatHUD(0, types.WeaponShotgun, 9, 0))
}

func TestBattleSceneHUDLines(t *testing.T) {
	ctx, _ := newTestContext(t)
	require.NoError(t, ctx.Battle.StartRound())

	lines := NewBattleScene(ctx).HUDLines()
	assert.Equal(t, "Health: 100", lines[0])
	assert.Equal(t, "Players left: 10", lines[3])
}
