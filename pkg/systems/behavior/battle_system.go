package behavior

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/ecs"
	"github.com/decker502/royale/pkg/game"
	"github.com/decker502/royale/pkg/logging"
	"github.com/decker502/royale/pkg/systems"
	"github.com/decker502/royale/pkg/types"
	"github.com/decker502/royale/pkg/utils"
)

// BattleSystem 驱动一个回合的逐帧模拟
//
// 每帧处理顺序：
//  1. 玩家：意图、开火事件、移动、拾取
//  2. 敌人（按创建顺序）：执行 AI、移动、拾取、自动开火，之后移除已死亡的敌人并计入击杀
//  3. 安全区收缩，圈外战斗单位扣血
//  4. 移除被安全区击杀的敌人
//  5. 终局判定：玩家死亡优先判负，否则敌人清空判胜
type BattleSystem struct {
	entityManager *ecs.EntityManager
	config        *config.TuningConfig
	round         *game.RoundState

	spawnSystem    *systems.SpawnSystem
	pickupSystem   *systems.PickupSystem
	combatSystem   *systems.CombatSystem
	zoneSystem     *systems.ZoneSystem
	lifetimeSystem *systems.LifetimeSystem
	behaviorSystem *BehaviorSystem

	playerID ecs.EntityID
	zoneID   ecs.EntityID

	logFrameCounter int // 日志输出计数器
	logger          zerolog.Logger
}

// NewBattleSystem 创建战斗模拟
//
// 参数:
//   - em: EntityManager 实例
//   - cfg: 数值配置
//   - rng: 出生点与敌人 AI 共用的随机数源
//   - input: 玩家输入源
//   - round: 回合状态
func NewBattleSystem(em *ecs.EntityManager, cfg *config.TuningConfig, rng *rand.Rand, input utils.InputSource, round *game.RoundState) (*BattleSystem, error) {
	if em == nil || cfg == nil || rng == nil || input == nil || round == nil {
		return nil, fmt.Errorf("battle system dependencies cannot be nil")
	}

	pickup := systems.NewPickupSystem(em, cfg)
	combat := systems.NewCombatSystem(em, cfg)

	return &BattleSystem{
		entityManager:  em,
		config:         cfg,
		round:          round,
		spawnSystem:    systems.NewSpawnSystem(em, cfg, rng),
		pickupSystem:   pickup,
		combatSystem:   combat,
		zoneSystem:     systems.NewZoneSystem(em),
		lifetimeSystem: systems.NewLifetimeSystem(em),
		behaviorSystem: NewBehaviorSystem(em, cfg, rng, input, pickup, combat),
		logger:         logging.For("BattleSystem"),
	}, nil
}

// StartRound 清空世界、布置新回合并进入 playing 阶段
func (s *BattleSystem) StartRound() error {
	if s.round.Phase != game.PhaseMenu {
		return fmt.Errorf("cannot start round from phase %s", s.round.Phase)
	}
	s.entityManager.Clear()

	spawned, err := s.spawnSystem.SpawnRound()
	if err != nil {
		return fmt.Errorf("failed to spawn round: %w", err)
	}
	return s.beginRound(spawned)
}

// beginRound 使用已创建的实体开始回合
func (s *BattleSystem) beginRound(spawned *systems.RoundEntities) error {
	if err := s.round.Start(len(spawned.Enemies)); err != nil {
		return err
	}

	s.playerID = spawned.Player
	s.zoneID = spawned.Zone
	s.logFrameCounter = 0

	s.logger.Info().
		Str("round", s.round.ID.String()).
		Int("enemies", len(spawned.Enemies)).
		Int("weapons", len(spawned.Weapons)).
		Msg("回合开始")
	return nil
}

// Update 推进一帧，仅在 playing 阶段生效
func (s *BattleSystem) Update(deltaTime float64) {
	if s.round.Phase != game.PhasePlaying {
		return
	}
	s.round.Tick()

	s.pickupSystem.RebuildIndex()

	s.behaviorSystem.UpdateCombatant(s.playerID, s.playerID)

	// 本帧被玩家击倒的敌人仍完成这一帧的行动，之后才离开花名册
	for _, enemyID := range s.enemies() {
		s.behaviorSystem.UpdateCombatant(enemyID, s.playerID)
		if s.isDead(enemyID) {
			s.eliminate(enemyID, "combat")
		}
	}

	s.zoneSystem.Update()
	s.zoneSystem.ApplyZoneDamage()

	for _, enemyID := range s.enemies() {
		if s.isDead(enemyID) {
			s.eliminate(enemyID, "zone")
		}
	}

	s.lifetimeSystem.Update(deltaTime)

	s.logFrameCounter++
	if s.logFrameCounter%LogOutputFrameInterval == 1 {
		s.logger.Debug().
			Int("frame", s.round.Frame).
			Int("enemies", s.round.RemainingOpponents).
			Float64("playerHealth", s.PlayerHealth()).
			Msg("战斗更新")
	}

	s.checkTerminal()

	s.entityManager.RemoveMarkedEntities()
}

// checkTerminal 终局判定，玩家死亡优先
func (s *BattleSystem) checkTerminal() {
	var outcome game.Outcome
	switch {
	case s.isDead(s.playerID):
		outcome = game.OutcomeDefeat
	case len(s.enemies()) == 0:
		outcome = game.OutcomeVictory
	default:
		return
	}

	if err := s.round.Finish(outcome); err != nil {
		s.logger.Error().Err(err).Msg("无法结束回合")
		return
	}

	s.logger.Info().
		Str("round", s.round.ID.String()).
		Stringer("outcome", outcome).
		Int("kills", s.round.Kills).
		Int("frames", s.round.Frame).
		Msg("回合结束")
}

// eliminate 从花名册中移除敌人并计入击杀
func (s *BattleSystem) eliminate(enemyID ecs.EntityID, cause string) {
	s.entityManager.DestroyEntity(enemyID)
	s.round.RecordElimination()

	s.logger.Debug().
		Uint64("enemy", uint64(enemyID)).
		Str("cause", cause).
		Int("remaining", s.round.RemainingOpponents).
		Msg("敌人被淘汰")
}

// enemies 返回当前花名册中的敌人，按创建顺序
func (s *BattleSystem) enemies() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.FactionComponent, *components.HealthComponent](s.entityManager)
	result := make([]ecs.EntityID, 0, len(ids))
	for _, id := range ids {
		faction, _ := ecs.GetComponent[*components.FactionComponent](s.entityManager, id)
		if faction.Faction == types.FactionEnemy {
			result = append(result, id)
		}
	}
	return result
}

func (s *BattleSystem) isDead(id ecs.EntityID) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	return !ok || health.IsDead()
}

// PlayerID 返回当前回合的玩家实体
func (s *BattleSystem) PlayerID() ecs.EntityID {
	return s.playerID
}

// ZoneID 返回当前回合的安全区实体
func (s *BattleSystem) ZoneID() ecs.EntityID {
	return s.zoneID
}

// Round 返回回合状态
func (s *BattleSystem) Round() *game.RoundState {
	return s.round
}

// PlayerHealth 返回玩家当前生命值
func (s *BattleSystem) PlayerHealth() float64 {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.playerID)
	if !ok {
		return 0
	}
	return health.Current
}

// PlayerWeapon 返回玩家当前持有的武器，未持枪为 WeaponNone
func (s *BattleSystem) PlayerWeapon() types.WeaponType {
	armament, ok := ecs.GetComponent[*components.ArmamentComponent](s.entityManager, s.playerID)
	if !ok || !armament.Armed {
		return types.WeaponNone
	}
	return armament.Weapon
}

// ZoneRadius 返回安全区当前半径
func (s *BattleSystem) ZoneRadius() float64 {
	zone, ok := ecs.GetComponent[*components.ZoneComponent](s.entityManager, s.zoneID)
	if !ok {
		return 0
	}
	return zone.CurrentRadius
}
