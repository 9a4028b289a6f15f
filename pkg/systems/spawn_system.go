package systems

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/ecs"
	"github.com/decker502/royale/pkg/entities"
	"github.com/decker502/royale/pkg/logging"
	"github.com/decker502/royale/pkg/types"
)

// 单个敌人出生点的最大重采样次数
const maxSpawnAttempts = 10000

// RoundEntities 一个回合开始时创建的实体
type RoundEntities struct {
	Player  ecs.EntityID
	Enemies []ecs.EntityID
	Weapons []ecs.EntityID
	Zone    ecs.EntityID
}

// SpawnSystem 负责回合开始时的实体布置
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.TuningConfig
	rng           *rand.Rand
	logger        zerolog.Logger
}

// NewSpawnSystem 创建出生系统
// rng 由调用方注入，固定种子即可复现同一局的布置
func NewSpawnSystem(em *ecs.EntityManager, cfg *config.TuningConfig, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
		logger:        logging.For("SpawnSystem"),
	}
}

// SpawnRound 布置一个新回合
//
// 创建顺序：玩家、敌人、武器、安全区。敌人与武器的坐标为
// [margin, W-margin] × [margin, H-margin] 内的随机整数，
// 敌人出生点与玩家的距离不足时重新采样。
//
// 返回：
//   - *RoundEntities: 创建的实体
//   - error: 无法找到合法出生点时返回错误
func (s *SpawnSystem) SpawnRound() (*RoundEntities, error) {
	cfg := s.config
	round := &RoundEntities{}

	playerX := float64(cfg.Arena.Width / 2)
	playerY := float64(cfg.Arena.Height / 2)
	playerID, err := entities.NewPlayerEntity(s.entityManager, cfg, playerX, playerY)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn player: %w", err)
	}
	round.Player = playerID

	for i := 0; i < cfg.Spawn.EnemyCount; i++ {
		x, y, err := s.enemySpawnPoint(playerX, playerY)
		if err != nil {
			return nil, err
		}
		enemyID, err := entities.NewEnemyEntity(s.entityManager, cfg, x, y)
		if err != nil {
			return nil, fmt.Errorf("failed to spawn enemy: %w", err)
		}
		round.Enemies = append(round.Enemies, enemyID)
	}

	for i := 0; i < cfg.Spawn.WeaponCount; i++ {
		x, y := s.randomPoint()
		weaponType := types.PickupWeaponTypes[s.rng.Intn(len(types.PickupWeaponTypes))]
		weaponID, err := entities.NewWeaponEntity(s.entityManager, cfg, weaponType, x, y)
		if err != nil {
			return nil, fmt.Errorf("failed to spawn weapon: %w", err)
		}
		round.Weapons = append(round.Weapons, weaponID)
	}

	zoneID, err := entities.NewZoneEntity(s.entityManager, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn zone: %w", err)
	}
	round.Zone = zoneID

	s.logger.Debug().
		Int("enemies", len(round.Enemies)).
		Int("weapons", len(round.Weapons)).
		Msg("回合布置完成")

	return round, nil
}

// enemySpawnPoint 拒绝采样一个离玩家足够远的出生点
func (s *SpawnSystem) enemySpawnPoint(playerX, playerY float64) (float64, float64, error) {
	for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
		x, y := s.randomPoint()
		if math.Hypot(x-playerX, y-playerY) >= s.config.Spawn.MinPlayerDistance {
			return x, y, nil
		}
	}
	return 0, 0, fmt.Errorf("no enemy spawn point at least %.0f from the player after %d attempts",
		s.config.Spawn.MinPlayerDistance, maxSpawnAttempts)
}

// randomPoint 返回 [margin, W-margin] × [margin, H-margin] 内的随机整数坐标（含边界）
func (s *SpawnSystem) randomPoint() (float64, float64) {
	margin := s.config.Spawn.Margin
	x := margin + s.rng.Intn(s.config.Arena.Width-2*margin+1)
	y := margin + s.rng.Intn(s.config.Arena.Height-2*margin+1)
	return float64(x), float64(y)
}
