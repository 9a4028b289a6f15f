package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/ecs"
	"github.com/decker502/royale/pkg/entities"
	"github.com/decker502/royale/pkg/types"
)

func newTestWorld(t *testing.T) (*ecs.EntityManager, *config.TuningConfig) {
	t.Helper()
	return ecs.NewEntityManager(), config.DefaultTuningConfig()
}

func spawnPlayer(t *testing.T, em *ecs.EntityManager, cfg *config.TuningConfig, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlayerEntity(em, cfg, x, y)
	require.NoError(t, err)
	return id
}

func spawnEnemy(t *testing.T, em *ecs.EntityManager, cfg *config.TuningConfig, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemyEntity(em, cfg, x, y)
	require.NoError(t, err)
	return id
}

func spawnWeapon(t *testing.T, em *ecs.EntityManager, cfg *config.TuningConfig, wt types.WeaponType, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewWeaponEntity(em, cfg, wt, x, y)
	require.NoError(t, err)
	return id
}

func arm(t *testing.T, em *ecs.EntityManager, cfg *config.TuningConfig, id ecs.EntityID, wt types.WeaponType) {
	t.Helper()
	armament, ok := ecs.GetComponent[*components.ArmamentComponent](em, id)
	require.True(t, ok)
	armament.Armed = true
	armament.Weapon = wt
	armament.Damage = cfg.WeaponDamage(wt)
}

func position(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	require.True(t, ok)
	return pos
}

func health(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.HealthComponent {
	t.Helper()
	h, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	require.True(t, ok)
	return h
}

func setIntent(t *testing.T, em *ecs.EntityManager, id ecs.EntityID, x, y float64) {
	t.Helper()
	intent, ok := ecs.GetComponent[*components.IntentComponent](em, id)
	require.True(t, ok)
	intent.MoveX, intent.MoveY = x, y
}
