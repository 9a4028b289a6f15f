package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/royale/pkg/ecs"
)

func TestMovementAxisStepping(t *testing.T) {
	tests := []struct {
		name  string
		moveX float64
		moveY float64
		wantX float64
		wantY float64
	}{
		{"idle", 0, 0, 400, 300},
		{"right", 1, 0, 405, 300},
		{"up", 0, -1, 400, 295},
		{"diagonal is not normalized", 1, 1, 405, 305},
		{"opposite keys cancel", 0, 0, 400, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, cfg := newTestWorld(t)
			ms := NewMovementSystem(em, cfg)
			player := spawnPlayer(t, em, cfg, 400, 300)

			setIntent(t, em, player, tt.moveX, tt.moveY)
			ms.Move(player)

			pos := position(t, em, player)
			assert.Equal(t, tt.wantX, pos.X)
			assert.Equal(t, tt.wantY, pos.Y)
		})
	}
}

func TestMovementClampsToArena(t *testing.T) {
	em, cfg := newTestWorld(t)
	ms := NewMovementSystem(em, cfg)

	player := spawnPlayer(t, em, cfg, 2, 768)
	setIntent(t, em, player, -1, 1)
	ms.Move(player)

	pos := position(t, em, player)
	assert.Equal(t, 0.0, pos.X)
	assert.Equal(t, 570.0, pos.Y, "y is clamped to H - height")

	player2 := spawnPlayer(t, em, cfg, 769, 1)
	setIntent(t, em, player2, 1, -1)
	ms.Move(player2)

	pos2 := position(t, em, player2)
	assert.Equal(t, 770.0, pos2.X)
	assert.Equal(t, 0.0, pos2.Y)
}

// TestMovementBoundsInvariant 任意意图序列下位置始终在竞技场内
func TestMovementBoundsInvariant(t *testing.T) {
	em, cfg := newTestWorld(t)
	ms := NewMovementSystem(em, cfg)
	rng := rand.New(rand.NewSource(7))

	player := spawnPlayer(t, em, cfg, 400, 300)
	enemy := spawnEnemy(t, em, cfg, 100, 100)

	for frame := 0; frame < 5000; frame++ {
		setIntent(t, em, player, float64(rng.Intn(3)-1), float64(rng.Intn(3)-1))
		setIntent(t, em, enemy, rng.Float64()*2-1, rng.Float64()*2-1)
		ms.Move(player)
		ms.Move(enemy)

		for _, id := range []ecs.EntityID{player, enemy} {
			pos := position(t, em, id)
			if pos.X < 0 || pos.X > 770 || pos.Y < 0 || pos.Y > 570 {
				t.Fatalf("frame %d: entity %d at (%.2f, %.2f) is out of bounds", frame, id, pos.X, pos.Y)
			}
		}
	}
}
