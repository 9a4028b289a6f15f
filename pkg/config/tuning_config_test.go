package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/royale/pkg/types"
)

func TestLoadTuningConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *TuningConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
zone:
  shrinkIntervalFrames: 120
weapons:
  damage:
    rifle: 40
`,
			validate: func(t *testing.T, cfg *TuningConfig) {
				if cfg.Zone.ShrinkIntervalFrames != 120 {
					t.Errorf("expected shrinkIntervalFrames = 120, got %d", cfg.Zone.ShrinkIntervalFrames)
				}
				// 未覆盖的字段保留默认值
				if cfg.Zone.MinRadius != 100 {
					t.Errorf("expected minRadius = 100, got %f", cfg.Zone.MinRadius)
				}
				if got := cfg.WeaponDamage(types.WeaponRifle); got != 40 {
					t.Errorf("expected rifle damage = 40, got %f", got)
				}
				if got := cfg.WeaponDamage(types.WeaponShotgun); got != 50 {
					t.Errorf("expected shotgun damage = 50, got %f", got)
				}
			},
		},
		{
			name: "inline combatant stats",
			yamlContent: `
enemy:
  speed: 3
  fireCooldownFrames: 30
`,
			validate: func(t *testing.T, cfg *TuningConfig) {
				if cfg.Enemy.Speed != 3 {
					t.Errorf("expected enemy speed = 3, got %f", cfg.Enemy.Speed)
				}
				if cfg.Enemy.FireCooldownFrames != 30 {
					t.Errorf("expected cooldown = 30, got %d", cfg.Enemy.FireCooldownFrames)
				}
				if cfg.Enemy.Width != 30 {
					t.Errorf("expected enemy width = 30, got %f", cfg.Enemy.Width)
				}
			},
		},
		{
			name: "unknown weapon rejected",
			yamlContent: `
weapons:
  damage:
    railgun: 99
`,
			wantErr:     true,
			errContains: "unknown weapon type",
		},
		{
			name: "zero shrink interval rejected",
			yamlContent: `
zone:
  shrinkIntervalFrames: 0
`,
			wantErr:     true,
			errContains: "shrinkIntervalFrames",
		},
		{
			name: "min radius above max rejected",
			yamlContent: `
zone:
  minRadius: 900
`,
			wantErr:     true,
			errContains: "minRadius",
		},
		{
			name:        "invalid yaml",
			yamlContent: "arena: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}

			cfg, err := LoadTuningConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadTuningConfigMissingFile(t *testing.T) {
	_, err := LoadTuningConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

// TestShippedTuningMatchesDefaults 确保 data/tuning.yaml 与 DefaultTuningConfig 一致
func TestShippedTuningMatchesDefaults(t *testing.T) {
	cfg, err := LoadTuningConfig("../../data/tuning.yaml")
	if err != nil {
		t.Fatalf("failed to load shipped tuning: %v", err)
	}
	def := DefaultTuningConfig()

	if cfg.Arena != def.Arena {
		t.Errorf("arena mismatch: %+v vs %+v", cfg.Arena, def.Arena)
	}
	if cfg.Player != def.Player {
		t.Errorf("player mismatch: %+v vs %+v", cfg.Player, def.Player)
	}
	if cfg.Enemy != def.Enemy {
		t.Errorf("enemy mismatch: %+v vs %+v", cfg.Enemy, def.Enemy)
	}
	if cfg.Zone != def.Zone {
		t.Errorf("zone mismatch: %+v vs %+v", cfg.Zone, def.Zone)
	}
	if cfg.Spawn != def.Spawn {
		t.Errorf("spawn mismatch: %+v vs %+v", cfg.Spawn, def.Spawn)
	}
	for _, wt := range types.PickupWeaponTypes {
		if cfg.WeaponDamage(wt) != def.WeaponDamage(wt) {
			t.Errorf("%s damage mismatch: %f vs %f", wt, cfg.WeaponDamage(wt), def.WeaponDamage(wt))
		}
	}
}

func TestMaxZoneRadius(t *testing.T) {
	cfg := DefaultTuningConfig()
	// sqrt(800^2 + 600^2) / 2 = 500
	if got := cfg.MaxZoneRadius(); got != 500 {
		t.Errorf("MaxZoneRadius() = %f, want 500", got)
	}

	cfg.Arena.Width = 801
	// sqrt(801^2 + 600^2) / 2 ≈ 500.4 -> 500
	if got := cfg.MaxZoneRadius(); got != 500 {
		t.Errorf("MaxZoneRadius() = %f, want 500 (floored)", got)
	}
}
