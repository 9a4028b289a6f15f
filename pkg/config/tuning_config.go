package config

import (
	"fmt"
	"math"
	"os"

	"github.com/decker502/royale/pkg/types"
	"gopkg.in/yaml.v3"
)

// TuningConfig 游戏数值配置
//
// 包含竞技场尺寸、战斗单位属性、武器伤害表、安全区参数与出生规则。
// 所有时间相关参数以“帧”为单位（固定 60 TPS）。
//
// 配置文件位置: data/tuning.yaml（默认版本通过 go:embed 嵌入二进制）
type TuningConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Weapons WeaponsConfig `yaml:"weapons"`
	Zone    ZoneConfig    `yaml:"zone"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Effects EffectsConfig `yaml:"effects"`
}

// ArenaConfig 竞技场（逻辑屏幕）尺寸
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CombatantStats 玩家与敌人共用的基础属性
type CombatantStats struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	Health        float64 `yaml:"health"`
	DefaultDamage float64 `yaml:"defaultDamage"` // 未拾取武器时的伤害值
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	CombatantStats `yaml:",inline"`

	// FireRange 玩家开火的最大射程（严格小于）
	FireRange float64 `yaml:"fireRange"`
}

// EnemyConfig 敌人 AI 配置
type EnemyConfig struct {
	CombatantStats `yaml:",inline"`

	// ChaseDistance 超过该距离时向玩家逼近，否则随机游走
	ChaseDistance float64 `yaml:"chaseDistance"`
	// FireRange 持枪敌人自动开火的距离阈值（严格小于）
	FireRange float64 `yaml:"fireRange"`
	// FireCooldownFrames 开火后的冷却帧数
	FireCooldownFrames int `yaml:"fireCooldownFrames"`
}

// WeaponsConfig 武器配置
type WeaponsConfig struct {
	// Damage 武器伤害表，key 为武器类型名（pistol/rifle/shotgun）
	Damage map[string]float64 `yaml:"damage"`
	// PickupThreshold 拾取判定阈值：两轴坐标差都小于该值时拾取
	PickupThreshold float64 `yaml:"pickupThreshold"`
	// Size 武器方块的绘制边长
	Size float64 `yaml:"size"`
}

// ZoneConfig 安全区配置
type ZoneConfig struct {
	ShrinkIntervalFrames int     `yaml:"shrinkIntervalFrames"`
	ShrinkRate           float64 `yaml:"shrinkRate"` // 每次收缩减少的最大半径比例
	MinRadius            float64 `yaml:"minRadius"`
	DamagePerFrame       float64 `yaml:"damagePerFrame"`
}

// SpawnConfig 回合开始时的出生规则
type SpawnConfig struct {
	EnemyCount        int     `yaml:"enemyCount"`
	WeaponCount       int     `yaml:"weaponCount"`
	Margin            int     `yaml:"margin"`            // 随机坐标距边缘的最小距离
	MinPlayerDistance float64 `yaml:"minPlayerDistance"` // 敌人出生点与玩家的最小距离
}

// EffectsConfig 纯表现层参数
type EffectsConfig struct {
	TracerLifetime float64 `yaml:"tracerLifetime"` // 弹道线存在时间（秒）
}

// DefaultTuningConfig 返回默认数值配置
// 与 data/tuning.yaml 保持一致
func DefaultTuningConfig() *TuningConfig {
	return &TuningConfig{
		Arena: ArenaConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			CombatantStats: CombatantStats{Width: 30, Height: 30, Speed: 5, Health: 100, DefaultDamage: 10},
			FireRange:      200,
		},
		Enemy: EnemyConfig{
			CombatantStats:     CombatantStats{Width: 30, Height: 30, Speed: 2, Health: 100, DefaultDamage: 5},
			ChaseDistance:      200,
			FireRange:          150,
			FireCooldownFrames: 60,
		},
		Weapons: WeaponsConfig{
			Damage: map[string]float64{
				"pistol":  20,
				"rifle":   35,
				"shotgun": 50,
			},
			PickupThreshold: 30,
			Size:            15,
		},
		Zone: ZoneConfig{
			ShrinkIntervalFrames: 300,
			ShrinkRate:           0.2,
			MinRadius:            100,
			DamagePerFrame:       0.5,
		},
		Spawn: SpawnConfig{
			EnemyCount:        9,
			WeaponCount:       5,
			Margin:            50,
			MinPlayerDistance: 150,
		},
		Effects: EffectsConfig{TracerLifetime: 0.15},
	}
}

// LoadTuningConfig 加载数值配置
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *TuningConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadTuningConfig(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuningConfig(data)
}

// ParseTuningConfig 从 YAML 字节解析数值配置
// 未出现在 YAML 中的字段保留默认值
func ParseTuningConfig(data []byte) (*TuningConfig, error) {
	cfg := DefaultTuningConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *TuningConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("arena size must be positive, got %dx%d", c.Arena.Width, c.Arena.Height)
	}

	for name, stats := range map[string]CombatantStats{"player": c.Player.CombatantStats, "enemy": c.Enemy.CombatantStats} {
		if stats.Width <= 0 || stats.Height <= 0 {
			return fmt.Errorf("%s size must be positive", name)
		}
		if stats.Width > float64(c.Arena.Width) || stats.Height > float64(c.Arena.Height) {
			return fmt.Errorf("%s does not fit in the arena", name)
		}
		if stats.Speed < 0 {
			return fmt.Errorf("%s speed must be >= 0, got %.1f", name, stats.Speed)
		}
		if stats.Health <= 0 {
			return fmt.Errorf("%s health must be positive, got %.1f", name, stats.Health)
		}
	}

	if c.Enemy.FireCooldownFrames < 0 {
		return fmt.Errorf("enemy fireCooldownFrames must be >= 0, got %d", c.Enemy.FireCooldownFrames)
	}

	for _, wt := range types.PickupWeaponTypes {
		dmg, ok := c.Weapons.Damage[wt.String()]
		if !ok {
			return fmt.Errorf("missing damage for weapon '%s'", wt)
		}
		if dmg < 0 {
			return fmt.Errorf("damage for weapon '%s' must be >= 0, got %.1f", wt, dmg)
		}
	}
	for name := range c.Weapons.Damage {
		if _, err := types.ParseWeaponType(name); err != nil {
			return err
		}
	}
	if c.Weapons.PickupThreshold <= 0 {
		return fmt.Errorf("weapon pickupThreshold must be positive")
	}

	if c.Zone.ShrinkIntervalFrames <= 0 {
		return fmt.Errorf("zone shrinkIntervalFrames must be positive, got %d", c.Zone.ShrinkIntervalFrames)
	}
	if c.Zone.ShrinkRate < 0 || c.Zone.ShrinkRate > 1 {
		return fmt.Errorf("zone shrinkRate must be within [0, 1], got %.2f", c.Zone.ShrinkRate)
	}
	if c.Zone.MinRadius < 0 || c.Zone.MinRadius > c.MaxZoneRadius() {
		return fmt.Errorf("zone minRadius must be within [0, %.0f], got %.1f", c.MaxZoneRadius(), c.Zone.MinRadius)
	}

	if c.Spawn.EnemyCount < 0 || c.Spawn.WeaponCount < 0 {
		return fmt.Errorf("spawn counts must be >= 0")
	}
	if 2*c.Spawn.Margin > c.Arena.Width || 2*c.Spawn.Margin > c.Arena.Height {
		return fmt.Errorf("spawn margin %d leaves no room in a %dx%d arena", c.Spawn.Margin, c.Arena.Width, c.Arena.Height)
	}

	return nil
}

// WeaponDamage 返回指定武器类型的伤害值，未知类型返回 0
func (c *TuningConfig) WeaponDamage(wt types.WeaponType) float64 {
	return c.Weapons.Damage[wt.String()]
}

// MaxZoneRadius 安全区最大半径：竞技场对角线的一半（取整）
func (c *TuningConfig) MaxZoneRadius() float64 {
	w := float64(c.Arena.Width)
	h := float64(c.Arena.Height)
	return math.Floor(math.Sqrt(w*w+h*h) / 2)
}
