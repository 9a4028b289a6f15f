package systems

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/rs/zerolog"

	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/ecs"
	"github.com/decker502/royale/pkg/logging"
	"github.com/decker502/royale/pkg/types"
)

// 武器点在 R 树中的包围盒半边长
const weaponPointTolerance = 0.005

// weaponSpatial 武器在 R 树中的索引项
type weaponSpatial struct {
	id   ecs.EntityID
	rect rtreego.Rect
}

func (w *weaponSpatial) Bounds() rtreego.Rect {
	return w.rect
}

// PickupSystem 处理武器拾取
//
// 地图上的武器位置使用 R 树做粗筛，再用两轴坐标差做精确判定。
// 每帧开始时调用 RebuildIndex，拾取后立即从索引中删除，
// 因此同一帧内后处理的战斗单位看不到已被拾取的武器。
type PickupSystem struct {
	entityManager *ecs.EntityManager
	threshold     float64

	tree     *rtreego.Rtree
	spatials map[ecs.EntityID]*weaponSpatial

	logger zerolog.Logger
}

// NewPickupSystem 创建拾取系统
func NewPickupSystem(em *ecs.EntityManager, cfg *config.TuningConfig) *PickupSystem {
	return &PickupSystem{
		entityManager: em,
		threshold:     cfg.Weapons.PickupThreshold,
		tree:          rtreego.NewTree(2, 25, 50),
		spatials:      make(map[ecs.EntityID]*weaponSpatial),
		logger:        logging.For("PickupSystem"),
	}
}

// RebuildIndex 根据当前存活的武器重建空间索引
func (s *PickupSystem) RebuildIndex() {
	weaponIDs := ecs.GetEntitiesWith2[*components.WeaponPickupComponent, *components.PositionComponent](s.entityManager)

	s.spatials = make(map[ecs.EntityID]*weaponSpatial, len(weaponIDs))
	objs := make([]rtreego.Spatial, 0, len(weaponIDs))

	for _, id := range weaponIDs {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sp := &weaponSpatial{
			id:   id,
			rect: rtreego.Point{pos.X, pos.Y}.ToRect(weaponPointTolerance),
		}
		s.spatials[id] = sp
		objs = append(objs, sp)
	}

	s.tree = rtreego.NewTree(2, 25, 50, objs...)
}

// IndexedCount 返回索引中的武器数量
func (s *PickupSystem) IndexedCount() int {
	return s.tree.Size()
}

// TryPickup 检查战斗单位附近的武器并拾取
//
// 所有满足 |dx| < threshold 且 |dy| < threshold 的武器按实体创建顺序依次被拾取，
// 战斗单位最终持有最后一把被拾取的武器。
//
// 返回：
//   - types.WeaponType: 拾取后持有的武器类型
//   - bool: 本次是否拾取了武器
func (s *PickupSystem) TryPickup(entityID ecs.EntityID) (types.WeaponType, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return types.WeaponNone, false
	}
	armament, ok := ecs.GetComponent[*components.ArmamentComponent](s.entityManager, entityID)
	if !ok {
		return types.WeaponNone, false
	}

	candidates := s.searchNear(pos.X, pos.Y)
	picked := false

	for _, weaponID := range candidates {
		if !s.entityManager.IsAlive(weaponID) {
			continue
		}
		weaponPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, weaponID)
		if !ok {
			continue
		}
		if math.Abs(pos.X-weaponPos.X) >= s.threshold || math.Abs(pos.Y-weaponPos.Y) >= s.threshold {
			continue
		}
		weapon, ok := ecs.GetComponent[*components.WeaponPickupComponent](s.entityManager, weaponID)
		if !ok {
			continue
		}

		armament.Armed = true
		armament.Weapon = weapon.Type
		armament.Damage = weapon.Damage
		picked = true

		s.remove(weaponID)

		s.logger.Debug().
			Uint64("entity", uint64(entityID)).
			Uint64("weapon", uint64(weaponID)).
			Stringer("type", weapon.Type).
			Msg("武器被拾取")
	}

	return armament.Weapon, picked
}

// searchNear 返回可能落在拾取范围内的武器ID，按创建顺序排列
func (s *PickupSystem) searchNear(x, y float64) []ecs.EntityID {
	region, err := rtreego.NewRect(
		rtreego.Point{x - s.threshold, y - s.threshold},
		[]float64{2 * s.threshold, 2 * s.threshold},
	)
	if err != nil {
		return nil
	}

	results := s.tree.SearchIntersect(region)
	ids := make([]ecs.EntityID, 0, len(results))
	for _, obj := range results {
		if sp, ok := obj.(*weaponSpatial); ok {
			ids = append(ids, sp.id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// remove 从世界和索引中移除武器
func (s *PickupSystem) remove(weaponID ecs.EntityID) {
	if sp, ok := s.spatials[weaponID]; ok {
		s.tree.Delete(sp)
		delete(s.spatials, weaponID)
	}
	s.entityManager.DestroyEntity(weaponID)
}
