package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符
// ID 单调递增，因此按 ID 排序即为创建顺序（花名册顺序）
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	// 待删除集合，查询时跳过这些实体，保证移除在当前帧内立即可见
	pendingDestroy map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
		pendingDestroy:    make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
//
// 标记后的实体不会再出现在任何查询结果中，但组件数据保留到 RemoveMarkedEntities，
// 因此正在遍历快照的系统仍可安全读取。
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, exists := em.components[id]; !exists {
		return
	}
	if _, marked := em.pendingDestroy[id]; marked {
		return
	}
	em.pendingDestroy[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsAlive 检查实体是否存在且未被标记删除
func (em *EntityManager) IsAlive(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	_, marked := em.pendingDestroy[id]
	return !marked
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
		delete(em.pendingDestroy, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// Clear 删除所有实体（新回合开始时使用），ID 计数不重置
func (em *EntityManager) Clear() {
	em.components = make(map[EntityID]map[reflect.Type]interface{})
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
	em.pendingDestroy = make(map[EntityID]struct{})
}

// EntityCount 返回存活实体数量（不含待删除实体）
func (em *EntityManager) EntityCount() int {
	return len(em.components) - len(em.pendingDestroy)
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表，按 ID 升序（即创建顺序）
//
// 返回值是一份快照，调用方在遍历过程中销毁实体不会影响本次遍历。
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		if _, marked := em.pendingDestroy[id]; marked {
			continue
		}
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sortEntityIDs(result)
	return result
}

func sortEntityIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
