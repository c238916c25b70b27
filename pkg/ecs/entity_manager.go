package ecs

import "reflect"

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 实体按创建顺序保存在一个有序序列中。生成器总是按世界X递增的顺序创建实体，
// 因此创建顺序即为X升序，碰撞检测与越界清理都依赖这一顺序。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 按创建顺序排列的存活实体
	order []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1, // ID从1开始,0保留为无效ID
		components: make(map[EntityID]map[reflect.Type]interface{}),
		order:      make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并追加到序列末尾
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	em.order = append(em.order, id)
	return id
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
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

// RemoveFirst 立即移除序列中最前面的实体并返回其ID
//
// 序列为空时返回 (0, false)。
func (em *EntityManager) RemoveFirst() (EntityID, bool) {
	if len(em.order) == 0 {
		return 0, false
	}
	id := em.order[0]
	em.order = em.order[1:]
	delete(em.components, id)
	return id, true
}

// First 返回序列中最前面的实体
func (em *EntityManager) First() (EntityID, bool) {
	if len(em.order) == 0 {
		return 0, false
	}
	return em.order[0], true
}

// Entities 返回按创建顺序排列的实体ID副本
func (em *EntityManager) Entities() []EntityID {
	result := make([]EntityID, len(em.order))
	copy(result, em.order)
	return result
}

// Len 返回存活实体数量
func (em *EntityManager) Len() int {
	return len(em.order)
}

// Clear 立即删除所有实体（ID 计数不回退）
func (em *EntityManager) Clear() {
	em.components = make(map[EntityID]map[reflect.Type]interface{})
	em.order = em.order[:0]
}
