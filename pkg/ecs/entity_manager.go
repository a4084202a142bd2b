package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符，0 保留为无效ID
type EntityID uint64

// componentStore 同一类型组件的存储：EntityID -> 组件实例
type componentStore map[EntityID]interface{}

// EntityManager 管理所有实体和组件
//
// 组件按类型分别存储，查询时从最小的存储开始过滤。
// alive 保持创建顺序，所以查询结果总是按ID升序，
// 每帧的处理顺序因此是确定的（同一种子的模拟可以复现）。
//
// 删除采用"标记-压缩"：DestroyEntity 只做标记，
// RemoveMarkedEntities 时才真正移除，系统可以边遍历边销毁。
type EntityManager struct {
	nextID EntityID
	alive  []EntityID
	stores map[reflect.Type]componentStore
	marked map[EntityID]struct{}
	exists map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID: 1,
		stores: make(map[reflect.Type]componentStore),
		marked: make(map[EntityID]struct{}),
		exists: make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := em.nextID
	em.nextID++
	em.alive = append(em.alive, id)
	em.exists[id] = struct{}{}
	return id
}

// DestroyEntity 标记实体待删除（不立即删除）
// 重复标记或标记不存在的实体是安全的
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.Exists(id) {
		return
	}
	em.marked[id] = struct{}{}
}

// IsMarkedForDestroy 检查实体是否已被标记删除
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	_, marked := em.marked[id]
	return marked
}

// Exists 检查实体是否存在（已标记但未清理的实体仍然存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.exists[id]
	return ok
}

// AddComponent 为实体添加组件，同类型的旧组件会被替换
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if !em.Exists(id) {
		return
	}
	t := reflect.TypeOf(component)
	store, ok := em.stores[t]
	if !ok {
		store = make(componentStore)
		em.stores[t] = store
	}
	store[id] = component
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	store, ok := em.stores[componentType]
	if !ok {
		return nil, false
	}
	comp, ok := store[id]
	return comp, ok
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.GetComponent(id, componentType)
	return ok
}

// RemoveMarkedEntities 清理所有标记删除的实体及其组件
// 返回本次清理的实体数量
func (em *EntityManager) RemoveMarkedEntities() int {
	if len(em.marked) == 0 {
		return 0
	}

	removed := len(em.marked)
	for id := range em.marked {
		for _, store := range em.stores {
			delete(store, id)
		}
		delete(em.exists, id)
	}
	em.alive = slices.DeleteFunc(em.alive, em.IsMarkedForDestroy)
	clear(em.marked)
	return removed
}

// Clear 立即移除所有实体（重新开始一局时使用）
// 实体ID不会重置，已销毁实体的ID永远不会被复用
func (em *EntityManager) Clear() {
	em.alive = em.alive[:0]
	clear(em.stores)
	clear(em.marked)
	clear(em.exists)
}

// Count 返回当前实体数量（包括已标记但未清理的实体）
func (em *EntityManager) Count() int {
	return len(em.alive)
}

// GetEntitiesWith 查询拥有全部指定组件类型的实体，按创建顺序返回
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	if len(componentTypes) == 0 {
		return slices.Clone(em.alive)
	}

	stores := make([]componentStore, 0, len(componentTypes))
	for _, t := range componentTypes {
		store, ok := em.stores[t]
		if !ok || len(store) == 0 {
			return nil
		}
		stores = append(stores, store)
	}

	result := make([]EntityID, 0, len(stores[0]))
	for _, id := range em.alive {
		if hasAll(stores, id) {
			result = append(result, id)
		}
	}
	return result
}

func hasAll(stores []componentStore, id EntityID) bool {
	for _, store := range stores {
		if _, ok := store[id]; !ok {
			return false
		}
	}
	return true
}
