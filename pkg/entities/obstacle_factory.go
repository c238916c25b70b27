package entities

import (
	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/ecs"
)

// NewObstaclePair 创建一对闸门障碍物（先上后下）
//
// 参数:
//   - manager: EntityManager 实例
//   - x: 闸门中心线的世界X坐标
//   - topHeight: 上方障碍物高度
//   - pairHeightSum: 两段高度之和（走廊高度减去通道高度）
//
// 返回: 上方与下方障碍物的实体ID
func NewObstaclePair(manager *ecs.EntityManager, x, topHeight, pairHeightSum float64) (top, bottom ecs.EntityID) {
	top = newObstacle(manager, x, topHeight, components.SideTop)
	bottom = newObstacle(manager, x, pairHeightSum-topHeight, components.SideBottom)
	return top, bottom
}

func newObstacle(manager *ecs.EntityManager, x, height float64, side components.ObstacleSide) ecs.EntityID {
	id := manager.CreateEntity()
	ecs.AddComponent(manager, id, &components.PositionComponent{X: x})
	ecs.AddComponent(manager, id, &components.ItemComponent{Kind: components.ItemObstacle})
	ecs.AddComponent(manager, id, &components.ObstacleComponent{
		Height: height,
		Side:   side,
	})
	return id
}
