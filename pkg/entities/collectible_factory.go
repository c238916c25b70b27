package entities

import (
	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/ecs"
)

// NewCoinEntity 创建一个金币实体
func NewCoinEntity(manager *ecs.EntityManager, x, y float64) ecs.EntityID {
	return newCollectible(manager, components.ItemCoin, x, y, 0)
}

// NewEggEntity 创建一个彩蛋实体
//
// variant 决定彩蛋外观（精灵图中的列号）
func NewEggEntity(manager *ecs.EntityManager, x, y float64, variant int) ecs.EntityID {
	return newCollectible(manager, components.ItemEgg, x, y, variant)
}

func newCollectible(manager *ecs.EntityManager, kind components.ItemKind, x, y float64, variant int) ecs.EntityID {
	id := manager.CreateEntity()
	ecs.AddComponent(manager, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(manager, id, &components.ItemComponent{Kind: kind})
	ecs.AddComponent(manager, id, &components.CollectibleComponent{
		Collected: false,
		Variant:   variant,
	})
	return id
}

// NewMilestoneEntity 创建关卡结束的里程碑石像
//
// 石像不参与碰撞，滚出屏幕左侧后触发换关。
func NewMilestoneEntity(manager *ecs.EntityManager, x float64) ecs.EntityID {
	id := manager.CreateEntity()
	ecs.AddComponent(manager, id, &components.PositionComponent{X: x})
	ecs.AddComponent(manager, id, &components.ItemComponent{Kind: components.ItemMilestone})
	ecs.AddComponent(manager, id, &components.MilestoneComponent{})
	return id
}
