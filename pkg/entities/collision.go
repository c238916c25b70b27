package entities

import (
	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/ecs"
)

// EffectContext 碰撞效果可以修改的最小状态面
//
// 实体只能加分、加生命、杀死飞龙，不能直接访问世界。
type EffectContext interface {
	AddScore(points int)
	AddLives(n int)
	KillFlyer()
}

// HitTest 检测点 (px, py) 是否命中实体
//
//   - 障碍物: px 在中心线 ±宽度/2 内，且上方障碍物 py <= 高度、下方障碍物 py >= 走廊高度 - 高度
//   - 金币/彩蛋: 到圆心的平方距离小于半径平方
//   - 里程碑: 永不碰撞
func HitTest(em *ecs.EntityManager, id ecs.EntityID, px, py float64, cfg *config.GameConfig) bool {
	item, ok := ecs.GetComponent[*components.ItemComponent](em, id)
	if !ok {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return false
	}

	switch item.Kind {
	case components.ItemObstacle:
		obstacle, ok := ecs.GetComponent[*components.ObstacleComponent](em, id)
		if !ok {
			return false
		}
		half := cfg.Obstacles.Width / 2
		if px < pos.X-half || px > pos.X+half {
			return false
		}
		if obstacle.Side == components.SideTop {
			return py <= obstacle.Height
		}
		return py >= cfg.Corridor.Height-obstacle.Height

	case components.ItemCoin:
		return withinRadius(pos, px, py, cfg.Items.CoinRadius)

	case components.ItemEgg:
		return withinRadius(pos, px, py, cfg.Items.EggRadius)

	case components.ItemMilestone:
		return false

	default:
		return false
	}
}

// OnCollision 执行实体的碰撞效果
//
//   - 障碍物: 杀死飞龙
//   - 金币: 首次命中 +CoinScore
//   - 彩蛋: 首次命中 +1 生命、+EggScore
//   - 里程碑: 无效果（换关由越界清理驱动）
func OnCollision(em *ecs.EntityManager, id ecs.EntityID, ctx EffectContext, cfg *config.GameConfig) {
	item, ok := ecs.GetComponent[*components.ItemComponent](em, id)
	if !ok {
		return
	}

	switch item.Kind {
	case components.ItemObstacle:
		ctx.KillFlyer()

	case components.ItemCoin:
		if collect(em, id) {
			ctx.AddScore(cfg.Items.CoinScore)
		}

	case components.ItemEgg:
		if collect(em, id) {
			ctx.AddLives(1)
			ctx.AddScore(cfg.Items.EggScore)
		}

	case components.ItemMilestone:
		// 纯视觉
	}
}

// IsCollected 返回道具是否已被收集（非道具返回 false）
func IsCollected(em *ecs.EntityManager, id ecs.EntityID) bool {
	c, ok := ecs.GetComponent[*components.CollectibleComponent](em, id)
	return ok && c.Collected
}

// collect 把一次性标记从 false 置为 true，已收集时返回 false
func collect(em *ecs.EntityManager, id ecs.EntityID) bool {
	c, ok := ecs.GetComponent[*components.CollectibleComponent](em, id)
	if !ok || c.Collected {
		return false
	}
	c.Collected = true
	return true
}

func withinRadius(pos *components.PositionComponent, px, py, radius float64) bool {
	dx := pos.X - px
	dy := pos.Y - py
	return dx*dx+dy*dy < radius*radius
}
