package systems

import (
	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/ecs"
	"github.com/decker502/dragonegg/pkg/entities"
)

// CollisionSystem 检测飞龙与所有存活实体的碰撞
//
// 按实体序列（X 升序、创建顺序）逐个检测，每个实体每帧最多检测一次。
// 命中时执行实体的碰撞效果；本系统从不删除实体，删除由 LifetimeSystem 按滚动位置决定。
// 飞龙死亡后立即停止本帧的后续检测。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.GameConfig
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, cfg *config.GameConfig) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		cfg:           cfg,
	}
}

// Update 执行一次碰撞检测，返回命中的实体数量
func (cs *CollisionSystem) Update(flyer *components.FlyerComponent, ctx entities.EffectContext) int {
	hits := 0
	for _, id := range cs.entityManager.Entities() {
		if flyer.Dead {
			break
		}
		if entities.HitTest(cs.entityManager, id, flyer.X, flyer.Y, cs.cfg) {
			hits++
			entities.OnCollision(cs.entityManager, id, ctx, cs.cfg)
		}
	}
	return hits
}
