package systems

import (
	"log"

	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/ecs"
)

// LifetimeSystem 清理滚出屏幕左侧的实体
//
// 实体序列按 X 升序排列，只需从队首开始检查：
// 实体X - 滚动偏移 + 间距 < 0 时移除。
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.GameConfig
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager, cfg *config.GameConfig) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
		cfg:           cfg,
	}
}

// Update 移除越界实体
//
// 返回:
//   - removed: 本帧移除的实体数量
//   - milestonePassed: 是否移除了里程碑（调用方据此换关）
func (s *LifetimeSystem) Update(offset float64) (removed int, milestonePassed bool) {
	for {
		id, ok := s.entityManager.First()
		if !ok {
			return removed, milestonePassed
		}

		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if ok && pos.X-offset+s.cfg.Obstacles.Spacing >= 0 {
			return removed, milestonePassed
		}

		if item, ok := ecs.GetComponent[*components.ItemComponent](s.entityManager, id); ok {
			log.Printf("[LifetimeSystem] Removing %s id=%d", item.Kind, id)
			if item.Kind == components.ItemMilestone {
				milestonePassed = true
			}
		}

		s.entityManager.RemoveFirst()
		removed++

		// 里程碑之后的实体由换关时的全量重置清理
		if milestonePassed {
			return removed, milestonePassed
		}
	}
}
