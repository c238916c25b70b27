package systems

import (
	"log"

	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/ecs"
	"github.com/decker502/dragonegg/pkg/events"
	"github.com/decker502/dragonegg/pkg/game"
)

// LevelSystem 管理死亡、重生与换关
//
// 状态迁移：
//   - Running → DeadWithLives → Running：死亡后仍有彩蛋，软重置
//   - Running → DeadTerminal：死亡后彩蛋耗尽，模拟停止
//   - 里程碑移出屏幕：关卡 +1，完全重置
//
// 软重置保留飞龙的垂直速度与关卡；完全重置同时恢复初始垂直速度。
type LevelSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	physics       *PhysicsSystem
	bus           *events.Bus
	cfg           *config.GameConfig
}

// NewLevelSystem 创建关卡系统
func NewLevelSystem(em *ecs.EntityManager, gs *game.GameState, ps *PhysicsSystem, bus *events.Bus, cfg *config.GameConfig) *LevelSystem {
	return &LevelSystem{
		entityManager: em,
		gameState:     gs,
		physics:       ps,
		bus:           bus,
		cfg:           cfg,
	}
}

// HandleDeath 处理一次死亡
//
// 调用前飞龙已被标记为死亡（dead 事件已发布）。
// 扣除一条生命并发布 lives 事件；仍有生命则软重置，否则进入终止状态。
//
// 返回:
//   - bool: true 表示已进入终止状态
func (ls *LevelSystem) HandleDeath(flyer *components.FlyerComponent) bool {
	if ls.gameState.IsTerminal() {
		return true
	}

	lives := ls.gameState.LoseLife()
	ls.bus.Publish(events.LivesEvent(lives))

	if lives <= 0 {
		ls.gameState.Phase = game.PhaseDeadTerminal
		log.Printf("[LevelSystem] Out of lives at level %d, score %d", ls.gameState.Level, ls.gameState.Score)
		return true
	}

	ls.gameState.Phase = game.PhaseDeadWithLives
	log.Printf("[LevelSystem] Respawning, %d lives left", lives)
	ls.reset(flyer, false)
	ls.gameState.Phase = game.PhaseRunning
	return false
}

// AdvanceLevel 进入下一关
func (ls *LevelSystem) AdvanceLevel(flyer *components.FlyerComponent) {
	ls.gameState.Level++
	ls.reset(flyer, true)

	log.Printf("[LevelSystem] Level %d (quota %d)", ls.gameState.Level, ls.cfg.ObstacleQuota(ls.gameState.Level))
	ls.bus.Publish(events.LevelEvent(ls.gameState.Level))
}

func (ls *LevelSystem) reset(flyer *components.FlyerComponent, full bool) {
	ls.entityManager.Clear()
	ls.gameState.ResetProgress(ls.cfg.Obstacles.ResetSpawnX)
	ls.physics.PlaceAtStart(flyer, full)
	ls.gameState.ScrollOffset = flyer.X - ls.cfg.Flyer.LeadMargin
}
