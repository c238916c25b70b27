// Package world 组装飞龙模拟：物理、滚动、碰撞、生成、清理与关卡流程
//
// World 独占持有全部可变状态（飞龙、实体序列、局内计数器），
// 驱动层每帧调用一次 Update，通过事件总线接收状态变化，
// 通过 Snapshot 获取绘制所需的数据。World 不是并发安全的。
package world

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/ecs"
	"github.com/decker502/dragonegg/pkg/events"
	"github.com/decker502/dragonegg/pkg/game"
	"github.com/decker502/dragonegg/pkg/systems"
)

// TickResult 单帧更新的结果
type TickResult int

const (
	TickSkipped  TickResult = iota // 首帧或间隔过短，只记录了时间戳
	TickContinue                   // 正常推进
	TickHalted                     // 本帧发生死亡（或已处于终止状态），提前结束
)

// String 返回结果名称
func (r TickResult) String() string {
	switch r {
	case TickSkipped:
		return "skipped"
	case TickContinue:
		return "continue"
	case TickHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// World 一局游戏的模拟世界
type World struct {
	cfg           *config.GameConfig
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	bus           *events.Bus
	flyer         *components.FlyerComponent

	physics   *systems.PhysicsSystem
	camera    *systems.CameraSystem
	collision *systems.CollisionSystem
	spawn     *systems.SpawnSystem
	lifetime  *systems.LifetimeSystem
	level     *systems.LevelSystem
}

// NewWorld 创建模拟世界
//
// 参数:
//   - cfg: 已验证的游戏配置
//   - rng: 随机源；为 nil 时使用以当前时间为种子的 math/rand
func NewWorld(cfg *config.GameConfig, rng systems.RandomSource) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg)
	bus := events.NewBus()
	physics := systems.NewPhysicsSystem(cfg)

	w := &World{
		cfg:           cfg,
		entityManager: em,
		gameState:     gs,
		bus:           bus,
		flyer:         physics.NewFlyer(),
		physics:       physics,
		camera:        systems.NewCameraSystem(gs, cfg),
		collision:     systems.NewCollisionSystem(em, cfg),
		spawn:         systems.NewSpawnSystem(em, gs, cfg, rng),
		lifetime:      systems.NewLifetimeSystem(em, cfg),
		level:         systems.NewLevelSystem(em, gs, physics, bus, cfg),
	}
	w.camera.Follow(w.flyer)

	return w
}

// Bus 返回事件总线，订阅应在 Start 之前完成
func (w *World) Bus() *events.Bus {
	return w.bus
}

// Start 发布开局的分数、生命与关卡
func (w *World) Start() {
	w.bus.Publish(events.ScoreEvent(w.gameState.Score))
	w.bus.Publish(events.LivesEvent(w.gameState.Lives))
	w.bus.Publish(events.LevelEvent(w.gameState.Level))
}

// Update 推进一帧
//
// 参数:
//   - timestamp: 单调递增的帧时间戳（毫秒）
//
// 执行流程：
//  1. 计算帧间隔；首帧或间隔 <= DebounceMs 时只记录时间戳
//  2. 推进飞龙
//  3. 坠出走廊则死亡并结束本帧
//  4-6. 更新滚动偏移、发放通过奖励、启用物理
//  7. 碰撞检测；撞上障碍物则死亡并结束本帧
//  8. 评估生成
//  9. 清理越界实体；里程碑被清理时换关
func (w *World) Update(timestamp float64) TickResult {
	if w.gameState.IsTerminal() {
		return TickHalted
	}

	elapsed, ok := w.gameState.RecordTimestamp(timestamp)
	if !ok || elapsed <= w.cfg.Run.DebounceMs {
		return TickSkipped
	}
	if limit := w.cfg.Run.MaxElapsedMs; limit > 0 && elapsed > limit {
		elapsed = limit
	}

	w.physics.Update(w.flyer, elapsed)

	if w.physics.HasFallen(w.flyer) {
		w.KillFlyer()
		return w.die()
	}

	w.camera.Update(w.flyer, w)

	w.collision.Update(w.flyer, w)
	if w.flyer.Dead {
		return w.die()
	}

	w.spawn.Update(w.gameState.ScrollOffset)

	if _, passed := w.lifetime.Update(w.gameState.ScrollOffset); passed {
		w.level.AdvanceLevel(w.flyer)
	}

	return TickContinue
}

func (w *World) die() TickResult {
	if w.level.HandleDeath(w.flyer) {
		log.Printf("[World] Terminal: score=%d level=%d", w.gameState.Score, w.gameState.Level)
	}
	return TickHalted
}

// Flap 拍翅膀，任何时候都会成功
func (w *World) Flap() {
	w.physics.Flap(w.flyer)
}

// AddScore 实现 entities.EffectContext
func (w *World) AddScore(points int) {
	w.bus.Publish(events.ScoreEvent(w.gameState.AddScore(points)))
}

// AddLives 实现 entities.EffectContext
func (w *World) AddLives(n int) {
	w.bus.Publish(events.LivesEvent(w.gameState.AddLives(n)))
}

// KillFlyer 实现 entities.EffectContext
func (w *World) KillFlyer() {
	if w.flyer.Dead {
		return
	}
	w.flyer.Dead = true
	w.bus.Publish(events.DeadEvent(true))
}

// IsTerminal 返回模拟是否已终止
func (w *World) IsTerminal() bool {
	return w.gameState.IsTerminal()
}

// Phase 返回当前状态
func (w *World) Phase() game.Phase {
	return w.gameState.Phase
}

// Flyer 返回飞龙的副本
func (w *World) Flyer() components.FlyerComponent {
	return *w.flyer
}

// Score 返回当前分数
func (w *World) Score() int { return w.gameState.Score }

// Lives 返回剩余生命
func (w *World) Lives() int { return w.gameState.Lives }

// Level 返回当前关卡
func (w *World) Level() int { return w.gameState.Level }

// ScrollOffset 返回当前滚动偏移
func (w *World) ScrollOffset() float64 { return w.gameState.ScrollOffset }

// EntityCount 返回存活实体数量
func (w *World) EntityCount() int {
	return w.entityManager.Len()
}
