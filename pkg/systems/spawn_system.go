package systems

import (
	"log"
	"math"

	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/ecs"
	"github.com/decker502/dragonegg/pkg/entities"
	"github.com/decker502/dragonegg/pkg/game"
)

// RandomSource 生成 [0, 1) 均匀随机数
//
// *rand.Rand 满足此接口；测试注入固定序列以断言结构性质。
type RandomSource interface {
	Float64() float64
}

// SpawnSystem 在飞龙前方生成闸门、道具与里程碑
//
// 职责：
//   - 滚动偏移越过 NextSpawnX 时评估一次生成
//   - 本关闸门数未达配额时生成一对闸门（可能附带金币/彩蛋）
//   - 达到配额后只生成一个里程碑，并把 NextSpawnX 推到不可达处
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	cfg           *config.GameConfig
	rng           RandomSource
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.GameConfig, rng RandomSource) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		gameState:     gs,
		cfg:           cfg,
		rng:           rng,
	}
}

// Update 评估生成，返回本帧新建的实体（按创建顺序）
//
// 参数:
//   - offset: 当前滚动偏移
func (s *SpawnSystem) Update(offset float64) []ecs.EntityID {
	if !(s.gameState.NextSpawnX < offset) {
		return nil
	}

	spawnX := s.gameState.NextSpawnX + s.cfg.Corridor.Width + s.cfg.Obstacles.Spacing/2

	if s.gameState.ObstaclesCreated >= s.cfg.ObstacleQuota(s.gameState.Level) {
		return s.spawnMilestone(spawnX)
	}

	coinChance, eggChance := s.chances(offset)
	return s.spawnGate(spawnX, s.roll(coinChance), s.roll(eggChance))
}

// chances 根据滚动进度返回金币与彩蛋的出现概率
func (s *SpawnSystem) chances(offset float64) (coin, egg float64) {
	if offset < s.cfg.Items.EarlyProgress {
		return s.cfg.Items.EarlyCoinChance, s.cfg.Items.EarlyEggChance
	}
	return s.cfg.Items.LateCoinChance, s.cfg.Items.LateEggChance
}

func (s *SpawnSystem) roll(chance float64) bool {
	return s.rng.Float64() < chance
}

// spawnGate 生成一对闸门及附带道具
func (s *SpawnSystem) spawnGate(x float64, withCoin, withEgg bool) []ecs.EntityID {
	em := s.entityManager
	h := math.Floor(s.rng.Float64() * s.cfg.MaxObstacleHeight())

	top, bottom := entities.NewObstaclePair(em, x, h, s.cfg.PairHeightSum())
	created := []ecs.EntityID{top, bottom}

	if withEgg {
		// 彩蛋放在通道底部附近
		variant := int(math.Floor(float64(s.cfg.Items.EggVariants) * s.rng.Float64()))
		eggY := s.cfg.Obstacles.GapSize + h - s.cfg.Items.EggLift
		created = append(created, entities.NewEggEntity(em, x, eggY, variant))
	}
	if withCoin {
		// 金币放在两道闸门中间，Y 在走廊内随机
		margin := s.cfg.Items.CoinMargin
		coinY := math.Floor(s.rng.Float64()*(s.cfg.Corridor.Height-2*margin)) + margin
		created = append(created, entities.NewCoinEntity(em, x+s.cfg.Obstacles.Spacing/2, coinY))
	}

	s.gameState.PushPassReward(x + s.cfg.Obstacles.Width/2)
	s.gameState.NextSpawnX += s.cfg.Obstacles.Spacing
	s.gameState.ObstaclesCreated++

	log.Printf("[SpawnSystem] Gate %d/%d at x=%.0f h=%.0f (coin=%v egg=%v)",
		s.gameState.ObstaclesCreated, s.cfg.ObstacleQuota(s.gameState.Level), x, h, withCoin, withEgg)

	return created
}

// spawnMilestone 生成本关的里程碑并停止后续生成
func (s *SpawnSystem) spawnMilestone(x float64) []ecs.EntityID {
	markerX := x + s.cfg.Obstacles.Spacing
	id := entities.NewMilestoneEntity(s.entityManager, markerX)
	s.gameState.NextSpawnX += s.cfg.Obstacles.SpawnSentinel

	log.Printf("[SpawnSystem] Milestone for level %d at x=%.0f", s.gameState.Level, markerX)

	return []ecs.EntityID{id}
}
