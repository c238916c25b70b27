package systems

import (
	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/ecs"
	"github.com/decker502/dragonegg/pkg/game"
)

// sequenceRandom 按顺序循环返回固定的随机数
type sequenceRandom struct {
	values []float64
	next   int
}

func newSequenceRandom(values ...float64) *sequenceRandom {
	return &sequenceRandom{values: values}
}

func (r *sequenceRandom) Float64() float64 {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// effectRecorder 记录碰撞与奖励效果
type effectRecorder struct {
	flyer *components.FlyerComponent
	score int
	lives int
	calls []string
}

func (r *effectRecorder) AddScore(points int) {
	r.score += points
	r.calls = append(r.calls, "score")
}

func (r *effectRecorder) AddLives(n int) {
	r.lives += n
	r.calls = append(r.calls, "lives")
}

func (r *effectRecorder) KillFlyer() {
	if r.flyer != nil {
		r.flyer.Dead = true
	}
	r.calls = append(r.calls, "dead")
}

// testFixture 组装系统测试所需的共享状态
type testFixture struct {
	cfg *config.GameConfig
	em  *ecs.EntityManager
	gs  *game.GameState
}

func newTestFixture() *testFixture {
	cfg := config.DefaultGameConfig()
	return &testFixture{
		cfg: cfg,
		em:  ecs.NewEntityManager(),
		gs:  game.NewGameState(cfg),
	}
}

// entityXs 返回实体序列中每个实体的X坐标
func entityXs(em *ecs.EntityManager) []float64 {
	xs := make([]float64, 0, em.Len())
	for _, id := range em.Entities() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		xs = append(xs, pos.X)
	}
	return xs
}

func kindsOf(em *ecs.EntityManager, ids []ecs.EntityID) []components.ItemKind {
	kinds := make([]components.ItemKind, 0, len(ids))
	for _, id := range ids {
		item, _ := ecs.GetComponent[*components.ItemComponent](em, id)
		kinds = append(kinds, item.Kind)
	}
	return kinds
}
