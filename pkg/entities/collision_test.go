package entities

import (
	"testing"

	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/ecs"
)

// recordingContext 记录碰撞效果调用
type recordingContext struct {
	score int
	lives int
	dead  bool
	calls []string
}

func (c *recordingContext) AddScore(points int) {
	c.score += points
	c.calls = append(c.calls, "score")
}

func (c *recordingContext) AddLives(n int) {
	c.lives += n
	c.calls = append(c.calls, "lives")
}

func (c *recordingContext) KillFlyer() {
	c.dead = true
	c.calls = append(c.calls, "dead")
}

func TestObstaclePairHeights(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()

	for _, h := range []float64{0, 120, 349} {
		top, bottom := NewObstaclePair(em, 510, h, cfg.PairHeightSum())

		topObs, _ := ecs.GetComponent[*components.ObstacleComponent](em, top)
		bottomObs, _ := ecs.GetComponent[*components.ObstacleComponent](em, bottom)

		if topObs.Side != components.SideTop || bottomObs.Side != components.SideBottom {
			t.Errorf("sides = (%v, %v), want (top, bottom)", topObs.Side, bottomObs.Side)
		}
		if sum := topObs.Height + bottomObs.Height; sum != cfg.Corridor.Height-cfg.Obstacles.GapSize {
			t.Errorf("h=%v: height sum = %v, want %v", h, sum, cfg.Corridor.Height-cfg.Obstacles.GapSize)
		}

		topPos, _ := ecs.GetComponent[*components.PositionComponent](em, top)
		bottomPos, _ := ecs.GetComponent[*components.PositionComponent](em, bottom)
		if topPos.X != bottomPos.X {
			t.Errorf("pair x mismatch: %v vs %v", topPos.X, bottomPos.X)
		}
	}
}

func TestHitTest(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()

	// 上方高 200，下方高 250（下方障碍物顶端 y = 350）
	top, bottom := NewObstaclePair(em, 500, 200, cfg.PairHeightSum())
	coin := NewCoinEntity(em, 500, 300)
	egg := NewEggEntity(em, 800, 300, 4)
	marker := NewMilestoneEntity(em, 1000)

	tests := []struct {
		name   string
		id     ecs.EntityID
		px, py float64
		want   bool
	}{
		{"上方障碍物内部", top, 500, 100, true},
		{"上方障碍物下边缘", top, 500, 200, true},
		{"上方障碍物下方的通道", top, 500, 201, false},
		{"上方障碍物左边缘", top, 450, 50, true},
		{"上方障碍物左侧之外", top, 449.9, 50, false},
		{"下方障碍物上边缘", bottom, 550, 350, true},
		{"下方障碍物上方的通道", bottom, 500, 349, false},
		{"金币圆心", coin, 500, 300, true},
		{"金币半径内", coin, 529, 300, true},
		{"金币半径边界不算命中", coin, 530, 300, false},
		{"彩蛋半径内", egg, 800, 339, true},
		{"彩蛋半径外", egg, 800, 341, false},
		{"里程碑永不碰撞", marker, 1000, 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitTest(em, tt.id, tt.px, tt.py, cfg); got != tt.want {
				t.Errorf("HitTest(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestCoinCollisionIsIdempotent(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	coin := NewCoinEntity(em, 500, 300)
	ctx := &recordingContext{}

	OnCollision(em, coin, ctx, cfg)
	OnCollision(em, coin, ctx, cfg)

	if ctx.score != 5 {
		t.Errorf("score = %d, want 5", ctx.score)
	}
	if !IsCollected(em, coin) {
		t.Error("coin should be marked collected")
	}
}

func TestEggCollisionIsIdempotent(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	egg := NewEggEntity(em, 500, 300, 0)
	ctx := &recordingContext{}

	OnCollision(em, egg, ctx, cfg)
	OnCollision(em, egg, ctx, cfg)

	if ctx.lives != 1 || ctx.score != 50 {
		t.Errorf("(lives, score) = (%d, %d), want (1, 50)", ctx.lives, ctx.score)
	}
	// 生命先于分数
	if len(ctx.calls) != 2 || ctx.calls[0] != "lives" || ctx.calls[1] != "score" {
		t.Errorf("call order = %v, want [lives score]", ctx.calls)
	}
}

func TestObstacleAndMarkerEffects(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	top, _ := NewObstaclePair(em, 500, 200, cfg.PairHeightSum())
	marker := NewMilestoneEntity(em, 900)

	ctx := &recordingContext{}
	OnCollision(em, marker, ctx, cfg)
	if len(ctx.calls) != 0 {
		t.Errorf("marker should have no effect, got %v", ctx.calls)
	}

	OnCollision(em, top, ctx, cfg)
	if !ctx.dead {
		t.Error("obstacle collision should kill the flyer")
	}
	if IsCollected(em, top) {
		t.Error("obstacles are never collected")
	}
}
