package systems

import (
	"testing"

	"github.com/decker502/dragonegg/pkg/components"
)

func TestCameraFollow(t *testing.T) {
	f := newTestFixture()
	cs := NewCameraSystem(f.gs, f.cfg)

	flyer := &components.FlyerComponent{X: 250}
	if got := cs.Follow(flyer); got != 160 {
		t.Errorf("offset = %v, want 160", got)
	}
	if f.gs.ScrollOffset != 160 {
		t.Errorf("GameState.ScrollOffset = %v, want 160", f.gs.ScrollOffset)
	}
	if got := cs.ToScreenX(600); got != 440 {
		t.Errorf("ToScreenX(600) = %v, want 440", got)
	}
}

func TestCameraPassRewardOnePerTick(t *testing.T) {
	f := newTestFixture()
	cs := NewCameraSystem(f.gs, f.cfg)
	rec := &effectRecorder{}

	f.gs.PushPassReward(560)
	f.gs.PushPassReward(960)

	// 飞龙同时越过两个阈值，每帧只奖励一个
	flyer := &components.FlyerComponent{X: 1000}
	cs.Update(flyer, rec)
	if rec.score != 10 {
		t.Fatalf("score after first tick = %d, want 10", rec.score)
	}
	cs.Update(flyer, rec)
	if rec.score != 20 {
		t.Fatalf("score after second tick = %d, want 20", rec.score)
	}
	cs.Update(flyer, rec)
	if rec.score != 20 {
		t.Errorf("score after queue drained = %d, want 20", rec.score)
	}
}

func TestCameraPassRewardThreshold(t *testing.T) {
	tests := []struct {
		name    string
		flyerX  float64
		wantPop bool
	}{
		{"未到阈值", 559.9, false},
		{"恰好到达", 560, true},
		{"已越过", 700, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture()
			cs := NewCameraSystem(f.gs, f.cfg)
			rec := &effectRecorder{}
			f.gs.PushPassReward(560)

			cs.Update(&components.FlyerComponent{X: tt.flyerX}, rec)
			if got := rec.score == 10; got != tt.wantPop {
				t.Errorf("rewarded = %v, want %v", got, tt.wantPop)
			}
		})
	}
}

func TestCameraEnablesPhysicsAfterBootstrap(t *testing.T) {
	f := newTestFixture()
	cs := NewCameraSystem(f.gs, f.cfg)
	rec := &effectRecorder{}

	flyer := &components.FlyerComponent{X: 190}
	cs.Update(flyer, rec)
	if flyer.HasPhysics {
		t.Fatal("physics enabled at offset 100, want strictly greater")
	}

	flyer.X = 190.1
	cs.Update(flyer, rec)
	if !flyer.HasPhysics {
		t.Error("physics not enabled after offset exceeded 100")
	}
}
