package systems

import (
	"reflect"
	"testing"

	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/entities"
)

func TestCollisionCoinCollectedOnce(t *testing.T) {
	f := newTestFixture()
	cs := NewCollisionSystem(f.em, f.cfg)
	entities.NewCoinEntity(f.em, 500, 300)

	flyer := &components.FlyerComponent{X: 500, Y: 300}
	rec := &effectRecorder{flyer: flyer}

	cs.Update(flyer, rec)
	cs.Update(flyer, rec)

	if rec.score != 5 {
		t.Errorf("score = %d, want 5", rec.score)
	}
	// 收集后实体仍保留在序列中，由滚动清理
	if f.em.Len() != 1 {
		t.Errorf("entity count = %d, want 1", f.em.Len())
	}
}

func TestCollisionStopsAfterDeath(t *testing.T) {
	f := newTestFixture()
	cs := NewCollisionSystem(f.em, f.cfg)

	entities.NewObstaclePair(f.em, 500, 350, f.cfg.PairHeightSum())
	entities.NewCoinEntity(f.em, 500, 300)

	flyer := &components.FlyerComponent{X: 500, Y: 300}
	rec := &effectRecorder{flyer: flyer}

	hits := cs.Update(flyer, rec)

	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
	if !reflect.DeepEqual(rec.calls, []string{"dead"}) {
		t.Errorf("calls = %v, want [dead]", rec.calls)
	}
	if f.em.Len() != 3 {
		t.Errorf("entity count = %d, want 3", f.em.Len())
	}
}

func TestCollisionMultipleHitsInSequenceOrder(t *testing.T) {
	f := newTestFixture()
	cs := NewCollisionSystem(f.em, f.cfg)

	entities.NewEggEntity(f.em, 500, 310, 0)
	entities.NewCoinEntity(f.em, 510, 300)
	entities.NewMilestoneEntity(f.em, 500)

	flyer := &components.FlyerComponent{X: 500, Y: 300}
	rec := &effectRecorder{flyer: flyer}

	hits := cs.Update(flyer, rec)

	if hits != 2 {
		t.Errorf("hits = %d, want 2", hits)
	}
	want := []string{"lives", "score", "score"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	if rec.score != 55 || rec.lives != 1 {
		t.Errorf("score=%d lives=%d, want 55 and 1", rec.score, rec.lives)
	}
}

func TestCollisionMissesGap(t *testing.T) {
	f := newTestFixture()
	cs := NewCollisionSystem(f.em, f.cfg)
	entities.NewObstaclePair(f.em, 510, 175, f.cfg.PairHeightSum())

	flyer := &components.FlyerComponent{X: 510, Y: 300}
	rec := &effectRecorder{flyer: flyer}

	if hits := cs.Update(flyer, rec); hits != 0 || flyer.Dead {
		t.Errorf("hits=%d dead=%v, want flyer to pass through the gap", hits, flyer.Dead)
	}
}
