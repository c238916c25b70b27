package systems

import (
	"reflect"
	"testing"

	"github.com/decker502/dragonegg/pkg/entities"
)

func TestLifetimePrunesFront(t *testing.T) {
	tests := []struct {
		name        string
		offset      float64
		wantRemoved int
		wantXs      []float64
	}{
		{"全部可见", 500, 0, []float64{510, 510, 710, 910, 910}},
		{"边界上不移除", 910, 0, []float64{510, 510, 710, 910, 910}},
		{"移除第一对闸门", 911, 2, []float64{710, 910, 910}},
		{"移除闸门和金币", 1111, 3, []float64{910, 910}},
		{"全部移除", 5000, 5, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture()
			ls := NewLifetimeSystem(f.em, f.cfg)

			entities.NewObstaclePair(f.em, 510, 100, f.cfg.PairHeightSum())
			entities.NewCoinEntity(f.em, 710, 300)
			entities.NewObstaclePair(f.em, 910, 100, f.cfg.PairHeightSum())

			removed, milestone := ls.Update(tt.offset)
			if removed != tt.wantRemoved {
				t.Errorf("removed = %d, want %d", removed, tt.wantRemoved)
			}
			if milestone {
				t.Error("milestone reported without a milestone entity")
			}
			if xs := entityXs(f.em); !reflect.DeepEqual(xs, tt.wantXs) {
				t.Errorf("remaining xs = %v, want %v", xs, tt.wantXs)
			}
		})
	}
}

func TestLifetimeReportsMilestone(t *testing.T) {
	f := newTestFixture()
	ls := NewLifetimeSystem(f.em, f.cfg)

	entities.NewObstaclePair(f.em, 910, 100, f.cfg.PairHeightSum())
	entities.NewMilestoneEntity(f.em, 1710)

	if _, milestone := ls.Update(2110); milestone {
		t.Fatal("milestone reported while still within margin")
	}
	if f.em.Len() != 1 {
		t.Fatalf("entity count = %d, want 1 (milestone)", f.em.Len())
	}

	removed, milestone := ls.Update(2110.5)
	if !milestone || removed != 1 {
		t.Errorf("removed=%d milestone=%v, want 1 and true", removed, milestone)
	}
	if f.em.Len() != 0 {
		t.Errorf("entity count = %d, want 0", f.em.Len())
	}
}
