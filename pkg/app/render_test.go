package app

import (
	"testing"

	"github.com/decker502/dragonegg/pkg/events"
)

func TestBannerMessages(t *testing.T) {
	tests := []struct {
		name string
		evs  []events.Event
		want string
	}{
		{"开局不提示", []events.Event{events.ScoreEvent(0), events.LivesEvent(3), events.LevelEvent(1)}, ""},
		{"吃到彩蛋不提示", []events.Event{events.LivesEvent(4)}, ""},
		{"重生", []events.Event{events.DeadEvent(true), events.LivesEvent(2)}, "Respawn from egg!"},
		{"彻底死亡", []events.Event{events.DeadEvent(true), events.LivesEvent(0)}, "Completely died!"},
		{"换关", []events.Event{events.LevelEvent(2)}, "Level 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := 500.0
			var b banner
			bus := events.NewBus()
			b.attach(bus, func() float64 { return now })

			for _, ev := range tt.evs {
				bus.Publish(ev)
			}

			if b.text != tt.want {
				t.Errorf("text = %q, want %q", b.text, tt.want)
			}
			if tt.want != "" && b.until != now+bannerDurationMs {
				t.Errorf("until = %v, want %v", b.until, now+bannerDurationMs)
			}
		})
	}
}

func TestAbs32(t *testing.T) {
	if abs32(-0.5) != 0.5 || abs32(0.25) != 0.25 {
		t.Error("abs32 mismatch")
	}
}
