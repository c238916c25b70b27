package audio

import (
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/events"
)

// Tracker turns world events into cues.
//
// Score events only carry the new total, so the tracker remembers the
// previous values and classifies each change by its size.
type Tracker struct {
	coinScore int
	passScore int
	play      func(Cue)

	score int
	lives int
	level int
	known map[events.EventType]bool
}

// NewTracker creates a tracker that calls play for every cue.
func NewTracker(cfg *config.GameConfig, play func(Cue)) *Tracker {
	return &Tracker{
		coinScore: cfg.Items.CoinScore,
		passScore: cfg.Items.PassScore,
		play:      play,
		known:     make(map[events.EventType]bool),
	}
}

// Attach subscribes the tracker to every event on the bus.
func (t *Tracker) Attach(bus *events.Bus) {
	bus.SubscribeAll(t.Handle)
}

// Handle processes one event.
func (t *Tracker) Handle(ev events.Event) {
	first := !t.known[ev.Type]
	t.known[ev.Type] = true

	switch ev.Type {
	case events.EventScore:
		delta := ev.Value - t.score
		t.score = ev.Value
		if first {
			return
		}
		switch delta {
		case t.coinScore:
			t.play(CueCoin)
		case t.passScore:
			t.play(CuePass)
		}

	case events.EventLives:
		prev := t.lives
		t.lives = ev.Value
		if first {
			return
		}
		if ev.Value > prev {
			t.play(CueEgg)
		} else if ev.Value == 0 {
			t.play(CueGameOver)
		}

	case events.EventLevel:
		prev := t.level
		t.level = ev.Value
		if !first && ev.Value > prev {
			t.play(CueLevel)
		}

	case events.EventDead:
		if ev.Flag {
			t.play(CueDeath)
		}
	}
}
