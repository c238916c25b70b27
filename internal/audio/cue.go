// Package audio synthesizes the short cues played on game events.
//
// Cues are generated with beep oscillators. The terminal driver plays them
// through the beep speaker; the desktop driver renders them to 16-bit PCM and
// hands the bytes to Ebitengine's audio player.
package audio

import "time"

// Cue identifies a sound effect.
type Cue int

const (
	CueCoin Cue = iota
	CueEgg
	CuePass
	CueDeath
	CueLevel
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueCoin:
		return "coin"
	case CueEgg:
		return "egg"
	case CuePass:
		return "pass"
	case CueDeath:
		return "death"
	case CueLevel:
		return "level"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cues lists every cue in declaration order.
var Cues = []Cue{CueCoin, CueEgg, CuePass, CueDeath, CueLevel, CueGameOver}

// note is one segment of a cue.
type note struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

// cueNotes holds the note sequence of each cue.
var cueNotes = map[Cue][]note{
	CueCoin: {
		{freq: 988, duration: 60 * time.Millisecond, wave: WaveSquare},
		{freq: 1319, duration: 120 * time.Millisecond, wave: WaveSquare},
	},
	CueEgg: {
		{freq: 523, duration: 80 * time.Millisecond, wave: WaveSine},
		{freq: 659, duration: 80 * time.Millisecond, wave: WaveSine},
		{freq: 784, duration: 160 * time.Millisecond, wave: WaveSine},
	},
	CuePass: {
		{freq: 660, duration: 50 * time.Millisecond, wave: WaveSine},
	},
	CueDeath: {
		{freq: 220, duration: 120 * time.Millisecond, wave: WaveSaw},
		{freq: 110, duration: 240 * time.Millisecond, wave: WaveSaw},
	},
	CueLevel: {
		{freq: 523, duration: 100 * time.Millisecond, wave: WaveSquare},
		{freq: 784, duration: 100 * time.Millisecond, wave: WaveSquare},
		{freq: 1047, duration: 200 * time.Millisecond, wave: WaveSquare},
	},
	CueGameOver: {
		{freq: 392, duration: 200 * time.Millisecond, wave: WaveSine},
		{freq: 330, duration: 200 * time.Millisecond, wave: WaveSine},
		{freq: 262, duration: 400 * time.Millisecond, wave: WaveSine},
	},
}

// Duration returns the total length of a cue.
func (c Cue) Duration() time.Duration {
	var total time.Duration
	for _, n := range cueNotes[c] {
		total += n.duration
	}
	return total
}
