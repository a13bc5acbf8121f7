package chart

import (
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
)

// DefaultCount is the number of events FromTempo emits when asked for none.
const DefaultCount = 120

type Generator interface {
	// Procedural places length events at random intervals, roughly density
	// events per second, each in a random lane picked from lanes.
	Procedural(name string, bpm float64, length int, lanes []int, density float64) *game.Track

	// FromTempo places count events on every half beat starting at offset.
	FromTempo(bpm float64, offset time.Duration, count int) *game.Track
}
