package chart

import (
	"math/rand"
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
)

type DefaultGenerator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *DefaultGenerator {
	return &DefaultGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a random index in [0,n) from the generator's seeded source.
func (g *DefaultGenerator) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	return g.rng.Intn(n)
}

func (g *DefaultGenerator) Procedural(name string, bpm float64, length int, lanes []int, density float64) *game.Track {
	track := &game.Track{Name: name, BPM: bpm, Pattern: []game.Event{}}
	// Nothing would ever be emitted
	if density <= 0 || len(lanes) == 0 {
		return track
	}

	seconds := 0.0
	for len(track.Pattern) < length {
		seconds += g.rng.Float64() * (1 / density)
		if g.rng.Float64() < density {
			track.Pattern = append(track.Pattern, game.Event{
				Time: time.Duration(seconds * float64(time.Second)),
				Lane: lanes[g.rng.Intn(len(lanes))],
			})
		}
	}
	return track
}

func (g *DefaultGenerator) FromTempo(bpm float64, offset time.Duration, count int) *game.Track {
	if count <= 0 {
		count = DefaultCount
	}
	// Half a beat between every event
	spacing := time.Duration(float64(time.Minute) / bpm * 0.5)

	track := &game.Track{Name: "User generated", BPM: bpm, Pattern: make([]game.Event, 0, count)}
	for i := 0; i < count; i++ {
		track.Pattern = append(track.Pattern, game.Event{
			Time: offset + time.Duration(i)*spacing,
			Lane: g.rng.Intn(game.Lanes),
		})
	}
	return track
}
