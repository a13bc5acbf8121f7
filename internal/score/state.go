package score

import (
	"math"
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
)

// ComboStep is the number of consecutive hits that raise the multiplier by one
const ComboStep = 10

// State is the running score of a play session. The zero value is not ready
// for use, start from NewState.
type State struct {
	Score      int
	Combo      int
	MaxCombo   int
	Multiplier int

	counts [game.Miss + 1]int

	// Running offset statistics over hits
	hits     int
	mean, m2 float64
}

func NewState() State {
	return State{Multiplier: 1}
}

// Apply folds a single judgement into the state.
func (s *State) Apply(r Result) {
	s.counts[r.Judgement]++

	if !r.Judgement.IsHit() {
		s.Combo = 0
		s.Multiplier = 1
		return
	}

	s.Score += r.Judgement.Points() * s.Multiplier
	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
	if s.Combo > 0 && s.Combo%ComboStep == 0 {
		s.Multiplier++
	}

	s.hits++
	x := float64(r.Offset)
	delta := x - s.mean
	s.mean += delta / float64(s.hits)
	s.m2 += delta * (x - s.mean)
}

func (s State) Count(j game.Judgement) int {
	if j < 0 || int(j) >= len(s.counts) {
		return 0
	}
	return s.counts[j]
}

// Mean hit offset, positive when the player is early on average
func (s State) Mean() time.Duration {
	return time.Duration(s.mean)
}

// Stdev is the sample standard deviation of hit offsets
func (s State) Stdev() time.Duration {
	if s.hits < 2 {
		return 0
	}
	return time.Duration(math.Sqrt(s.m2 / float64(s.hits-1)))
}
