package score

import (
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
)

const (
	// Grace is how long past the hit window a note stays on the field
	// before it is counted as missed
	Grace = 600 * time.Millisecond

	perfectRatio = 0.33
	greatRatio   = 0.66
)

type DefaultScorer struct {
	Window time.Duration
}

func NewScorer(d game.Difficulty) *DefaultScorer {
	return &DefaultScorer{Window: d.HitWindow}
}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// Returns the signed error of a press at now
func (s *DefaultScorer) Distance(n *game.Note, now time.Duration) time.Duration {
	return n.Time - now
}

func (s *DefaultScorer) classify(d time.Duration) game.Judgement {
	switch {
	case d < time.Duration(float64(s.Window)*perfectRatio):
		return game.Perfect
	case d < time.Duration(float64(s.Window)*greatRatio):
		return game.Great
	}
	return game.Good
}

func (s *DefaultScorer) Judge(notes []*game.Note, lane int, now time.Duration) Result {
	var closestNote *game.Note
	var distance time.Duration
	absDistance := time.Duration(1<<63 - 1)

	for _, note := range notes {
		if note.Resolved || note.Lane != lane {
			continue
		}
		dd := s.Distance(note, now)
		// Strict comparison keeps the first of two equally close notes
		if d := abs(dd); d < absDistance {
			distance = dd
			absDistance = d
			closestNote = note
		}
	}

	if nil == closestNote || absDistance > s.Window {
		return Result{Judgement: game.Miss, Lane: lane}
	}

	j := s.classify(absDistance)
	closestNote.Resolve(j, now)
	return Result{Judgement: j, Lane: lane, Note: closestNote, Offset: distance}
}

func (s *DefaultScorer) Sweep(notes []*game.Note, now time.Duration) []*game.Note {
	var expired []*game.Note
	for _, note := range notes {
		if note.Resolved {
			continue
		}
		if now > note.Time+s.Window+Grace {
			note.Resolve(game.Miss, now)
			expired = append(expired, note)
		}
	}
	return expired
}
