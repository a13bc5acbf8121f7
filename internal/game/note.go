package game

import (
	"time"
)

// Lanes is the number of parallel tracks a note can travel along
const Lanes = 4

type Note struct {
	Lane      int           // The lane, 0 is leftmost
	Time      time.Duration // The time the note should be hit
	SpawnTime time.Duration // The time the note enters the field

	// This is state
	Resolved  bool
	Judgement Judgement     // Set once resolved
	HitTime   time.Duration // When the note was hit, zero when it expired
}

// Resolve marks the note as judged. It returns false, leaving the note
// untouched, when the note has already been resolved.
func (n *Note) Resolve(j Judgement, at time.Duration) bool {
	if n.Resolved {
		return false
	}
	n.Resolved = true
	n.Judgement = j
	if j != Miss {
		n.HitTime = at
	}
	return true
}

// Progress is 0 when the note spawns and 1 when it reaches the hit bar.
func (n *Note) Progress(now time.Duration) float64 {
	span := n.Time - n.SpawnTime
	if span <= 0 {
		span = time.Second
	}
	return float64(now-n.SpawnTime) / float64(span)
}

// Visible reports whether an unresolved note has entered the field.
func (n *Note) Visible(now time.Duration) bool {
	return !n.Resolved && now >= n.SpawnTime
}
