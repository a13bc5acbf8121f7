package game

import (
	"time"
)

type Event struct {
	Time time.Duration `yaml:"time"`
	Lane int           `yaml:"lane"`
}

// Track is an immutable chart, events are ordered by time.
type Track struct {
	Name    string  `yaml:"name"`
	BPM     float64 `yaml:"bpm"`
	Pattern []Event `yaml:"pattern"`
}

// Last returns the time of the latest event, or zero for an empty track.
func (t *Track) Last() time.Duration {
	last := time.Duration(0)
	for _, e := range t.Pattern {
		if e.Time > last {
			last = e.Time
		}
	}
	return last
}

// LoadNotes creates a fresh unresolved note for every event in the track.
// Each note spawns lead before it should be hit.
func LoadNotes(t *Track, lead time.Duration) []*Note {
	notes := make([]*Note, 0, len(t.Pattern))
	for _, e := range t.Pattern {
		notes = append(notes, &Note{
			Lane:      e.Lane,
			Time:      e.Time,
			SpawnTime: e.Time - lead,
		})
	}
	return notes
}
