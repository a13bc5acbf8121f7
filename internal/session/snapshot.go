package session

import (
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
)

type NoteView struct {
	Lane      int
	Time      time.Duration
	Progress  float64 // 0 at spawn, 1 on the hit bar
	Resolved  bool
	Judgement game.Judgement
}

// Snapshot is a copy of everything presentation needs for one frame.
type Snapshot struct {
	Track      string
	Difficulty game.Difficulty
	Time       time.Duration
	Playing    bool

	Score      int
	Combo      int
	MaxCombo   int
	Multiplier int
	Counts     map[game.Judgement]int
	Mean       time.Duration
	Stdev      time.Duration

	Progress float64 // Song time over the last note time, clamped to [0, 1]

	Last    game.Judgement // Most recent judgement, Unjudged before the first
	LastAge time.Duration  // Song time since the last judgement

	Notes []NoteView // Notes that have spawned and are not long resolved
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Track:      s.track.Name,
		Difficulty: s.difficulty,
		Time:       s.now,
		Playing:    s.playing,
		Score:      s.state.Score,
		Combo:      s.state.Combo,
		MaxCombo:   s.state.MaxCombo,
		Multiplier: s.state.Multiplier,
		Counts:     make(map[game.Judgement]int, len(game.Judgements)),
		Mean:       s.state.Mean(),
		Stdev:      s.state.Stdev(),
		Last:       s.last.Judgement,
		LastAge:    s.now - s.lastAt,
	}
	for _, j := range game.Judgements {
		snap.Counts[j] = s.state.Count(j)
	}

	last := s.track.Last()
	if last <= 0 {
		last = time.Second
	}
	snap.Progress = float64(s.now) / float64(last)
	if snap.Progress < 0 {
		snap.Progress = 0
	} else if snap.Progress > 1 {
		snap.Progress = 1
	}

	for _, n := range s.notes {
		if s.now < n.SpawnTime {
			continue
		}
		if n.Resolved && s.now > n.Time+s.lead {
			continue
		}
		snap.Notes = append(snap.Notes, NoteView{
			Lane:      n.Lane,
			Time:      n.Time,
			Progress:  n.Progress(s.now),
			Resolved:  n.Resolved,
			Judgement: n.Judgement,
		})
	}
	return snap
}
