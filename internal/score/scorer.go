package score

import (
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
)

type Scorer interface {
	// Judge a press in lane at song time now against the closest unresolved note
	Judge(notes []*game.Note, lane int, now time.Duration) Result

	// Sweep resolves every note that can no longer be hit, returning them
	Sweep(notes []*game.Note, now time.Duration) []*game.Note

	Distance(n *game.Note, now time.Duration) time.Duration
}

type Result struct {
	Judgement game.Judgement
	Lane      int
	Note      *game.Note    // nil when the press hit nothing
	Offset    time.Duration // note time minus press time, positive when early
}
