package session

import (
	"errors"
	"fmt"
	"time"

	"git.lost.host/meutraa/hitline/internal/clock"
	"git.lost.host/meutraa/hitline/internal/game"
	"git.lost.host/meutraa/hitline/internal/score"
)

const (
	// DefaultLead is how long a note is on the field before it should be hit
	DefaultLead = 2 * time.Second

	// EndGrace is how long the song keeps going after the last note
	EndGrace = 2 * time.Second
)

var (
	ErrNoAudioSource    = errors.New("no audio source loaded")
	ErrAudioUnavailable = errors.New("audio unavailable, try again after a key press")
)

// Media is an audio source that can drive the song time.
type Media interface {
	clock.Media
	Play() error
}

// Session is a single play through of a track. It is not safe for
// concurrent use, all calls are expected from the game loop.
type Session struct {
	// Called after every judgement that changed the score state
	OnJudgement func(r score.Result)

	difficulty game.Difficulty
	lead       time.Duration
	scorer     score.Scorer

	clock   clock.TimeSource
	track   *game.Track
	notes   []*game.Note
	state   score.State
	now     time.Duration
	playing bool
	last    score.Result
	lastAt  time.Duration
}

func New(d game.Difficulty, lead time.Duration) *Session {
	if lead <= 0 {
		lead = DefaultLead
	}
	return &Session{
		difficulty: d,
		lead:       lead,
		scorer:     score.NewScorer(d),
		track:      &game.Track{},
		state:      score.NewState(),
	}
}

// Load replaces the current notes with a fresh set built from track.
func (s *Session) Load(track *game.Track) {
	if track == nil {
		track = &game.Track{}
	}
	s.track = track
	s.notes = game.LoadNotes(track, s.lead)
}

func (s *Session) reset(track *game.Track, ts clock.TimeSource) {
	s.Load(track)
	s.state = score.NewState()
	s.last = score.Result{}
	s.lastAt = 0
	s.clock = ts
	s.now = ts.SongTime()
	s.playing = true
}

// Start plays track against ts, typically a wall clock. A nil ts starts a
// wall clock.
func (s *Session) Start(track *game.Track, ts clock.TimeSource) {
	if nil == ts {
		ts = clock.NewWallClock(nil)
	}
	s.reset(track, ts)
}

// StartWithMedia starts m and plays track against its position. On error
// the session is left exactly as it was.
func (s *Session) StartWithMedia(track *game.Track, m Media) error {
	if nil == m {
		return ErrNoAudioSource
	}
	if err := m.Play(); nil != err {
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}
	s.reset(track, clock.NewMediaClock(m))
	return nil
}

// Stop ends the session early.
func (s *Session) Stop() {
	s.playing = false
}

func (s *Session) Playing() bool {
	return s.playing
}

func (s *Session) Notes() []*game.Note {
	return s.notes
}

func (s *Session) State() score.State {
	return s.state
}

func (s *Session) apply(r score.Result) {
	s.state.Apply(r)
	s.last = r
	s.lastAt = s.now
	if nil != s.OnJudgement {
		s.OnJudgement(r)
	}
}

// Hit judges a press in lane at the current song time. The press is
// ignored, returning false, when nothing is playing or the lane is unknown.
func (s *Session) Hit(lane int) (score.Result, bool) {
	if !s.playing || lane < 0 || lane >= game.Lanes {
		return score.Result{}, false
	}
	s.now = s.clock.SongTime()
	r := s.scorer.Judge(s.notes, lane, s.now)
	s.apply(r)
	return r, true
}

// Tick advances the session to the current song time, expiring notes that
// were never hit. It returns whether the session is still playing.
func (s *Session) Tick() bool {
	if !s.playing {
		return false
	}
	s.now = s.clock.SongTime()

	for _, note := range s.scorer.Sweep(s.notes, s.now) {
		s.apply(score.Result{Judgement: game.Miss, Lane: note.Lane, Note: note})
	}

	if s.now > s.track.Last()+EndGrace {
		for _, note := range s.notes {
			if note.Visible(s.now) {
				return true
			}
		}
		s.playing = false
	}
	return s.playing
}
