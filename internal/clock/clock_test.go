package clock

import (
	"testing"
	"time"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) Now() time.Time { return f.t }

func (f *fakeTime) Advance(d time.Duration) { f.t = f.t.Add(d) }

type fakeMedia struct {
	position time.Duration
}

func (m *fakeMedia) Position() time.Duration { return m.position }

func TestWallClock(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewWallClock(ft.Now)
	if c.SongTime() != 0 {
		t.Errorf("new clock at %v", c.SongTime())
	}
	ft.Advance(1500 * time.Millisecond)
	if c.SongTime() != 1500*time.Millisecond {
		t.Errorf("song time %v, expected 1.5s", c.SongTime())
	}
	ft.Advance(-time.Hour)
	if c.SongTime() != 0 {
		t.Errorf("song time before start %v, expected 0", c.SongTime())
	}
}

func TestWallClockDefault(t *testing.T) {
	c := NewWallClock(nil)
	time.Sleep(2 * time.Millisecond)
	if c.SongTime() <= 0 {
		t.Error("real clock did not advance")
	}
}

func TestMediaClockFollowsPosition(t *testing.T) {
	m := &fakeMedia{}
	c := NewMediaClock(m)

	positions := []time.Duration{0, 16 * time.Millisecond, 33 * time.Millisecond, 33 * time.Millisecond, time.Second}
	for _, p := range positions {
		m.position = p
		if c.SongTime() != p {
			t.Errorf("song time %v, media at %v", c.SongTime(), p)
		}
	}
}

func TestMediaClockMonotonic(t *testing.T) {
	m := &fakeMedia{position: 2 * time.Second}
	c := NewMediaClock(m)
	c.SongTime()

	m.position = 1900 * time.Millisecond
	if c.SongTime() != 2*time.Second {
		t.Errorf("song time went back to %v", c.SongTime())
	}
}

func TestTimeSources(t *testing.T) {
	var _ TimeSource = &WallClock{}
	var _ TimeSource = &MediaClock{}
}
