package clock

import (
	"time"
)

// WallClock measures song time as time elapsed since it was created.
type WallClock struct {
	now   func() time.Time
	start time.Time
}

// NewWallClock starts a clock at song time zero. A nil now uses time.Now,
// whose readings carry a monotonic component.
func NewWallClock(now func() time.Time) *WallClock {
	if now == nil {
		now = time.Now
	}
	return &WallClock{now: now, start: now()}
}

func (c *WallClock) SongTime() time.Duration {
	d := c.now().Sub(c.start)
	if d < 0 {
		return 0
	}
	return d
}
