package clock

import (
	"time"
)

// MediaClock follows the position of playing media so that notes stay in
// sync with what is heard, even when playback stalls.
type MediaClock struct {
	media Media
	last  time.Duration
}

func NewMediaClock(m Media) *MediaClock {
	return &MediaClock{media: m}
}

func (c *MediaClock) SongTime() time.Duration {
	// Seeks and decoder jitter must not move notes backwards
	if p := c.media.Position(); p > c.last {
		c.last = p
	}
	return c.last
}
