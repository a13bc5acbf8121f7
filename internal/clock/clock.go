package clock

import (
	"time"
)

// TimeSource reports the song time, the position in the chart that is
// being played. It never goes backwards.
type TimeSource interface {
	SongTime() time.Duration
}

// Media is a playing audio source that knows its own position.
type Media interface {
	Position() time.Duration
}
