package loop

import (
	"context"
	"time"
)

// Loop calls a tick function at a fixed period until told to stop.
type Loop struct {
	Period time.Duration

	// Called with the time each tick took, for frame timing stats
	OnFrame func(took time.Duration)
}

// Run blocks, calling tick once per period with the real time elapsed since
// the previous tick. It returns nil once tick returns false, or the context
// error if ctx is done first.
func (l *Loop) Run(ctx context.Context, tick func(dt time.Duration) bool) error {
	ticker := time.NewTicker(l.Period)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			cont := tick(dt)
			if nil != l.OnFrame {
				l.OnFrame(time.Since(now))
			}
			if !cont {
				return nil
			}
		}
	}
}
