package loop

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunStopsWhenTickDeclines(t *testing.T) {
	l := Loop{Period: time.Millisecond}
	ticks := 0
	err := l.Run(context.Background(), func(dt time.Duration) bool {
		if dt <= 0 {
			t.Errorf("tick %v had dt %v", ticks, dt)
		}
		ticks++
		return ticks < 3
	})
	if nil != err {
		t.Fatal(err)
	}
	if ticks != 3 {
		t.Errorf("expected 3 ticks, got %v", ticks)
	}
}

func TestRunCancelled(t *testing.T) {
	l := Loop{Period: time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())
	ticks := 0
	err := l.Run(ctx, func(dt time.Duration) bool {
		ticks++
		if ticks == 2 {
			cancel()
		}
		return true
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if ticks < 2 {
		t.Errorf("cancelled after %v ticks", ticks)
	}
}

func TestOnFrame(t *testing.T) {
	frames := 0
	l := Loop{Period: time.Millisecond, OnFrame: func(took time.Duration) {
		if took < 0 {
			t.Errorf("negative frame time %v", took)
		}
		frames++
	}}
	l.Run(context.Background(), func(time.Duration) bool { return frames < 4 })
	if frames != 5 {
		t.Errorf("expected a frame report per tick, got %v", frames)
	}
}
