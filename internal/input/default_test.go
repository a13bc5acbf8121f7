package input

import (
	"errors"
	"testing"

	"github.com/eiannone/keyboard"
)

type lanes string

func (l lanes) KeyLane(r rune) int {
	for i, k := range l {
		if k == r {
			return i
		}
	}
	return -1
}

var translateTests = map[keyboard.KeyEvent]Event{
	{Rune: 'd'}:                  {Lane: 0},
	{Rune: 'k'}:                  {Lane: 3},
	{Rune: 'q'}:                  {Lane: -1},
	{Key: keyboard.KeyEsc}:       {Lane: -1, Quit: true},
	{Key: keyboard.KeyCtrlC}:     {Lane: -1, Quit: true},
	{Key: keyboard.KeyArrowLeft}: {Lane: -1},
}

func TestTranslate(t *testing.T) {
	for in, expected := range translateTests {
		out := Translate(in, lanes("dfjk"))
		if out != expected {
			t.Log("      In", in)
			t.Log("     Out", out)
			t.Log("Expected", expected)
			t.Fail()
		}
	}

	broken := errors.New("tty gone")
	if ev := Translate(keyboard.KeyEvent{Err: broken}, lanes("dfjk")); ev.Err != broken || ev.Lane != -1 {
		t.Errorf("read error lost: %+v", ev)
	}
}

func TestDrain(t *testing.T) {
	keys := make(chan keyboard.KeyEvent, 8)
	if events := Drain(keys, lanes("dfjk")); len(events) != 0 {
		t.Fatalf("empty channel drained %v", events)
	}

	keys <- keyboard.KeyEvent{Rune: 'f'}
	keys <- keyboard.KeyEvent{Rune: 'j'}
	keys <- keyboard.KeyEvent{Key: keyboard.KeyEsc}
	events := Drain(keys, lanes("dfjk"))
	if len(events) != 3 || events[0].Lane != 1 || events[1].Lane != 2 || !events[2].Quit {
		t.Errorf("drained %+v", events)
	}
	if len(keys) != 0 {
		t.Error("keys left behind")
	}

	keys <- keyboard.KeyEvent{Rune: 'd'}
	close(keys)
	if events := Drain(keys, lanes("dfjk")); len(events) != 1 {
		t.Errorf("closed channel drained %v", events)
	}
}
