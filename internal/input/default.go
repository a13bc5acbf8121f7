package input

import (
	"github.com/eiannone/keyboard"
)

type Event struct {
	Lane int // -1 when the key is not bound to a lane
	Quit bool
	Err  error
}

type Keymap interface {
	KeyLane(r rune) int
}

// Open starts reading raw key presses from the terminal.
func Open(size int) (<-chan keyboard.KeyEvent, error) {
	return keyboard.GetKeys(size)
}

func Close() error {
	return keyboard.Close()
}

// Translate maps a key press to a lane press or a request to quit.
func Translate(k keyboard.KeyEvent, km Keymap) Event {
	if nil != k.Err {
		return Event{Lane: -1, Err: k.Err}
	}
	switch k.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Lane: -1, Quit: true}
	}
	if k.Rune == 0 {
		return Event{Lane: -1}
	}
	return Event{Lane: km.KeyLane(k.Rune)}
}

// Drain returns every key press that is already waiting, without blocking.
func Drain(keys <-chan keyboard.KeyEvent, km Keymap) []Event {
	var events []Event
	for {
		select {
		case k, ok := <-keys:
			if !ok {
				return events
			}
			events = append(events, Translate(k, km))
		default:
			return events
		}
	}
}
