package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"git.lost.host/meutraa/hitline/internal/game"
	"git.lost.host/meutraa/hitline/internal/session"
	"git.lost.host/meutraa/hitline/internal/theme"
)

const (
	// Screen pixels per terminal row, for converting note speed
	pixelsPerRow = 24.0

	laneSpacing = 6
	flashFrames = 12
	feedbackAge = 700 * time.Millisecond
)

type DefaultRenderer struct {
	Out    io.Writer
	Theme  theme.Theme
	BarRow int // Rows between the hit bar and the bottom of the screen

	width, height int
	buffer        strings.Builder
	decorations   []*decoration
}

type decoration struct {
	X, Y    int
	Content string
	Frames  int // remaining frames until removed
}

func (r *DefaultRenderer) Init() error {
	if nil == r.Out {
		r.Out = os.Stdout
	}
	if nil == r.Theme {
		r.Theme = &theme.DefaultTheme{}
	}
	if err := r.Resize(); nil != err {
		return err
	}
	fmt.Fprintf(r.Out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	_, err := fmt.Fprintf(r.Out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	return err
}

// Resize reads the terminal size from stdout.
func (r *DefaultRenderer) Resize() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdout is not a terminal")
	}
	width, height, err := term.GetSize(fd)
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	r.SetSize(width, height)
	return nil
}

func (r *DefaultRenderer) SetSize(width, height int) {
	r.width, r.height = width, height
}

func (r *DefaultRenderer) hitRow() int {
	return r.height - r.BarRow
}

func (r *DefaultRenderer) column(lane int) int {
	return r.width/2 + (2*lane-game.Lanes+1)*laneSpacing/2 - 1
}

// Row of a note, or false when it is off the field
func (r *DefaultRenderer) noteRow(n session.NoteView, now time.Duration, speed float64) (int, bool) {
	rows := (n.Time - now).Seconds() * speed / pixelsPerRow
	row := r.hitRow() - int(math.Round(rows))
	return row, row > 1 && row <= r.height
}

func (r *DefaultRenderer) Flash(lane int, j game.Judgement) {
	if lane < 0 || lane >= game.Lanes {
		return
	}
	r.decorations = append(r.decorations, &decoration{
		X:       r.column(lane),
		Y:       r.hitRow(),
		Content: theme.Paint(r.Theme.JudgementColor(j), "███"),
		Frames:  flashFrames,
	})
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			continue
		}
		r.Fill(d.Y, d.X, d.Content)
		d.Frames--
		nd = append(nd, d)
	}
	r.decorations = nd
}

func (r *DefaultRenderer) Render(snap session.Snapshot) {
	r.buffer.WriteString("\033[2J")

	// Progress along the top
	r.Fill(1, 1, strings.Repeat("▔", int(snap.Progress*float64(r.width))))

	// Render the hit bar
	hit := r.hitRow()
	for i := 0; i < game.Lanes; i++ {
		r.Fill(hit, r.column(i), r.Theme.RenderHitField(i))
	}

	// Render notes
	for _, n := range snap.Notes {
		if n.Resolved {
			continue
		}
		if row, ok := r.noteRow(n, snap.Time, snap.Difficulty.Speed); ok {
			r.Fill(row, r.column(n.Lane), r.Theme.RenderNote(n.Lane))
		}
	}

	r.tickDecorations()
	r.renderHUD(snap)
	r.flush()
}

func (r *DefaultRenderer) renderHUD(snap session.Snapshot) {
	sideCol := r.column(0) - 30
	if sideCol < 2 {
		sideCol = 2
	}
	r.Fill(3, sideCol, fmt.Sprintf("%v [%v]", snap.Track, snap.Difficulty.Name))
	r.Fill(5, sideCol, fmt.Sprintf("     Score:  %8v", snap.Score))
	r.Fill(6, sideCol, fmt.Sprintf("     Combo:  %8v", snap.Combo))
	r.Fill(7, sideCol, fmt.Sprintf("Multiplier:  %7vx", snap.Multiplier))
	r.Fill(8, sideCol, fmt.Sprintf(" Max combo:  %8v", snap.MaxCombo))
	r.Fill(10, sideCol, fmt.Sprintf("      Mean:  %6.1f ms", float64(snap.Mean)/float64(time.Millisecond)))
	r.Fill(11, sideCol, fmt.Sprintf("     Stdev:  %6.1f ms", float64(snap.Stdev)/float64(time.Millisecond)))
	for i, j := range game.Judgements {
		r.Fill(13+i, sideCol, theme.Paint(r.Theme.JudgementColor(j), fmt.Sprintf("%10v:  %8v", j, snap.Counts[j])))
	}

	if snap.Last != game.Unjudged && snap.LastAge < feedbackAge {
		label := snap.Last.String()
		r.Fill(r.hitRow()-2, r.width/2-len(label)/2, theme.Paint(r.Theme.JudgementColor(snap.Last), label))
	}
	if !snap.Playing {
		msg := fmt.Sprintf("Finished, score %v", snap.Score)
		r.Fill(r.height/2, r.width/2-len(msg)/2, msg)
	}
}

// Message replaces the screen with a single centred line.
func (r *DefaultRenderer) Message(msg string) {
	r.buffer.WriteString("\033[2J")
	r.Fill(r.height/2, r.width/2-len(msg)/2, msg)
	r.flush()
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) flush() {
	io.WriteString(r.Out, r.buffer.String())
	r.buffer.Reset()
}
