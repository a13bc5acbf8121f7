package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/hitline/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) LaneColor(lane int) color.RGBA {
	if lane < 0 || lane >= len(laneColors) {
		return white
	}
	return laneColors[lane]
}

func (t *DefaultTheme) JudgementColor(j game.Judgement) color.RGBA {
	col, ok := judgementColors[j]
	if !ok {
		return white
	}
	return col
}

func (t *DefaultTheme) RenderNote(lane int) string {
	return Paint(t.LaneColor(lane), noteSym)
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return Paint(t.LaneColor(lane), barSym)
}

// Paint wraps s in a 24 bit foreground colour
func Paint(c color.RGBA, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

const (
	noteSym = "▆▆▆"
	barSym  = "───"
)

var (
	white = color.RGBA{255, 255, 255, 255}

	laneColors = [game.Lanes]color.RGBA{
		{255, 107, 107, 255}, // red
		{255, 216, 107, 255}, // yellow
		{127, 191, 255, 255}, // blue
		{123, 228, 149, 255}, // green
	}

	judgementColors = map[game.Judgement]color.RGBA{
		game.Perfect: {255, 216, 107, 255},
		game.Great:   {127, 191, 255, 255},
		game.Good:    {123, 228, 149, 255},
		game.Miss:    {255, 80, 80, 255},
	}
)
