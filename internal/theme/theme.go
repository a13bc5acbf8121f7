package theme

import (
	"image/color"

	"git.lost.host/meutraa/hitline/internal/game"
)

type Theme interface {
	LaneColor(lane int) color.RGBA
	JudgementColor(j game.Judgement) color.RGBA
	RenderNote(lane int) string
	RenderHitField(lane int) string
}
