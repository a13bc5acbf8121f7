package render

import (
	"git.lost.host/meutraa/hitline/internal/game"
	"git.lost.host/meutraa/hitline/internal/session"
)

type Renderer interface {
	Init() error
	Deinit() error
	Flash(lane int, j game.Judgement)
	Render(snap session.Snapshot)
	Message(msg string)
}
