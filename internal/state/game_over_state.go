// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"grid-defense/internal/config"
)

var _ State = (*GameOverState)(nil)

// GameOverState — итоговый экран: счёт, достигнутая волна и рестарт.
type GameOverState struct {
	sm    *StateMachine
	ctx   *Context
	mapID string
	score int
	wave  int
}

func NewGameOverState(sm *StateMachine, ctx *Context, mapID string, score, wave int) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx, mapID: mapID, score: score, wave: wave}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sm.SetState(NewGameState(s.sm, s.ctx, s.mapID))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", s.score),
		fmt.Sprintf("Reached wave %d", s.wave),
		"",
		"[R] restart    [M] menu",
	}
	y := config.ScreenHeight/2 - len(lines)*12
	for _, line := range lines {
		bounds := text.BoundString(s.ctx.FontFace, line)
		text.Draw(screen, line, s.ctx.FontFace, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
		y += 24
	}
}

func (s *GameOverState) Exit() {}
