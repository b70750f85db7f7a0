// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"grid-defense/internal/config"
	"grid-defense/internal/defs"
	"grid-defense/internal/ui"
)

// MenuState — выбор карты и сводка прогресса.
type MenuState struct {
	sm         *StateMachine
	ctx        *Context
	mapButtons []*mapButton
}

type mapButton struct {
	*ui.Button
	mapID string
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	m := &MenuState{sm: sm, ctx: ctx}

	const buttonWidth, buttonHeight = 360, 40
	x := (config.ScreenWidth - buttonWidth) / 2
	y := 220
	for _, mapID := range defs.MapOrder {
		def := defs.MapLibrary[mapID]
		label := fmt.Sprintf("%s  (%s)", def.Name, def.Difficulty)
		m.mapButtons = append(m.mapButtons, &mapButton{
			Button: ui.NewButton(image.Rect(x, y, x+buttonWidth, y+buttonHeight), label, ctx.FontFace),
			mapID:  mapID,
		})
		y += buttonHeight + 12
	}
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	// Цифры выбирают карту по порядку, клик — напрямую.
	for i, b := range m.mapButtons {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			m.sm.SetState(NewGameState(m.sm, m.ctx, b.mapID))
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for _, b := range m.mapButtons {
			if b.Contains(x, y) {
				m.sm.SetState(NewGameState(m.sm, m.ctx, b.mapID))
				return
			}
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := "GRID DEFENSE"
	bounds := text.BoundString(m.ctx.FontFace, title)
	text.Draw(screen, title, m.ctx.FontFace, (config.ScreenWidth-bounds.Dx())/2, 120, config.TextLightColor)

	stats := m.ctx.Stats
	unlocked := 0
	for _, def := range defs.AchievementTable {
		if m.ctx.Achievements.IsUnlocked(def.ID) {
			unlocked++
		}
	}
	summary := fmt.Sprintf("Kills: %d   Best wave: %d   Games: %d   Achievements: %d/%d",
		stats.TotalKills, stats.BestWave, stats.GamesPlayed, unlocked, len(defs.AchievementTable))
	bounds = text.BoundString(m.ctx.FontFace, summary)
	text.Draw(screen, summary, m.ctx.FontFace, (config.ScreenWidth-bounds.Dx())/2, 160, config.TextLightColor)

	for _, b := range m.mapButtons {
		b.Draw(screen)
	}
}

func (m *MenuState) Exit() {}
