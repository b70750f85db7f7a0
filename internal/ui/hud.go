// internal/ui/hud.go
package ui

import (
	"fmt"

	"grid-defense/internal/component"
	"grid-defense/internal/config"
	"grid-defense/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD рисует строку состояния игрока поверх карты.
type HUD struct {
	fontFace font.Face
}

func NewHUD(fontFace font.Face) *HUD {
	return &HUD{fontFace: fontFace}
}

func (h *HUD) Draw(screen *ebiten.Image, ecs *entity.ECS, speedMultiplier float64) {
	line := fmt.Sprintf("HP: %d   Gold: %d   Score: %d", ecs.Player.Health, ecs.Player.Money, ecs.Player.Score)
	text.Draw(screen, line, h.fontFace, 8, 16, config.TextLightColor)

	wave := ecs.Wave
	var waveLine string
	switch {
	case wave == nil:
		waveLine = "Wave: -  [Space] to start"
	case wave.Phase == component.WaveComplete:
		waveLine = fmt.Sprintf("Wave %d cleared  [Space] for next", wave.Number)
	default:
		alive := len(ecs.Enemies)
		left := len(wave.Schedule) - wave.Spawned
		waveLine = fmt.Sprintf("Wave %d  alive: %d  incoming: %d", wave.Number, alive, left)
	}
	text.Draw(screen, waveLine, h.fontFace, 8, 32, config.TextLightColor)

	if speedMultiplier != 1.0 {
		text.Draw(screen, fmt.Sprintf("x%.0f", speedMultiplier), h.fontFace, 8, 48, config.TextLightColor)
	}
}
