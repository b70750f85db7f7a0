// internal/ui/tower_panel.go
package ui

import (
	"fmt"
	"image"

	"grid-defense/internal/config"
	"grid-defense/internal/defs"
	"grid-defense/internal/entity"
	"grid-defense/internal/system"
	"grid-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelPadding   = 10
	buttonHeight   = 26
	buttonSpacing  = 6
	buildColumns   = 2
	abilityButtonW = 70
)

// BuildButton — кнопка постройки конкретного типа башни.
type BuildButton struct {
	*Button
	DefID string
}

// AbilityButton — кнопка способности игрока.
type AbilityButton struct {
	*Button
	Kind defs.AbilityKind
}

// TowerPanel — правая панель: управление волной, постройка башен,
// способности и карточка выбранной башни.
type TowerPanel struct {
	fontFace font.Face

	StartWaveButton *Button
	PauseButton     *Button
	SpeedButton     *Button
	BuildButtons    []*BuildButton
	AbilityButtons  []*AbilityButton
	UpgradeButton   *Button
	SellButton      *Button
	TargetingButton *Button

	// SelectedBuild — тип башни, выбранный для постройки ("" — не выбран).
	SelectedBuild string

	infoTop int // y карточки выбранной башни
}

func NewTowerPanel(fontFace font.Face) *TowerPanel {
	p := &TowerPanel{fontFace: fontFace}

	x := int(config.UIPanelX) + panelPadding
	width := config.ScreenWidth - int(config.UIPanelX) - 2*panelPadding
	y := panelPadding

	third := (width - 2*buttonSpacing) / 3
	p.StartWaveButton = NewButton(image.Rect(x, y, x+third, y+buttonHeight), "Wave", fontFace)
	p.PauseButton = NewButton(image.Rect(x+third+buttonSpacing, y, x+2*third+buttonSpacing, y+buttonHeight), "Pause", fontFace)
	p.SpeedButton = NewButton(image.Rect(x+2*third+2*buttonSpacing, y, x+width, y+buttonHeight), "x1", fontFace)
	y += buttonHeight + 2*buttonSpacing

	colWidth := (width - buttonSpacing) / buildColumns
	for i, defID := range defs.TowerOrder {
		col := i % buildColumns
		row := i / buildColumns
		bx := x + col*(colWidth+buttonSpacing)
		by := y + row*(buttonHeight+buttonSpacing)
		def := defs.TowerLibrary[defID]
		label := fmt.Sprintf("%s  %d", def.Name, def.Cost)
		p.BuildButtons = append(p.BuildButtons, &BuildButton{
			Button: NewButton(image.Rect(bx, by, bx+colWidth, by+buttonHeight), label, fontFace),
			DefID:  defID,
		})
	}
	rows := (len(defs.TowerOrder) + buildColumns - 1) / buildColumns
	y += rows*(buttonHeight+buttonSpacing) + buttonSpacing

	for i, kind := range defs.AbilityOrder {
		bx := x + i*(abilityButtonW+buttonSpacing)
		def := defs.AbilityTable[kind]
		p.AbilityButtons = append(p.AbilityButtons, &AbilityButton{
			Button: NewButton(image.Rect(bx, y, bx+abilityButtonW, y+buttonHeight), def.Name, fontFace),
			Kind:   kind,
		})
	}
	y += buttonHeight + 2*buttonSpacing
	p.infoTop = y

	infoButtonY := y + 110
	p.UpgradeButton = NewButton(image.Rect(x, infoButtonY, x+third, infoButtonY+buttonHeight), "Upgrade", fontFace)
	p.SellButton = NewButton(image.Rect(x+third+buttonSpacing, infoButtonY, x+2*third+buttonSpacing, infoButtonY+buttonHeight), "Sell", fontFace)
	p.TargetingButton = NewButton(image.Rect(x+2*third+2*buttonSpacing, infoButtonY, x+width, infoButtonY+buttonHeight), "Target", fontFace)

	return p
}

// Contains сообщает, лежит ли точка на панели.
func (p *TowerPanel) Contains(x, y int) bool {
	return x >= int(config.UIPanelX)
}

// Draw рисует панель. upgradeCost и sellRefund считает вызывающий —
// панель не знает экономику.
func (p *TowerPanel) Draw(screen *ebiten.Image, ecs *entity.ECS, abilities *system.AbilitySystem, selected types.EntityID, upgradeCost, sellRefund int, speedMultiplier float64) {
	vector.DrawFilledRect(screen, float32(config.UIPanelX), 0, float32(config.ScreenWidth)-float32(config.UIPanelX), float32(config.ScreenHeight), config.PanelColor, false)

	p.StartWaveButton.Draw(screen)
	p.PauseButton.Draw(screen)
	p.SpeedButton.Text = fmt.Sprintf("x%.0f", speedMultiplier)
	p.SpeedButton.Draw(screen)

	for _, b := range p.BuildButtons {
		def := defs.TowerLibrary[b.DefID]
		b.Disabled = ecs.Player.Money < def.Cost
		b.Draw(screen)
		if b.DefID == p.SelectedBuild {
			r := b.Rect
			vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.TowerStrokeColor, false)
		}
	}

	for _, b := range p.AbilityButtons {
		state, ok := abilities.State(b.Kind)
		if !ok {
			continue
		}
		if state.Ready() {
			b.Text = state.Def.Name
			b.Disabled = ecs.Player.Money < state.Def.Cost
		} else {
			b.Text = fmt.Sprintf("%.0fs", state.CooldownLeft)
			b.Disabled = true
		}
		b.Draw(screen)
	}

	if selected != 0 {
		p.drawTowerInfo(screen, ecs, selected, upgradeCost, sellRefund)
	}
}

func (p *TowerPanel) drawTowerInfo(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID, upgradeCost, sellRefund int) {
	tower, ok := ecs.Towers[id]
	if !ok {
		return
	}
	def := defs.TowerLibrary[tower.DefID]
	x := int(config.UIPanelX) + panelPadding
	y := p.infoTop + 14

	text.Draw(screen, fmt.Sprintf("%s  lvl %d", def.Name, tower.Level), p.fontFace, x, y, config.TextLightColor)
	y += 18

	if combat, hasCombat := ecs.Combats[id]; hasCombat {
		text.Draw(screen, fmt.Sprintf("Damage: %.1f", combat.Damage), p.fontFace, x, y, config.TextLightColor)
		y += 16
		text.Draw(screen, fmt.Sprintf("Range: %.0f", combat.Range), p.fontFace, x, y, config.TextLightColor)
		y += 16
		if !def.Beam {
			text.Draw(screen, fmt.Sprintf("Fire rate: %.2f/s", combat.FireRate), p.fontFace, x, y, config.TextLightColor)
			y += 16
		}
	}
	if aura, hasAura := ecs.SupportAuras[id]; hasAura {
		text.Draw(screen, fmt.Sprintf("Buff: +%.0f%%  r=%.0f", aura.DamageBonus*100, aura.Radius), p.fontFace, x, y, config.TextLightColor)
		y += 16
	}
	mode := tower.Targeting
	if mode == "" {
		mode = defs.TargetFurthest
	}
	text.Draw(screen, fmt.Sprintf("Targeting: %s", mode), p.fontFace, x, y, config.TextLightColor)

	if tower.Level >= config.MaxUpgradeLevel {
		p.UpgradeButton.Text = "Max"
		p.UpgradeButton.Disabled = true
	} else {
		p.UpgradeButton.Text = fmt.Sprintf("Up %d", upgradeCost)
		p.UpgradeButton.Disabled = ecs.Player.Money < upgradeCost
	}
	p.SellButton.Text = fmt.Sprintf("Sell %d", sellRefund)
	p.SellButton.Disabled = false

	p.UpgradeButton.Draw(screen)
	p.SellButton.Draw(screen)
	p.TargetingButton.Draw(screen)
}
