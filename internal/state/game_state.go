// internal/state/game_state.go
package state

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"grid-defense/internal/app"
	"grid-defense/internal/config"
	"grid-defense/internal/defs"
	"grid-defense/internal/event"
	"grid-defense/internal/progress"
	"grid-defense/internal/types"
	"grid-defense/internal/ui"
	"grid-defense/pkg/gridmap"
	"grid-defense/pkg/render"
)

// targetingCycle — порядок переключения режимов кнопкой Target.
var targetingCycle = []defs.TargetingMode{
	defs.TargetFurthest,
	defs.TargetLast,
	defs.TargetClosest,
	defs.TargetStrongest,
	defs.TargetWeakest,
}

type notification struct {
	text string
	ttl  float64
}

// GameState — сама партия: симуляция, ввод и отрисовка.
type GameState struct {
	sm       *StateMachine
	ctx      *Context
	mapID    string
	game     *app.Game
	renderer *render.GridRenderer
	hud      *ui.HUD
	panel    *ui.TowerPanel

	selectedTower  types.EntityID
	pendingAbility defs.AbilityKind // способность, ждущая клика по карте
	notifications  []notification
	lastClickTime  time.Time
}

func NewGameState(sm *StateMachine, ctx *Context, mapID string) *GameState {
	mapDef, ok := defs.MapLibrary[mapID]
	if !ok {
		log.Fatalf("no map definition for %q", mapID)
	}
	grid, err := gridmap.NewGrid(mapDef.Layout())
	if err != nil {
		log.Fatalf("map %q: %v", mapID, err)
	}

	gameLogic := app.NewGame(grid, time.Now().UnixNano())
	renderer := render.NewGridRenderer(grid, config.CellSize, config.ScreenWidth, config.ScreenHeight, &render.MapColors{
		Background: config.BackgroundColor,
		Grass:      config.GrassColor,
		Path:       config.PathColor,
		Start:      config.StartColor,
		End:        config.EndColor,
		GridLine:   config.GridLineColor,
	})

	g := &GameState{
		sm:            sm,
		ctx:           ctx,
		mapID:         mapID,
		game:          gameLogic,
		renderer:      renderer,
		hud:           ui.NewHUD(ctx.FontFace),
		panel:         ui.NewTowerPanel(ctx.FontFace),
		lastClickTime: time.Now(),
	}

	tracker := &statsListener{tracker: progress.NewTracker(ctx.Stats), ctx: ctx, gs: g}
	for _, t := range []event.EventType{
		event.EnemyKilled, event.EnemyReachedEnd, event.TowerPlaced,
		event.TowerUpgraded, event.TowerSold, event.WaveEnded, event.GameOver,
	} {
		gameLogic.EventDispatcher.Subscribe(t, tracker)
	}

	return g
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := g.game.StartWave(); err != nil {
			log.Printf("start wave: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.game.ToggleSpeed()
	}

	g.game.Update(deltaTime)

	for i := range g.notifications {
		g.notifications[i].ttl -= deltaTime
	}
	for len(g.notifications) > 0 && g.notifications[0].ttl <= 0 {
		g.notifications = g.notifications[1:]
	}

	if g.game.ECS.Player.GameOver {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx, g.mapID, g.game.ECS.Player.Score, g.bestWave()))
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if time.Since(g.lastClickTime) >= config.ClickCooldown*time.Millisecond {
			x, y := ebiten.CursorPosition()
			if g.panel.Contains(x, y) {
				g.handlePanelClick(x, y)
			} else {
				g.handleMapClick(x, y)
			}
			g.lastClickTime = time.Now()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		// Правый клик сбрасывает выбор.
		g.panel.SelectedBuild = ""
		g.pendingAbility = ""
		g.selectedTower = 0
	}
}

func (g *GameState) handlePanelClick(x, y int) {
	switch {
	case g.panel.StartWaveButton.Contains(x, y):
		if err := g.game.StartWave(); err != nil {
			log.Printf("start wave: %v", err)
		}
	case g.panel.PauseButton.Contains(x, y):
		g.sm.SetState(NewPauseState(g.sm, g))
	case g.panel.SpeedButton.Contains(x, y):
		g.game.ToggleSpeed()
	case g.selectedTower != 0 && g.panel.UpgradeButton.Contains(x, y):
		if err := g.game.UpgradeTower(g.selectedTower); err != nil {
			log.Printf("upgrade: %v", err)
		}
	case g.selectedTower != 0 && g.panel.SellButton.Contains(x, y):
		if err := g.game.SellTower(g.selectedTower); err != nil {
			log.Printf("sell: %v", err)
		}
		g.selectedTower = 0
	case g.selectedTower != 0 && g.panel.TargetingButton.Contains(x, y):
		g.cycleTargeting()
	default:
		for _, b := range g.panel.BuildButtons {
			if b.Contains(x, y) {
				g.panel.SelectedBuild = b.DefID
				g.selectedTower = 0
				g.pendingAbility = ""
				return
			}
		}
		for _, b := range g.panel.AbilityButtons {
			if b.Contains(x, y) {
				g.activateAbility(b.Kind)
				return
			}
		}
	}
}

// activateAbility применяет способность сразу, если ей не нужна точка на
// карте; авиаудар ждёт следующего клика по полю.
func (g *GameState) activateAbility(kind defs.AbilityKind) {
	if kind == defs.AbilityAirstrike {
		g.pendingAbility = kind
		return
	}
	if err := g.game.ActivateAbility(kind, 0, 0); err != nil {
		log.Printf("ability %s: %v", kind, err)
	}
}

func (g *GameState) handleMapClick(x, y int) {
	if g.pendingAbility != "" {
		if err := g.game.ActivateAbility(g.pendingAbility, float64(x), float64(y)); err != nil {
			log.Printf("ability %s: %v", g.pendingAbility, err)
		}
		g.pendingAbility = ""
		return
	}

	cell := gridmap.PixelToCell(float64(x), float64(y), config.CellSize)
	if g.panel.SelectedBuild != "" {
		if _, err := g.game.PlaceTower(g.panel.SelectedBuild, cell); err != nil {
			log.Printf("place %s: %v", g.panel.SelectedBuild, err)
		}
		return
	}

	if id, ok := g.game.TowerAt(cell); ok {
		g.selectedTower = id
	} else {
		g.selectedTower = 0
	}
}

func (g *GameState) cycleTargeting() {
	tower, ok := g.game.ECS.Towers[g.selectedTower]
	if !ok {
		return
	}
	current := tower.Targeting
	if current == "" {
		current = defs.TargetFurthest
	}
	next := targetingCycle[0]
	for i, mode := range targetingCycle {
		if mode == current {
			next = targetingCycle[(i+1)%len(targetingCycle)]
			break
		}
	}
	if err := g.game.SetTargeting(g.selectedTower, next); err != nil {
		log.Printf("targeting: %v", err)
	}
}

func (g *GameState) bestWave() int {
	if g.game.ECS.Wave != nil {
		return g.game.ECS.Wave.Number
	}
	return 0
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	g.drawRangeCircle(screen)
	g.game.RenderSystem.Draw(screen)
	g.hud.Draw(screen, g.game.ECS, g.game.SpeedMultiplier)

	upgradeCost, sellRefund := 0, 0
	if tower, ok := g.game.ECS.Towers[g.selectedTower]; ok {
		def := defs.TowerLibrary[tower.DefID]
		upgradeCost = app.UpgradeCost(def.Cost, tower.Level)
		sellRefund = int(config.SellRefundFactor * float64(tower.TotalSpent))
	}
	g.panel.Draw(screen, g.game.ECS, g.game.AbilitySystem, g.selectedTower, upgradeCost, sellRefund, g.game.SpeedMultiplier)

	if g.pendingAbility != "" {
		text.Draw(screen, "Click the map to strike", g.ctx.FontFace, 8, 64, config.TextLightColor)
	}
	for i, n := range g.notifications {
		text.Draw(screen, n.text, g.ctx.FontFace, config.ScreenWidth/2-120, 24+i*18, config.BuffCircleColor)
	}
}

// drawRangeCircle показывает радиус выбранной башни или башни поддержки.
func (g *GameState) drawRangeCircle(screen *ebiten.Image) {
	if g.selectedTower == 0 {
		return
	}
	pos, ok := g.game.ECS.Positions[g.selectedTower]
	if !ok {
		return
	}
	if combat, hasCombat := g.game.ECS.Combats[g.selectedTower]; hasCombat {
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(combat.Range), 1.5, config.RangeCircleColor, true)
	}
	if aura, hasAura := g.game.ECS.SupportAuras[g.selectedTower]; hasAura {
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(aura.Radius), 1.5, config.BuffCircleColor, true)
	}
}

func (g *GameState) Exit() {}

// statsListener пересылает игровые события в накопительную статистику
// и проверяет достижения на границах волн.
type statsListener struct {
	tracker *progress.Tracker
	ctx     *Context
	gs      *GameState
}

func (l *statsListener) OnEvent(e event.Event) {
	l.tracker.OnEvent(e)

	if e.Type == event.WaveEnded || e.Type == event.GameOver {
		for _, def := range l.ctx.Achievements.Check(l.ctx.Stats) {
			l.gs.notifications = append(l.gs.notifications, notification{
				text: "Achievement: " + def.Name,
				ttl:  4,
			})
		}
		if err := l.ctx.SaveProgress(); err != nil {
			log.Printf("save progress: %v", err)
		}
	}
}
