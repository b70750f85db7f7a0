// internal/app/game.go
package app

import (
	"errors"

	"grid-defense/internal/component"
	"grid-defense/internal/defs"
	"grid-defense/internal/entity"
	"grid-defense/internal/event"
	"grid-defense/internal/system"
	"grid-defense/internal/utils"
	"grid-defense/pkg/gridmap"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotBuildable      = errors.New("cell is not buildable")
	ErrCellOccupied      = errors.New("cell is occupied")
	ErrNoSuchTower       = errors.New("no such tower")
	ErrMaxLevel          = errors.New("tower is at max level")
	ErrWaveActive        = errors.New("wave is already active")
	ErrAbilityNotReady   = errors.New("ability is on cooldown")
	ErrUnknownAbility    = errors.New("unknown ability")
	ErrUnknownTowerType  = errors.New("unknown tower type")
)

// Game владеет состоянием партии: ECS, системами и картой. Команды игрока
// (строительство, апгрейды, способности) проходят через его методы, сама
// симуляция двигается в Update.
type Game struct {
	Grid *gridmap.Grid
	ECS  *entity.ECS

	WaveSystem         *system.WaveSystem
	StatusEffectSystem *system.StatusEffectSystem
	MovementSystem     *system.MovementSystem
	EnemyAbilitySystem *system.EnemyAbilitySystem
	SupportSystem      *system.SupportSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	AbilitySystem      *system.AbilitySystem
	CleanupSystem      *system.CleanupSystem
	RenderSystem       *system.RenderSystem

	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	SpeedMultiplier float64
	isPaused        bool
}

// NewGame собирает партию на данной карте. Сид задаёт порядок спавна
// внутри волн; одинаковый сид — одинаковая партия.
func NewGame(grid *gridmap.Grid, seed int64) *Game {
	if grid == nil {
		panic("grid cannot be nil")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Grid:            grid,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(seed),
		SpeedMultiplier: 1.0,
	}

	g.WaveSystem = system.NewWaveSystem(ecs, grid, g.Rng, eventDispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.EnemyAbilitySystem = system.NewEnemyAbilitySystem(ecs)
	g.SupportSystem = system.NewSupportSystem(ecs)
	g.AbilitySystem = system.NewAbilitySystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, g.AbilitySystem)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.CleanupSystem = system.NewCleanupSystem(ecs, eventDispatcher, g.AbilitySystem)
	g.RenderSystem = system.NewRenderSystem(ecs)

	return g
}

// Update двигает симуляцию на deltaTime секунд. Порядок систем фиксирован:
// спавн, статусы, движение, пассивки врагов, бафы поддержки, бой, снаряды,
// способности, и в конце cleanup — единственное место, где меняются деньги,
// счёт и здоровье игрока.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused || g.ECS.Player.GameOver {
		return
	}

	dt := deltaTime * g.SpeedMultiplier
	g.ECS.GameTime += dt

	g.WaveSystem.Update(dt)
	g.StatusEffectSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.EnemyAbilitySystem.Update(dt)
	g.SupportSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.AbilitySystem.Update(dt)
	g.CleanupSystem.Update(dt)
}

// StartWave запускает следующую волну. Пока текущая не завершена,
// новая не стартует.
func (g *Game) StartWave() error {
	if g.WaveActive() {
		return ErrWaveActive
	}
	number := 1
	if g.ECS.Wave != nil {
		number = g.ECS.Wave.Number + 1
	}
	g.ECS.Wave = g.WaveSystem.StartWave(number)
	return nil
}

// WaveActive сообщает, идёт ли волна прямо сейчас.
func (g *Game) WaveActive() bool {
	w := g.ECS.Wave
	if w == nil {
		return false
	}
	return w.Phase == component.WaveSpawning || w.Phase == component.WaveAwaitingClear
}

// ActivateAbility применяет способность игрока в точке (x, y). Деньги
// списываются только если способность готова.
func (g *Game) ActivateAbility(kind defs.AbilityKind, x, y float64) error {
	state, ok := g.AbilitySystem.State(kind)
	if !ok {
		return ErrUnknownAbility
	}
	if !state.Ready() {
		return ErrAbilityNotReady
	}
	if g.ECS.Player.Money < state.Def.Cost {
		return ErrInsufficientFunds
	}

	g.ECS.Player.Money -= state.Def.Cost
	g.AbilitySystem.Activate(kind, x, y)
	g.EventDispatcher.Dispatch(event.Event{Type: event.AbilityUsed, Data: string(kind)})
	return nil
}

func (g *Game) TogglePause() {
	g.isPaused = !g.isPaused
}

func (g *Game) Paused() bool {
	return g.isPaused
}

// ToggleSpeed переключает скорость симуляции 1x <-> 2x.
func (g *Game) ToggleSpeed() {
	if g.SpeedMultiplier == 1.0 {
		g.SpeedMultiplier = 2.0
	} else {
		g.SpeedMultiplier = 1.0
	}
}
