// internal/system/wave.go
package system

import (
	"log"

	"grid-defense/internal/component"
	"grid-defense/internal/config"
	"grid-defense/internal/defs"
	"grid-defense/internal/entity"
	"grid-defense/internal/event"
	"grid-defense/internal/utils"
	"grid-defense/pkg/gridmap"
)

// WaveSystem спавнит врагов по расписанию волны и ведёт её машину
// состояний: not-started -> spawning -> awaiting-clear -> complete.
type WaveSystem struct {
	ecs             *entity.ECS
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	waypoints       []gridmap.Cell
	pathTotal       float64
	startHealth     int // здоровье игрока на старте волны, для "идеальных" волн
}

func NewWaveSystem(ecs *entity.ECS, grid *gridmap.Grid, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		waypoints:       grid.Waypoints,
		pathTotal:       gridmap.PathLength(grid.Waypoints, config.CellSize),
	}
}

// StartWave строит расписание спавна для волны с указанным номером.
// Состав раскладывается в плоский список, перемешивается, и каждому
// врагу назначается время i*interval — волна «просачивается», а не
// появляется разом.
func (s *WaveSystem) StartWave(number int) *component.Wave {
	waveDef := defs.WaveForNumber(number)

	ids := make([]string, 0)
	for enemyID, count := range waveDef.Composition {
		for i := 0; i < count; i++ {
			ids = append(ids, enemyID)
		}
	}
	s.rng.ShuffleStrings(ids)

	schedule := make([]component.SpawnEntry, len(ids))
	for i, enemyID := range ids {
		schedule[i] = component.SpawnEntry{
			EnemyID: enemyID,
			At:      float64(i) * waveDef.SpawnInterval,
		}
	}

	s.startHealth = s.ecs.Player.Health
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: number})

	return &component.Wave{
		Number:   number,
		Schedule: schedule,
		Phase:    component.WaveSpawning,
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil || wave.Phase == component.WaveNotStarted || wave.Phase == component.WaveComplete {
		return
	}

	if wave.Phase == component.WaveSpawning {
		for wave.Spawned < len(wave.Schedule) && wave.Elapsed >= wave.Schedule[wave.Spawned].At {
			s.spawnEnemy(wave.Schedule[wave.Spawned].EnemyID, wave.Number)
			wave.Spawned++
		}
		wave.Elapsed += deltaTime
		if wave.Spawned == len(wave.Schedule) {
			wave.Phase = component.WaveAwaitingClear
		}
	}

	// Волна завершена, только когда все заспавнены и живых не осталось.
	if wave.Phase == component.WaveAwaitingClear && len(s.ecs.Enemies) == 0 {
		wave.Phase = component.WaveComplete
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveEnded,
			Data: event.WaveEndedData{
				Number:     wave.Number,
				HealthLost: s.startHealth - s.ecs.Player.Health,
			},
		})
	}
}

// spawnEnemy создаёт сущность врага у входа карты. Здоровье и награда
// масштабируются по номеру волны.
func (s *WaveSystem) spawnEnemy(enemyID string, waveNumber int) {
	def, ok := defs.EnemyLibrary[enemyID]
	if !ok {
		log.Printf("WaveSystem: no enemy definition for %q", enemyID)
		return
	}

	healthMult := 1 + float64(waveNumber-1)*config.WaveHealthScaling
	rewardMult := 1 + float64(waveNumber-1)*config.WaveRewardScaling
	maxHealth := def.Health * healthMult

	id := s.ecs.NewEntity()
	x, y := s.waypoints[0].Center(config.CellSize)
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.PathFollows[id] = &component.PathFollow{
		Waypoints: s.waypoints,
		Index:     1,
		Total:     s.pathTotal,
	}
	s.ecs.Healths[id] = &component.Health{Current: maxHealth, Max: maxHealth}
	if def.Shield != nil {
		s.ecs.Shields[id] = &component.Shield{
			Current: def.Shield.Capacity,
			Max:     def.Shield.Capacity,
			Regen:   def.Shield.Regen,
		}
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color.RGBA,
		Radius:    def.Visuals.Radius,
		HasStroke: def.Boss,
	}

	enemy := &component.Enemy{
		DefID:      enemyID,
		SpawnSeq:   s.ecs.SpawnSeq,
		Reward:     int(float64(def.Reward) * rewardMult),
		Armor:      def.Armor,
		Regen:      def.Regen,
		SlowImmune: def.SlowImmune,
		Boss:       def.Boss,
	}
	if def.HealAura != nil {
		enemy.HealRadius = def.HealAura.Radius
		enemy.HealRate = def.HealAura.Rate
	}
	s.ecs.Enemies[id] = enemy
	s.ecs.SpawnSeq++
}
