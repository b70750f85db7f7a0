package system

import (
	"testing"

	"grid-defense/internal/component"
	"grid-defense/internal/defs"
	"grid-defense/internal/entity"
	"grid-defense/internal/event"
	"grid-defense/internal/utils"
	"grid-defense/pkg/gridmap"
)

func testGrid(t *testing.T) *gridmap.Grid {
	t.Helper()
	grid, err := gridmap.NewGrid(gridmap.Layout{
		Name: "test", Rows: 3, Cols: 5,
		Path: []gridmap.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 1, Col: 4}},
	})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return grid
}

// withWaveTable временно подменяет таблицу волн на детерминированную.
func withWaveTable(t *testing.T, waves []defs.WaveDefinition) {
	t.Helper()
	old := defs.WaveTable
	defs.WaveTable = waves
	t.Cleanup(func() { defs.WaveTable = old })
}

func TestWaveSpawnsOnSchedule(t *testing.T) {
	withWaveTable(t, []defs.WaveDefinition{
		{Composition: map[string]int{"basic": 3}, SpawnInterval: 1},
	})

	ecs := entity.NewECS()
	ws := NewWaveSystem(ecs, testGrid(t), utils.NewPRNGService(1), event.NewDispatcher())
	ecs.Wave = ws.StartWave(1)

	if len(ecs.Wave.Schedule) != 3 {
		t.Fatalf("schedule = %d entries, want 3", len(ecs.Wave.Schedule))
	}
	for i, entry := range ecs.Wave.Schedule {
		if entry.At != float64(i) {
			t.Errorf("entry %d at %v, want %v", i, entry.At, float64(i))
		}
	}

	// t=0: первый враг появляется сразу, остальные по расписанию.
	ws.Update(0.5)
	if got := len(ecs.Enemies); got != 1 {
		t.Fatalf("enemies after first tick = %d, want 1", got)
	}
	ws.Update(0.5) // elapsed 1.0
	ws.Update(0.5) // спавн второго
	if got := len(ecs.Enemies); got != 2 {
		t.Fatalf("enemies after 1.5s = %d, want 2", got)
	}
	for i := 0; i < 3; i++ {
		ws.Update(0.5)
	}
	if got := len(ecs.Enemies); got != 3 {
		t.Fatalf("enemies after 3s = %d, want all 3", got)
	}
	if ecs.Wave.Phase != component.WaveAwaitingClear {
		t.Errorf("phase = %v, want awaiting-clear", ecs.Wave.Phase)
	}
}

func TestWaveCompletesWhenFieldIsClear(t *testing.T) {
	withWaveTable(t, []defs.WaveDefinition{
		{Composition: map[string]int{"basic": 1}, SpawnInterval: 1},
	})

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	listener := newCountingListener()
	dispatcher.Subscribe(event.WaveEnded, listener)

	ws := NewWaveSystem(ecs, testGrid(t), utils.NewPRNGService(1), dispatcher)
	ecs.Wave = ws.StartWave(1)
	ws.Update(0.1)
	if ecs.Wave.Phase != component.WaveAwaitingClear {
		t.Fatalf("phase = %v, want awaiting-clear after the only spawn", ecs.Wave.Phase)
	}

	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
	}
	ws.Update(0.1)
	if ecs.Wave.Phase != component.WaveComplete {
		t.Errorf("phase = %v, want complete", ecs.Wave.Phase)
	}
	if listener.events[event.WaveEnded] != 1 {
		t.Errorf("WaveEnded dispatched %d times, want 1", listener.events[event.WaveEnded])
	}
	data, ok := listener.last.Data.(event.WaveEndedData)
	if !ok || data.Number != 1 || data.HealthLost != 0 {
		t.Errorf("WaveEnded payload = %+v, want wave 1 with no health lost", listener.last.Data)
	}
}

func TestWaveScalesHealthAndReward(t *testing.T) {
	withWaveTable(t, []defs.WaveDefinition{
		{Composition: map[string]int{"basic": 1}, SpawnInterval: 1},
	})

	ecs := entity.NewECS()
	ws := NewWaveSystem(ecs, testGrid(t), utils.NewPRNGService(1), event.NewDispatcher())

	// Волна 3: здоровье x1.3, награда x1.2 от базовых 50/10.
	ecs.Wave = ws.StartWave(3)
	ws.Update(0.1)
	for id, enemy := range ecs.Enemies {
		if got := ecs.Healths[id].Max; got != 65 {
			t.Errorf("health = %v, want 65", got)
		}
		if enemy.Reward != 12 {
			t.Errorf("reward = %d, want 12", enemy.Reward)
		}
	}
}

func TestWaveNumberPastTableRepeatsLast(t *testing.T) {
	withWaveTable(t, []defs.WaveDefinition{
		{Composition: map[string]int{"basic": 1}, SpawnInterval: 1},
		{Composition: map[string]int{"basic": 5}, SpawnInterval: 0.5},
	})

	ecs := entity.NewECS()
	ws := NewWaveSystem(ecs, testGrid(t), utils.NewPRNGService(1), event.NewDispatcher())
	wave := ws.StartWave(40)
	if len(wave.Schedule) != 5 {
		t.Errorf("schedule = %d entries, want last table entry repeated", len(wave.Schedule))
	}
}

func TestSpawnedEnemiesShareWaypoints(t *testing.T) {
	withWaveTable(t, []defs.WaveDefinition{
		{Composition: map[string]int{"basic": 2}, SpawnInterval: 0.1},
	})

	ecs := entity.NewECS()
	grid := testGrid(t)
	ws := NewWaveSystem(ecs, grid, utils.NewPRNGService(1), event.NewDispatcher())
	ecs.Wave = ws.StartWave(1)
	ws.Update(0.1)
	ws.Update(0.1)

	seqs := map[uint64]bool{}
	for id, enemy := range ecs.Enemies {
		path := ecs.PathFollows[id]
		if &path.Waypoints[0] != &grid.Waypoints[0] {
			t.Error("enemies must share the grid waypoint slice")
		}
		if seqs[enemy.SpawnSeq] {
			t.Error("spawn sequence numbers must be unique")
		}
		seqs[enemy.SpawnSeq] = true
	}
}
