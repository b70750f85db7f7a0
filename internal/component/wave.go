// internal/component/wave.go
package component

// WavePhase — фаза жизненного цикла волны.
type WavePhase int

const (
	WaveNotStarted WavePhase = iota
	WaveSpawning
	WaveAwaitingClear // все заспавнены, ждём зачистки
	WaveComplete
)

// SpawnEntry — один запланированный спавн: кого и когда.
type SpawnEntry struct {
	EnemyID string
	At      float64 // секунд от старта волны
}

// Wave — состояние текущей волны. Переходы фаз управляются количеством
// заспавненных и живых врагов, не внешними сигналами.
type Wave struct {
	Number   int
	Schedule []SpawnEntry
	Elapsed  float64
	Spawned  int
	Phase    WavePhase
}
