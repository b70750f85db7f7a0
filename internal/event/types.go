// internal/event/types.go
package event

const (
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен
	EnemyReachedEnd EventType = "EnemyReachedEnd" // Враг дошёл до конца пути
	WaveStarted     EventType = "WaveStarted"
	WaveEnded       EventType = "WaveEnded" // Все враги волны убиты или прошли
	TowerPlaced     EventType = "TowerPlaced"
	TowerUpgraded   EventType = "TowerUpgraded"
	TowerSold       EventType = "TowerSold"
	AbilityUsed     EventType = "AbilityUsed"
	GameOver        EventType = "GameOver"
)

// EnemyKilledData — полезная нагрузка события EnemyKilled.
type EnemyKilledData struct {
	DefID  string
	Reward int
	Boss   bool
}

// WaveEndedData — полезная нагрузка события WaveEnded.
type WaveEndedData struct {
	Number     int
	HealthLost int // потеряно здоровья за волну; 0 — «идеальная» волна
}

// TowerEventData — полезная нагрузка событий башен.
type TowerEventData struct {
	DefID string
	Cost  int // стоимость постройки/апгрейда или сумма возврата при продаже
}
