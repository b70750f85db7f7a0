// internal/progress/statistics.go
package progress

import "grid-defense/internal/event"

// Statistics — накопительные счётчики за всё время игры. Сериализуются
// в сохранение как есть.
type Statistics struct {
	TotalKills     int `json:"total_kills"`
	BossKills      int `json:"boss_kills"`
	TowersBuilt    int `json:"towers_built"`
	TowersSold     int `json:"towers_sold"`
	WavesCompleted int `json:"waves_completed"`
	MoneyEarned    int `json:"money_earned"`
	MoneySpent     int `json:"money_spent"`
	PerfectWaves   int `json:"perfect_waves"`
	Upgrades       int `json:"upgrades"`
	LivesLost      int `json:"lives_lost"`
	BestWave       int `json:"best_wave"`
	HighestScore   int `json:"highest_score"`
	GamesPlayed    int `json:"games_played"`
}

// Counter возвращает значение счётчика по имени условия достижения.
func (s *Statistics) Counter(condition string) int {
	switch condition {
	case "kills":
		return s.TotalKills
	case "boss_kills":
		return s.BossKills
	case "towers_built":
		return s.TowersBuilt
	case "waves":
		return s.WavesCompleted
	case "money_earned":
		return s.MoneyEarned
	case "perfect_waves":
		return s.PerfectWaves
	case "upgrades":
		return s.Upgrades
	default:
		return 0
	}
}

// Tracker подписывается на игровые события и ведёт статистику.
type Tracker struct {
	Stats *Statistics
}

func NewTracker(stats *Statistics) *Tracker {
	if stats == nil {
		stats = &Statistics{}
	}
	return &Tracker{Stats: stats}
}

// OnEvent реализует event.Listener.
func (t *Tracker) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		t.Stats.TotalKills++
		if data, ok := e.Data.(event.EnemyKilledData); ok {
			t.Stats.MoneyEarned += data.Reward
			if data.Boss {
				t.Stats.BossKills++
			}
		}
	case event.TowerPlaced:
		t.Stats.TowersBuilt++
		if data, ok := e.Data.(event.TowerEventData); ok {
			t.Stats.MoneySpent += data.Cost
		}
	case event.TowerUpgraded:
		t.Stats.Upgrades++
		if data, ok := e.Data.(event.TowerEventData); ok {
			t.Stats.MoneySpent += data.Cost
		}
	case event.TowerSold:
		t.Stats.TowersSold++
	case event.EnemyReachedEnd:
		t.Stats.LivesLost++
	case event.WaveEnded:
		t.Stats.WavesCompleted++
		if data, ok := e.Data.(event.WaveEndedData); ok {
			if data.HealthLost == 0 {
				t.Stats.PerfectWaves++
			}
			if data.Number > t.Stats.BestWave {
				t.Stats.BestWave = data.Number
			}
		}
	case event.GameOver:
		t.Stats.GamesPlayed++
		if score, ok := e.Data.(int); ok && score > t.Stats.HighestScore {
			t.Stats.HighestScore = score
		}
	}
}
