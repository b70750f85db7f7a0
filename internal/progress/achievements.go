// internal/progress/achievements.go
package progress

import "grid-defense/internal/defs"

// Achievements хранит открытые достижения по ID.
type Achievements struct {
	Unlocked map[string]bool `json:"unlocked"`
}

func NewAchievements() *Achievements {
	return &Achievements{Unlocked: make(map[string]bool)}
}

// IsUnlocked сообщает, открыто ли достижение.
func (a *Achievements) IsUnlocked(id string) bool {
	return a.Unlocked[id]
}

// Check сверяет статистику с порогами и открывает созревшие достижения.
// Возвращает определения только что открытых — для уведомлений в UI.
func (a *Achievements) Check(stats *Statistics) []defs.AchievementDefinition {
	if a.Unlocked == nil {
		a.Unlocked = make(map[string]bool)
	}
	var unlocked []defs.AchievementDefinition
	for _, def := range defs.AchievementTable {
		if a.Unlocked[def.ID] {
			continue
		}
		if stats.Counter(string(def.Condition)) >= def.Threshold {
			a.Unlocked[def.ID] = true
			unlocked = append(unlocked, def)
		}
	}
	return unlocked
}
