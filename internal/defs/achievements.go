// internal/defs/achievements.go
package defs

// AchievementCondition — счётчик статистики, по которому проверяется достижение.
type AchievementCondition string

const (
	CondKills        AchievementCondition = "kills"
	CondBossKills    AchievementCondition = "boss_kills"
	CondTowersBuilt  AchievementCondition = "towers_built"
	CondWaves        AchievementCondition = "waves"
	CondMoneyEarned  AchievementCondition = "money_earned"
	CondPerfectWaves AchievementCondition = "perfect_waves"
	CondUpgrades     AchievementCondition = "upgrades"
)

// AchievementDefinition — одно достижение: условие и порог.
type AchievementDefinition struct {
	ID          string
	Name        string
	Description string
	Condition   AchievementCondition
	Threshold   int
}

// AchievementTable определяет все достижения игры.
var AchievementTable = []AchievementDefinition{
	{ID: "first_blood", Name: "First Blood", Description: "Kill your first enemy", Condition: CondKills, Threshold: 1},
	{ID: "centurion", Name: "Centurion", Description: "Kill 100 enemies", Condition: CondKills, Threshold: 100},
	{ID: "exterminator", Name: "Exterminator", Description: "Kill 1000 enemies", Condition: CondKills, Threshold: 1000},
	{ID: "boss_slayer", Name: "Boss Slayer", Description: "Kill a boss enemy", Condition: CondBossKills, Threshold: 1},
	{ID: "architect", Name: "Architect", Description: "Build 25 towers", Condition: CondTowersBuilt, Threshold: 25},
	{ID: "survivor", Name: "Survivor", Description: "Complete 10 waves", Condition: CondWaves, Threshold: 10},
	{ID: "veteran", Name: "Veteran", Description: "Complete 50 waves", Condition: CondWaves, Threshold: 50},
	{ID: "tycoon", Name: "Tycoon", Description: "Earn 10000 gold in total", Condition: CondMoneyEarned, Threshold: 10000},
	{ID: "untouchable", Name: "Untouchable", Description: "Finish a wave without losing health", Condition: CondPerfectWaves, Threshold: 1},
	{ID: "engineer", Name: "Engineer", Description: "Perform 30 upgrades", Condition: CondUpgrades, Threshold: 30},
}
