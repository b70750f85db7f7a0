// internal/defs/abilities.go
package defs

// AbilityKind — вид специальной способности игрока.
type AbilityKind string

const (
	AbilityAirstrike     AbilityKind = "AIRSTRIKE"
	AbilityFreezeAll     AbilityKind = "FREEZE_ALL"
	AbilityCashBoost     AbilityKind = "CASH_BOOST"
	AbilityDamageBoost   AbilityKind = "DAMAGE_BOOST"
	AbilityHealthRestore AbilityKind = "HEALTH_RESTORE"
)

// AbilityDefinition — параметры способности. Поля Damage/Radius используются
// только авиаударом, Multiplier — бустами, Restore — восстановлением здоровья.
type AbilityDefinition struct {
	Kind       AbilityKind
	Name       string
	Cost       int
	Cooldown   float64 // секунды
	Duration   float64 // для временных эффектов; 0 — мгновенная
	Damage     float64
	Radius     float64
	Multiplier float64
	Restore    int
}

// AbilityTable определяет все способности игры.
var AbilityTable = map[AbilityKind]AbilityDefinition{
	AbilityAirstrike: {
		Kind: AbilityAirstrike, Name: "Air Strike",
		Cost: 150, Cooldown: 30, Damage: 100, Radius: 100,
	},
	AbilityFreezeAll: {
		Kind: AbilityFreezeAll, Name: "Freeze All",
		Cost: 200, Cooldown: 45, Duration: 3,
	},
	AbilityCashBoost: {
		Kind: AbilityCashBoost, Name: "Cash Boost",
		Cost: 100, Cooldown: 60, Duration: 15, Multiplier: 2,
	},
	AbilityDamageBoost: {
		Kind: AbilityDamageBoost, Name: "Damage Boost",
		Cost: 150, Cooldown: 45, Duration: 10, Multiplier: 2,
	},
	AbilityHealthRestore: {
		Kind: AbilityHealthRestore, Name: "Repair",
		Cost: 300, Cooldown: 90, Restore: 5,
	},
}

// AbilityOrder — порядок способностей на панели.
var AbilityOrder = []AbilityKind{
	AbilityAirstrike,
	AbilityFreezeAll,
	AbilityCashBoost,
	AbilityDamageBoost,
	AbilityHealthRestore,
}
