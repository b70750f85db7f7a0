// internal/defs/towers.go
package defs

// TargetingMode — политика выбора цели башней среди врагов в радиусе.
type TargetingMode string

const (
	TargetFurthest  TargetingMode = "FURTHEST"  // дальше всех по пути (по умолчанию)
	TargetFirst     TargetingMode = "FIRST"     // синоним FURTHEST, исторически
	TargetLast      TargetingMode = "LAST"      // ближе всех к началу пути
	TargetClosest   TargetingMode = "CLOSEST"   // ближе всех к башне
	TargetStrongest TargetingMode = "STRONGEST" // максимум текущего здоровья
	TargetWeakest   TargetingMode = "WEAKEST"   // минимум текущего здоровья
)

// StatusKind — вид статусного эффекта на враге.
type StatusKind string

const (
	StatusSlow   StatusKind = "SLOW"
	StatusPoison StatusKind = "POISON"
	StatusBurn   StatusKind = "BURN"
	StatusFreeze StatusKind = "FREEZE"
)

// StatusPayload — эффект, который снаряд накладывает при попадании.
// Для SLOW магнитуда — доля замедления (0.5 = вдвое медленнее),
// для POISON/BURN — урон в секунду, для FREEZE магнитуда не используется.
type StatusPayload struct {
	Kind     StatusKind `yaml:"kind"`
	Duration float64    `yaml:"duration"`
	Magnitude float64   `yaml:"magnitude"`
}

// SplashDef — параметры площадного урона.
type SplashDef struct {
	Radius float64 `yaml:"radius"`
}

// ChainDef — параметры цепной молнии: сколько целей и насколько
// уменьшается урон с каждым прыжком.
type ChainDef struct {
	Count     int     `yaml:"count"`
	Reduction float64 `yaml:"reduction"`
}

// SupportDef — параметры башни поддержки. Такая башня не стреляет,
// а усиливает урон соседних башен.
type SupportDef struct {
	Radius      float64 `yaml:"radius"`
	DamageBonus float64 `yaml:"damage_bonus"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID              string        `yaml:"id"`
	Name            string        `yaml:"name"`
	Cost            int           `yaml:"cost"`
	Damage          float64       `yaml:"damage"`
	Range           float64       `yaml:"range"`
	FireRate        float64       `yaml:"fire_rate"` // выстрелов в секунду; для лучевых — не используется
	ProjectileSpeed float64       `yaml:"projectile_speed"`
	Beam            bool          `yaml:"beam"` // лазер: непрерывный урон вместо снарядов
	Splash          *SplashDef    `yaml:"splash,omitempty"`
	Chain           *ChainDef     `yaml:"chain,omitempty"`
	Status          *StatusPayload `yaml:"status,omitempty"`
	Support         *SupportDef   `yaml:"support,omitempty"`
	Targeting       TargetingMode `yaml:"targeting,omitempty"`
	Visuals         Visuals       `yaml:"visuals"`
}

// TowerLibrary is a map to hold all tower definitions, keyed by their ID.
var TowerLibrary map[string]TowerDefinition

// TowerOrder — порядок башен на панели строительства.
var TowerOrder []string
