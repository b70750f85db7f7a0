// internal/defs/enemies.go
package defs

// ShieldDef — щит врага: поглощает урон до здоровья и восстанавливается.
type ShieldDef struct {
	Capacity float64 `yaml:"capacity"`
	Regen    float64 `yaml:"regen"` // единиц в секунду
}

// HealAuraDef — аура лечения: враг лечит живых соседей в радиусе.
type HealAuraDef struct {
	Radius float64 `yaml:"radius"`
	Rate   float64 `yaml:"rate"` // здоровья в секунду каждому
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID         string       `yaml:"id"`
	Name       string       `yaml:"name"`
	Health     float64      `yaml:"health"`
	Speed      float64      `yaml:"speed"` // пикселей в секунду
	Reward     int          `yaml:"reward"`
	Armor      float64      `yaml:"armor,omitempty"` // доля поглощаемого урона, 0..1
	Regen      float64      `yaml:"regen,omitempty"` // здоровья в секунду
	Shield     *ShieldDef   `yaml:"shield,omitempty"`
	HealAura   *HealAuraDef `yaml:"heal_aura,omitempty"`
	SlowImmune bool         `yaml:"slow_immune,omitempty"` // призраки игнорируют замедление и заморозку
	Boss       bool         `yaml:"boss,omitempty"`
	Visuals    Visuals      `yaml:"visuals"`
}

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition
