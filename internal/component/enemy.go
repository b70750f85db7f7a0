// component/enemy.go
package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID      string // ID из enemies.yaml
	SpawnSeq   uint64 // порядковый номер появления, разрешает ничьи при выборе цели
	Reward     int    // награда с учётом масштабирования волны
	Armor      float64
	Regen      float64
	HealRadius float64 // радиус ауры лечения, 0 — нет ауры
	HealRate   float64
	SlowImmune bool
	Boss       bool
	ReachedEnd bool // враг прошёл путь до конца (не убит)
}
