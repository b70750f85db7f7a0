// internal/component/aura.go
package component

// SupportAura — аура башни поддержки: усиливает урон атакующих башен
// в радиусе. Эффект не персистентный — пересчитывается каждый тик
// и исчезает сразу после продажи башни.
type SupportAura struct {
	Radius      float64
	DamageBonus float64 // 0.3 — плюс 30% урона
}
