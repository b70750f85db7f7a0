// component/combat.go
package component

import "grid-defense/internal/types"

// Combat — компонент для башен, управляющий атакой. Башни поддержки
// компонента не имеют и потому никогда не стреляют.
type Combat struct {
	Damage       float64 // урон с учётом уровня; для лучевых — урон в секунду
	Range        float64 // радиус действия в пикселях
	FireRate     float64 // Скорострельность (выстрелов в секунду)
	FireCooldown float64 // Оставшееся время до следующего выстрела
	DamageBuff   float64 // множитель от башен поддержки, пересчитывается каждый тик
}

// Beam — активный лазерный луч между башней и целью. Существует, только
// пока в радиусе есть валидная цель.
type Beam struct {
	TargetID types.EntityID
}
