// internal/component/projectile.go
package component

import (
	"image/color"

	"grid-defense/internal/defs"
	"grid-defense/internal/types"
)

// Projectile представляет летящий снаряд. Точка попадания фиксируется
// в момент выстрела: снаряд не преследует цель. Если цель умирает
// в полёте, одиночный выстрел пропадает впустую — это осознанная политика,
// а площадной взрыв всё равно происходит в точке попадания.
type Projectile struct {
	SourceID types.EntityID
	TargetID types.EntityID
	TargetX  float64 // захваченная точка попадания
	TargetY  float64
	Speed    float64
	Damage   float64
	Direction float64 // угол полёта в радианах

	SplashRadius   float64 // 0 — одиночный выстрел
	ChainCount     int     // 0 — без цепной молнии
	ChainReduction float64
	Status         *defs.StatusPayload

	Color color.RGBA
}
