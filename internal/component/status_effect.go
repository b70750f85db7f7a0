// internal/component/status_effect.go
package component

// Статусные эффекты хранятся по одному на вид: повторное наложение того же
// вида обновляет таймер и магнитуду, а не стакается. Разные виды
// сосуществуют независимо.

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Timer  float64 // How much time is left for the effect.
	Factor float64 // Multiplier for speed (e.g., 0.5 for 50% slow).
}

// PoisonEffect — периодический урон ядом.
type PoisonEffect struct {
	Timer float64
	DPS   float64 // урон в секунду
}

// BurnEffect — периодический урон горением; независимый от яда канал.
type BurnEffect struct {
	Timer float64
	DPS   float64
}

// FreezeEffect полностью останавливает врага на время действия.
type FreezeEffect struct {
	Timer float64
}
