// internal/system/status_effect.go
package system

import "grid-defense/internal/entity"

// StatusEffectSystem управляет жизненным циклом эффектов: замедления,
// заморозки, яда и горения.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for id, effect := range s.ecs.SlowEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.SlowEffects, id)
		}
	}

	for id, effect := range s.ecs.FreezeEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.FreezeEffects, id)
		}
	}

	// Яд и горение — независимые каналы периодического урона:
	// урон пропорционален прошедшему времени, без дискретных тиков.
	for id, effect := range s.ecs.PoisonEffects {
		dt := deltaTime
		if effect.Timer < dt {
			dt = effect.Timer
		}
		ApplyDamage(s.ecs, id, effect.DPS*dt)
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.PoisonEffects, id)
		}
	}

	for id, effect := range s.ecs.BurnEffects {
		dt := deltaTime
		if effect.Timer < dt {
			dt = effect.Timer
		}
		ApplyDamage(s.ecs, id, effect.DPS*dt)
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.BurnEffects, id)
		}
	}
}
