// internal/system/utils.go
package system

import (
	"grid-defense/internal/component"
	"grid-defense/internal/defs"
	"grid-defense/internal/entity"
	"grid-defense/internal/types"
)

// ApplyDamage наносит урон сущности. Броня поглощает свою долю первой,
// затем урон принимает щит и только потом здоровье.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage float64) {
	if damage <= 0 {
		return
	}

	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth {
		return
	}

	if enemy, isEnemy := ecs.Enemies[entityID]; isEnemy && enemy.Armor > 0 {
		damage *= 1 - enemy.Armor
	}

	if shield, hasShield := ecs.Shields[entityID]; hasShield && shield.Current > 0 {
		absorbed := damage
		if absorbed > shield.Current {
			absorbed = shield.Current
		}
		shield.Current -= absorbed
		damage -= absorbed
	}

	health.Current -= damage
	if health.Current < 0 {
		health.Current = 0
	}
}

// ApplyStatus накладывает статусный эффект. Повторное наложение того же
// вида обновляет длительность и магнитуду, не стакаясь. Призраки
// игнорируют замедление и заморозку.
func ApplyStatus(ecs *entity.ECS, entityID types.EntityID, payload *defs.StatusPayload) {
	if payload == nil {
		return
	}
	enemy, isEnemy := ecs.Enemies[entityID]
	if !isEnemy {
		return
	}

	switch payload.Kind {
	case defs.StatusSlow:
		if enemy.SlowImmune {
			return
		}
		ecs.SlowEffects[entityID] = &component.SlowEffect{
			Timer:  payload.Duration,
			Factor: 1 - payload.Magnitude,
		}
	case defs.StatusFreeze:
		if enemy.SlowImmune {
			return
		}
		ecs.FreezeEffects[entityID] = &component.FreezeEffect{Timer: payload.Duration}
	case defs.StatusPoison:
		ecs.PoisonEffects[entityID] = &component.PoisonEffect{
			Timer: payload.Duration,
			DPS:   payload.Magnitude,
		}
	case defs.StatusBurn:
		ecs.BurnEffects[entityID] = &component.BurnEffect{
			Timer: payload.Duration,
			DPS:   payload.Magnitude,
		}
	}
}
