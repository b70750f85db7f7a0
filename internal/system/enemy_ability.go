// internal/system/enemy_ability.go
package system

import (
	"grid-defense/internal/entity"
	"grid-defense/internal/types"
	"grid-defense/internal/utils"
)

// EnemyAbilitySystem применяет пассивные способности врагов:
// регенерацию, восстановление щита и ауру лечения.
type EnemyAbilitySystem struct {
	ecs *entity.ECS
}

func NewEnemyAbilitySystem(ecs *entity.ECS) *EnemyAbilitySystem {
	return &EnemyAbilitySystem{ecs: ecs}
}

func (s *EnemyAbilitySystem) Update(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		if enemy.ReachedEnd {
			continue
		}
		health, hasHealth := s.ecs.Healths[id]
		if !hasHealth || health.Current <= 0 {
			continue
		}

		if enemy.Regen > 0 {
			health.Current += enemy.Regen * deltaTime
			if health.Current > health.Max {
				health.Current = health.Max
			}
		}

		if shield, hasShield := s.ecs.Shields[id]; hasShield && shield.Regen > 0 {
			shield.Current += shield.Regen * deltaTime
			if shield.Current > shield.Max {
				shield.Current = shield.Max
			}
		}

		if enemy.HealRadius > 0 {
			s.healNearby(id, enemy.HealRadius, enemy.HealRate*deltaTime)
		}
	}
}

// healNearby лечит живых врагов в радиусе ауры. Сам лекарь себя не лечит.
func (s *EnemyAbilitySystem) healNearby(healerID types.EntityID, radius, amount float64) {
	healerPos, ok := s.ecs.Positions[healerID]
	if !ok {
		return
	}
	for id, other := range s.ecs.Enemies {
		if id == healerID || other.ReachedEnd {
			continue
		}
		health, hasHealth := s.ecs.Healths[id]
		if !hasHealth || health.Current <= 0 {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		if utils.Distance(healerPos.X, healerPos.Y, pos.X, pos.Y) <= radius {
			health.Current += amount
			if health.Current > health.Max {
				health.Current = health.Max
			}
		}
	}
}
