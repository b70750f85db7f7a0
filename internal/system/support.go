// internal/system/support.go
package system

import (
	"grid-defense/internal/entity"
	"grid-defense/internal/utils"
)

// SupportSystem пересчитывает бафы башен поддержки. Баф не персистентный:
// каждый тик множители сбрасываются и собираются заново по текущему
// расположению башен, поэтому продажа башни поддержки снимает баф мгновенно.
type SupportSystem struct {
	ecs *entity.ECS
}

func NewSupportSystem(ecs *entity.ECS) *SupportSystem {
	return &SupportSystem{ecs: ecs}
}

func (s *SupportSystem) Update(deltaTime float64) {
	for _, combat := range s.ecs.Combats {
		combat.DamageBuff = 1.0
	}

	for auraID, aura := range s.ecs.SupportAuras {
		auraPos, ok := s.ecs.Positions[auraID]
		if !ok {
			continue
		}
		for towerID, combat := range s.ecs.Combats {
			if towerID == auraID {
				continue
			}
			pos, hasPos := s.ecs.Positions[towerID]
			if !hasPos {
				continue
			}
			if utils.Distance(auraPos.X, auraPos.Y, pos.X, pos.Y) <= aura.Radius {
				// Несколько аур перемножаются.
				combat.DamageBuff *= 1 + aura.DamageBonus
			}
		}
	}
}
