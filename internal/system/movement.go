// internal/system/movement.go
package system

import (
	"math"

	"grid-defense/internal/config"
	"grid-defense/internal/entity"
)

// MovementSystem продвигает врагов вдоль вейпоинтов карты.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, path := range s.ecs.PathFollows {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		enemy, isEnemy := s.ecs.Enemies[id]
		if isEnemy && enemy.ReachedEnd {
			continue
		}

		// Заморозка полностью останавливает, замедление умножает скорость.
		if _, frozen := s.ecs.FreezeEffects[id]; frozen {
			continue
		}
		currentSpeed := vel.Speed
		if slowEffect, isSlowed := s.ecs.SlowEffects[id]; isSlowed {
			currentSpeed *= slowEffect.Factor
		}

		moveDistance := currentSpeed * deltaTime

		// Остаток перемещения переносится на следующий сегмент пути,
		// чтобы скорость не терялась на поворотах.
		for moveDistance > 0 && path.Index < len(path.Waypoints) {
			tx, ty := path.Waypoints[path.Index].Center(config.CellSize)
			dx := tx - pos.X
			dy := ty - pos.Y
			dist := math.Hypot(dx, dy)

			if dist <= moveDistance {
				pos.X = tx
				pos.Y = ty
				path.Traveled += dist
				moveDistance -= dist
				path.Index++
			} else {
				pos.X += (dx / dist) * moveDistance
				pos.Y += (dy / dist) * moveDistance
				path.Traveled += moveDistance
				moveDistance = 0
			}
		}

		// Конец пути: враг прошёл, а не убит. Списание здоровья игрока
		// происходит в фазе cleanup.
		if path.Index >= len(path.Waypoints) && isEnemy {
			enemy.ReachedEnd = true
		}
	}
}
