// internal/system/projectile.go
package system

import (
	"math"

	"grid-defense/internal/component"
	"grid-defense/internal/config"
	"grid-defense/internal/entity"
	"grid-defense/internal/types"
	"grid-defense/internal/utils"
)

// ProjectileSystem управляет движением снарядов и разрешением попаданий.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		dist := utils.Distance(pos.X, pos.Y, proj.TargetX, proj.TargetY)
		step := proj.Speed * deltaTime

		if dist <= step || dist < config.ProjectileHitRadius {
			s.resolveImpact(id, proj)
			continue
		}

		pos.X += math.Cos(proj.Direction) * step
		pos.Y += math.Sin(proj.Direction) * step
	}
}

// resolveImpact применяет урон снаряда в захваченной точке попадания.
// Одиночный выстрел по умершей или прошедшей цели пропадает впустую —
// снаряд не перенацеливается. Площадной взрыв происходит в любом случае.
func (s *ProjectileSystem) resolveImpact(projID types.EntityID, proj *component.Projectile) {
	if proj.SplashRadius > 0 {
		s.applySplash(proj)
	} else if s.targetAlive(proj.TargetID) {
		ApplyDamage(s.ecs, proj.TargetID, proj.Damage)
		ApplyStatus(s.ecs, proj.TargetID, proj.Status)
		if proj.ChainCount > 1 {
			s.applyChain(proj)
		}
	}
	s.ecs.RemoveEntity(projID)
}

func (s *ProjectileSystem) targetAlive(id types.EntityID) bool {
	enemy, isEnemy := s.ecs.Enemies[id]
	if !isEnemy || enemy.ReachedEnd {
		return false
	}
	health, hasHealth := s.ecs.Healths[id]
	return hasHealth && health.Current > 0
}

// applySplash наносит урон всем живым врагам в радиусе точки попадания —
// не только захваченной цели.
func (s *ProjectileSystem) applySplash(proj *component.Projectile) {
	for id, enemy := range s.ecs.Enemies {
		if enemy.ReachedEnd {
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
		if utils.Distance(proj.TargetX, proj.TargetY, pos.X, pos.Y) <= proj.SplashRadius {
			ApplyDamage(s.ecs, id, proj.Damage)
			ApplyStatus(s.ecs, id, proj.Status)
		}
	}
}

// applyChain прыгает молнией по ближайшим незадетым врагам, уменьшая урон
// с каждым прыжком.
func (s *ProjectileSystem) applyChain(proj *component.Projectile) {
	chained := map[types.EntityID]bool{proj.TargetID: true}
	currentX, currentY := proj.TargetX, proj.TargetY
	currentDamage := proj.Damage

	for hop := 1; hop < proj.ChainCount; hop++ {
		var nearestID types.EntityID
		nearestDist := math.MaxFloat64
		found := false

		for id := range s.ecs.Enemies {
			if chained[id] || !s.targetAlive(id) {
				continue
			}
			pos := s.ecs.Positions[id]
			if pos == nil {
				continue
			}
			d := utils.Distance(currentX, currentY, pos.X, pos.Y)
			if d <= config.ChainMaxHopDistance && d < nearestDist {
				nearestID = id
				nearestDist = d
				found = true
			}
		}
		if !found {
			break
		}

		currentDamage *= proj.ChainReduction
		ApplyDamage(s.ecs, nearestID, currentDamage)
		chained[nearestID] = true

		nextPos := s.ecs.Positions[nearestID]
		lineID := s.ecs.NewEntity()
		s.ecs.LineRenders[lineID] = &component.LineRender{
			StartX: currentX, StartY: currentY,
			EndX: nextPos.X, EndY: nextPos.Y,
			Color: config.ChainColor,
			TTL:   config.ChainFlashDuration,
		}
		currentX, currentY = nextPos.X, nextPos.Y
	}
}
