// internal/system/combat.go
package system

import (
	"log"
	"math"

	"grid-defense/internal/component"
	"grid-defense/internal/defs"
	"grid-defense/internal/entity"
	"grid-defense/internal/types"
	"grid-defense/internal/utils"
)

// BoostProvider отдаёт глобальный множитель урона от активных способностей.
type BoostProvider interface {
	DamageMultiplier() float64
}

// CombatSystem управляет атакой башен: откаты, выбор цели, выстрелы
// и непрерывные лазерные лучи.
type CombatSystem struct {
	ecs    *entity.ECS
	boosts BoostProvider
}

func NewCombatSystem(ecs *entity.ECS, boosts BoostProvider) *CombatSystem {
	return &CombatSystem{ecs: ecs, boosts: boosts}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for id, combat := range s.ecs.Combats {
		tower, hasTower := s.ecs.Towers[id]
		if !hasTower {
			continue
		}
		towerDef, ok := defs.TowerLibrary[tower.DefID]
		if !ok {
			log.Printf("CombatSystem: no tower definition for %q", tower.DefID)
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		// Лазер: урон каждый тик, пока цель в радиусе, без отката.
		if towerDef.Beam {
			s.updateBeam(id, pos, combat, deltaTime, tower.Targeting)
			continue
		}

		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime
			continue
		}

		targetID, found := s.SelectTarget(pos, combat.Range, tower.Targeting)
		if !found {
			continue
		}

		s.fire(id, targetID, &towerDef, combat)
		combat.FireCooldown = 1.0 / combat.FireRate
	}
}

func (s *CombatSystem) updateBeam(towerID types.EntityID, pos *component.Position, combat *component.Combat, deltaTime float64, mode defs.TargetingMode) {
	targetID, found := s.SelectTarget(pos, combat.Range, mode)
	if !found {
		delete(s.ecs.Beams, towerID)
		return
	}
	damage := combat.Damage * combat.DamageBuff * s.boosts.DamageMultiplier() * deltaTime
	ApplyDamage(s.ecs, targetID, damage)
	s.ecs.Beams[towerID] = &component.Beam{TargetID: targetID}
}

// fire создаёт снаряд. Точка попадания захватывается в момент выстрела:
// снаряд летит в неё и не преследует цель.
func (s *CombatSystem) fire(towerID, targetID types.EntityID, towerDef *defs.TowerDefinition, combat *component.Combat) {
	towerPos := s.ecs.Positions[towerID]
	targetPos := s.ecs.Positions[targetID]
	if towerPos == nil || targetPos == nil {
		return
	}

	projID := s.ecs.NewEntity()
	proj := &component.Projectile{
		SourceID:  towerID,
		TargetID:  targetID,
		TargetX:   targetPos.X,
		TargetY:   targetPos.Y,
		Speed:     towerDef.ProjectileSpeed,
		Damage:    combat.Damage * combat.DamageBuff * s.boosts.DamageMultiplier(),
		Direction: math.Atan2(targetPos.Y-towerPos.Y, targetPos.X-towerPos.X),
		Status:    towerDef.Status,
		Color:     towerDef.Visuals.Color.RGBA,
	}
	if towerDef.Splash != nil {
		proj.SplashRadius = towerDef.Splash.Radius
	}
	if towerDef.Chain != nil {
		proj.ChainCount = towerDef.Chain.Count
		proj.ChainReduction = towerDef.Chain.Reduction
	}

	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = proj
}

// SelectTarget выбирает одну цель среди живых врагов в радиусе согласно
// режиму прицеливания. Ничьи разрешаются порядком появления: раньше
// заспавненный враг побеждает.
func (s *CombatSystem) SelectTarget(pos *component.Position, rangeRadius float64, mode defs.TargetingMode) (types.EntityID, bool) {
	var (
		bestID    types.EntityID
		bestKey   float64
		bestSeq   uint64
		havePick  bool
	)

	// better решает, приоритетнее ли key нового кандидата.
	var better func(key, best float64) bool
	switch mode {
	case defs.TargetLast, defs.TargetClosest, defs.TargetWeakest:
		better = func(key, best float64) bool { return key < best }
	default: // FURTHEST, FIRST, STRONGEST и пустой режим
		better = func(key, best float64) bool { return key > best }
	}

	for id, enemy := range s.ecs.Enemies {
		if enemy.ReachedEnd {
			continue
		}
		health, hasHealth := s.ecs.Healths[id]
		if !hasHealth || health.Current <= 0 {
			continue
		}
		enemyPos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		dist := utils.Distance(pos.X, pos.Y, enemyPos.X, enemyPos.Y)
		if dist > rangeRadius {
			continue
		}

		var key float64
		switch mode {
		case defs.TargetClosest:
			key = dist
		case defs.TargetStrongest, defs.TargetWeakest:
			key = health.Current
		case defs.TargetLast:
			key = pathProgress(s.ecs, id)
		default:
			key = pathProgress(s.ecs, id)
		}

		if !havePick || better(key, bestKey) || (key == bestKey && enemy.SpawnSeq < bestSeq) {
			bestID = id
			bestKey = key
			bestSeq = enemy.SpawnSeq
			havePick = true
		}
	}
	return bestID, havePick
}

func pathProgress(ecs *entity.ECS, id types.EntityID) float64 {
	if path, ok := ecs.PathFollows[id]; ok {
		return path.Progress()
	}
	return 0
}
