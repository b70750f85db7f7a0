// internal/system/ability.go
package system

import (
	"grid-defense/internal/config"
	"grid-defense/internal/defs"
	"grid-defense/internal/entity"
)

// AbilityState — состояние одной способности: откат и остаток действия.
type AbilityState struct {
	Def          defs.AbilityDefinition
	CooldownLeft float64
	ActiveLeft   float64
}

// Active сообщает, действует ли временный эффект способности.
func (a *AbilityState) Active() bool {
	return a.ActiveLeft > 0
}

// Ready сообщает, готова ли способность к использованию.
func (a *AbilityState) Ready() bool {
	return a.CooldownLeft <= 0
}

// AbilitySystem управляет специальными способностями игрока: авиаудар,
// общая заморозка, бусты денег и урона, ремонт базы.
type AbilitySystem struct {
	ecs       *entity.ECS
	abilities map[defs.AbilityKind]*AbilityState
}

func NewAbilitySystem(ecs *entity.ECS) *AbilitySystem {
	abilities := make(map[defs.AbilityKind]*AbilityState, len(defs.AbilityTable))
	for kind, def := range defs.AbilityTable {
		abilities[kind] = &AbilityState{Def: def}
	}
	return &AbilitySystem{ecs: ecs, abilities: abilities}
}

func (s *AbilitySystem) Update(deltaTime float64) {
	for _, state := range s.abilities {
		if state.CooldownLeft > 0 {
			state.CooldownLeft -= deltaTime
		}
		if state.ActiveLeft > 0 {
			state.ActiveLeft -= deltaTime
		}
	}
}

// State возвращает состояние способности (для панели UI).
func (s *AbilitySystem) State(kind defs.AbilityKind) (*AbilityState, bool) {
	state, ok := s.abilities[kind]
	return state, ok
}

// Activate применяет способность. Проверка денег — на стороне вызывающего;
// здесь только эффект и запуск отката.
func (s *AbilitySystem) Activate(kind defs.AbilityKind, targetX, targetY float64) bool {
	state, ok := s.abilities[kind]
	if !ok || !state.Ready() {
		return false
	}

	switch kind {
	case defs.AbilityAirstrike:
		s.applyAirstrike(targetX, targetY, state.Def)
	case defs.AbilityFreezeAll:
		s.applyFreezeAll(state.Def.Duration)
		state.ActiveLeft = state.Def.Duration
	case defs.AbilityCashBoost, defs.AbilityDamageBoost:
		state.ActiveLeft = state.Def.Duration
	case defs.AbilityHealthRestore:
		s.ecs.Player.Health += state.Def.Restore
		if s.ecs.Player.Health > config.StartingHealth {
			s.ecs.Player.Health = config.StartingHealth
		}
	}

	state.CooldownLeft = state.Def.Cooldown
	return true
}

func (s *AbilitySystem) applyAirstrike(x, y float64, def defs.AbilityDefinition) {
	for id, enemy := range s.ecs.Enemies {
		if enemy.ReachedEnd {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		dx := pos.X - x
		dy := pos.Y - y
		if dx*dx+dy*dy <= def.Radius*def.Radius {
			ApplyDamage(s.ecs, id, def.Damage)
		}
	}
}

func (s *AbilitySystem) applyFreezeAll(duration float64) {
	payload := &defs.StatusPayload{Kind: defs.StatusFreeze, Duration: duration}
	for id := range s.ecs.Enemies {
		ApplyStatus(s.ecs, id, payload)
	}
}

// DamageMultiplier — глобальный множитель урона башен.
func (s *AbilitySystem) DamageMultiplier() float64 {
	if state, ok := s.abilities[defs.AbilityDamageBoost]; ok && state.Active() {
		return state.Def.Multiplier
	}
	return 1.0
}

// MoneyMultiplier — глобальный множитель наград за убийства.
func (s *AbilitySystem) MoneyMultiplier() float64 {
	if state, ok := s.abilities[defs.AbilityCashBoost]; ok && state.Active() {
		return state.Def.Multiplier
	}
	return 1.0
}
