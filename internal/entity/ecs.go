// internal/entity/ecs.go
package entity

import (
	"grid-defense/internal/component"
	"grid-defense/internal/config"
	"grid-defense/internal/types"
)

// ECS хранит все компоненты игры в картах по идентификатору сущности.
// Все коллекции мутируются только внутри границ тика, в фиксированном
// порядке подсистем.
type ECS struct {
	GameTime  float64
	NextID    types.EntityID
	SpawnSeq  uint64 // сквозной счётчик появившихся врагов

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	PathFollows   map[types.EntityID]*component.PathFollow
	Healths       map[types.EntityID]*component.Health
	Shields       map[types.EntityID]*component.Shield
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Towers        map[types.EntityID]*component.Tower
	Combats       map[types.EntityID]*component.Combat
	SupportAuras  map[types.EntityID]*component.SupportAura
	Projectiles   map[types.EntityID]*component.Projectile
	Beams         map[types.EntityID]*component.Beam
	SlowEffects   map[types.EntityID]*component.SlowEffect
	PoisonEffects map[types.EntityID]*component.PoisonEffect
	BurnEffects   map[types.EntityID]*component.BurnEffect
	FreezeEffects map[types.EntityID]*component.FreezeEffect
	LineRenders   map[types.EntityID]*component.LineRender

	Wave   *component.Wave
	Player *component.PlayerState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		PathFollows:   make(map[types.EntityID]*component.PathFollow),
		Healths:       make(map[types.EntityID]*component.Health),
		Shields:       make(map[types.EntityID]*component.Shield),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Towers:        make(map[types.EntityID]*component.Tower),
		Combats:       make(map[types.EntityID]*component.Combat),
		SupportAuras:  make(map[types.EntityID]*component.SupportAura),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Beams:         make(map[types.EntityID]*component.Beam),
		SlowEffects:   make(map[types.EntityID]*component.SlowEffect),
		PoisonEffects: make(map[types.EntityID]*component.PoisonEffect),
		BurnEffects:   make(map[types.EntityID]*component.BurnEffect),
		FreezeEffects: make(map[types.EntityID]*component.FreezeEffect),
		LineRenders:   make(map[types.EntityID]*component.LineRender),
		Wave:          nil,
		Player: &component.PlayerState{
			Health: config.StartingHealth,
			Money:  config.StartingMoney,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех карт компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.PathFollows, id)
	delete(ecs.Healths, id)
	delete(ecs.Shields, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.SupportAuras, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Beams, id)
	delete(ecs.SlowEffects, id)
	delete(ecs.PoisonEffects, id)
	delete(ecs.BurnEffects, id)
	delete(ecs.FreezeEffects, id)
	delete(ecs.LineRenders, id)
}
