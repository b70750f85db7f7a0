package system

import (
	"testing"

	"grid-defense/internal/component"
	"grid-defense/internal/entity"
)

func TestRegenCapsAtMaxHealth(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, 0, 0, 100)
	ecs.Healths[id].Current = 95
	ecs.Enemies[id].Regen = 10

	eas := NewEnemyAbilitySystem(ecs)
	eas.Update(1.0)
	if got := ecs.Healths[id].Current; got != 100 {
		t.Errorf("health = %v, want capped at 100", got)
	}
}

func TestShieldRegenerates(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, 0, 0, 100)
	ecs.Shields[id] = &component.Shield{Current: 10, Max: 40, Regen: 5}

	eas := NewEnemyAbilitySystem(ecs)
	eas.Update(2.0)
	if got := ecs.Shields[id].Current; got != 20 {
		t.Errorf("shield = %v, want 20", got)
	}
}

func TestHealerAuraHealsOthersNotSelf(t *testing.T) {
	ecs := entity.NewECS()
	healer := addEnemy(ecs, 0, 0, 100)
	ecs.Healths[healer].Current = 50
	ecs.Enemies[healer].HealRadius = 80
	ecs.Enemies[healer].HealRate = 10

	wounded := addEnemy(ecs, 50, 0, 100)
	ecs.Healths[wounded].Current = 50
	distant := addEnemy(ecs, 300, 0, 100)
	ecs.Healths[distant].Current = 50

	eas := NewEnemyAbilitySystem(ecs)
	eas.Update(1.0)
	if got := ecs.Healths[wounded].Current; got != 60 {
		t.Errorf("wounded health = %v, want 60", got)
	}
	if got := ecs.Healths[healer].Current; got != 50 {
		t.Errorf("healer health = %v, healer must not heal itself", got)
	}
	if got := ecs.Healths[distant].Current; got != 50 {
		t.Errorf("distant health = %v, want untouched outside the aura", got)
	}
}
