package system

import (
	"math"
	"testing"

	"grid-defense/internal/component"
	"grid-defense/internal/defs"
	"grid-defense/internal/entity"
)

func TestApplyStatusRefreshesInsteadOfStacking(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, 0, 0, 100)
	ses := NewStatusEffectSystem(ecs)

	ApplyStatus(ecs, id, &defs.StatusPayload{Kind: defs.StatusSlow, Duration: 2, Magnitude: 0.5})
	ses.Update(1.0)
	if got := ecs.SlowEffects[id].Timer; got != 1 {
		t.Fatalf("timer = %v, want 1", got)
	}

	// Повторное наложение обновляет и таймер, и магнитуду.
	ApplyStatus(ecs, id, &defs.StatusPayload{Kind: defs.StatusSlow, Duration: 2, Magnitude: 0.3})
	effect := ecs.SlowEffects[id]
	if effect.Timer != 2 {
		t.Errorf("timer = %v, want refreshed to 2", effect.Timer)
	}
	if math.Abs(effect.Factor-0.7) > 1e-9 {
		t.Errorf("factor = %v, want 0.7", effect.Factor)
	}
}

func TestGhostIgnoresSlowAndFreezeButNotPoison(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, 0, 0, 100)
	ecs.Enemies[id].SlowImmune = true

	ApplyStatus(ecs, id, &defs.StatusPayload{Kind: defs.StatusSlow, Duration: 2, Magnitude: 0.5})
	ApplyStatus(ecs, id, &defs.StatusPayload{Kind: defs.StatusFreeze, Duration: 2})
	if _, slowed := ecs.SlowEffects[id]; slowed {
		t.Error("ghost must ignore slow")
	}
	if _, frozen := ecs.FreezeEffects[id]; frozen {
		t.Error("ghost must ignore freeze")
	}

	ApplyStatus(ecs, id, &defs.StatusPayload{Kind: defs.StatusPoison, Duration: 2, Magnitude: 10})
	if _, poisoned := ecs.PoisonEffects[id]; !poisoned {
		t.Error("ghost must still be poisonable")
	}
}

func TestPoisonDealsDamageOverTime(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, 0, 0, 100)
	ses := NewStatusEffectSystem(ecs)

	ApplyStatus(ecs, id, &defs.StatusPayload{Kind: defs.StatusPoison, Duration: 3, Magnitude: 10})
	for i := 0; i < 4; i++ {
		ses.Update(1.0)
	}
	if got := ecs.Healths[id].Current; got != 70 {
		t.Errorf("health = %v, want 70 after 3s of 10 dps", got)
	}
	if _, still := ecs.PoisonEffects[id]; still {
		t.Error("poison must expire after its duration")
	}
}

func TestBurnPartialTick(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, 0, 0, 100)
	ses := NewStatusEffectSystem(ecs)

	// Полсекунды горения при тике в секунду: урон только за остаток.
	ApplyStatus(ecs, id, &defs.StatusPayload{Kind: defs.StatusBurn, Duration: 0.5, Magnitude: 10})
	ses.Update(1.0)
	if got := ecs.Healths[id].Current; got != 95 {
		t.Errorf("health = %v, want 95", got)
	}
}

func TestPoisonAndBurnAreIndependent(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, 0, 0, 100)
	ses := NewStatusEffectSystem(ecs)

	ApplyStatus(ecs, id, &defs.StatusPayload{Kind: defs.StatusPoison, Duration: 1, Magnitude: 10})
	ApplyStatus(ecs, id, &defs.StatusPayload{Kind: defs.StatusBurn, Duration: 1, Magnitude: 15})
	ses.Update(1.0)
	if got := ecs.Healths[id].Current; got != 75 {
		t.Errorf("health = %v, want 75 with both dots ticking", got)
	}
}

func TestApplyDamageArmorAndShield(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, 0, 0, 100)
	ecs.Enemies[id].Armor = 0.5
	ecs.Shields[id] = &component.Shield{Current: 30, Max: 30}

	ApplyDamage(ecs, id, 100) // броня режет до 50, щит съедает 30
	if got := ecs.Shields[id].Current; got != 0 {
		t.Errorf("shield = %v, want 0", got)
	}
	if got := ecs.Healths[id].Current; got != 80 {
		t.Errorf("health = %v, want 80", got)
	}

	ApplyDamage(ecs, id, 1000)
	if got := ecs.Healths[id].Current; got != 0 {
		t.Errorf("health = %v, must clamp at 0", got)
	}
}
