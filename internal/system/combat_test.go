package system

import (
	"testing"

	"grid-defense/internal/component"
	"grid-defense/internal/defs"
	"grid-defense/internal/entity"
	"grid-defense/internal/types"
)

func TestTowerFiresOnCooldown(t *testing.T) {
	ecs := entity.NewECS()
	addTower(ecs, "basic", 0, 0, 10, 120, 1.0)
	addEnemy(ecs, 50, 0, 1000)
	cs := NewCombatSystem(ecs, noBoost{})

	cs.Update(0.25)
	if got := len(ecs.Projectiles); got != 1 {
		t.Fatalf("projectiles = %d, want 1 immediately", got)
	}

	// Откат 1с при шаге 0.25с: следующий выстрел на шестом тике.
	for i := 0; i < 4; i++ {
		cs.Update(0.25)
		if got := len(ecs.Projectiles); got != 1 {
			t.Fatalf("projectiles = %d during cooldown, want 1", got)
		}
	}
	cs.Update(0.25)
	if got := len(ecs.Projectiles); got != 2 {
		t.Errorf("projectiles = %d after cooldown, want 2", got)
	}
}

func TestNoShotWithoutTargetInRange(t *testing.T) {
	ecs := entity.NewECS()
	addTower(ecs, "basic", 0, 0, 10, 120, 1.0)
	addEnemy(ecs, 500, 0, 100)
	cs := NewCombatSystem(ecs, noBoost{})

	cs.Update(0.25)
	if len(ecs.Projectiles) != 0 {
		t.Error("tower must not fire at targets out of range")
	}
}

func TestProjectileCapturesImpactPoint(t *testing.T) {
	ecs := entity.NewECS()
	addTower(ecs, "basic", 0, 0, 10, 120, 1.0)
	id := addEnemy(ecs, 80, 0, 100)
	cs := NewCombatSystem(ecs, noBoost{})

	cs.Update(0.25)
	for _, proj := range ecs.Projectiles {
		if proj.TargetX != 80 || proj.TargetY != 0 {
			t.Errorf("impact point = (%v, %v), want (80, 0)", proj.TargetX, proj.TargetY)
		}
		if proj.TargetID != id {
			t.Errorf("target id = %d, want %d", proj.TargetID, id)
		}
	}
}

func TestTargetingModes(t *testing.T) {
	ecs := entity.NewECS()
	towerPos := &component.Position{X: 0, Y: 0}

	near := addEnemy(ecs, 50, 0, 100) // ближе, здоровее, в начале пути
	far := addEnemy(ecs, 80, 0, 40)   // дальше по пути, слабее
	ecs.PathFollows[near] = &component.PathFollow{Total: 100, Traveled: 20}
	ecs.PathFollows[far] = &component.PathFollow{Total: 100, Traveled: 80}

	cs := NewCombatSystem(ecs, noBoost{})
	cases := []struct {
		mode defs.TargetingMode
		want types.EntityID
	}{
		{defs.TargetFurthest, far},
		{defs.TargetFirst, far},
		{defs.TargetLast, near},
		{defs.TargetClosest, near},
		{defs.TargetStrongest, near},
		{defs.TargetWeakest, far},
		{defs.TargetingMode(""), far}, // по умолчанию FURTHEST
	}
	for _, tc := range cases {
		got, found := cs.SelectTarget(towerPos, 200, tc.mode)
		if !found {
			t.Errorf("%q: no target found", tc.mode)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: target = %d, want %d", tc.mode, got, tc.want)
		}
	}
}

func TestTargetingTieBreaksBySpawnOrder(t *testing.T) {
	ecs := entity.NewECS()
	first := addEnemy(ecs, 50, 0, 100)
	second := addEnemy(ecs, 0, 50, 100) // та же дистанция и здоровье
	_ = second

	cs := NewCombatSystem(ecs, noBoost{})
	got, found := cs.SelectTarget(&component.Position{}, 200, defs.TargetClosest)
	if !found || got != first {
		t.Errorf("tie must resolve to earliest spawn, got %d want %d", got, first)
	}
}

func TestBeamTowerDealsContinuousDamage(t *testing.T) {
	ecs := entity.NewECS()
	towerID := addTower(ecs, "laser", 0, 0, 60, 150, 0)
	enemyID := addEnemy(ecs, 100, 0, 100)
	cs := NewCombatSystem(ecs, noBoost{})

	cs.Update(0.5)
	if got := ecs.Healths[enemyID].Current; got != 70 {
		t.Errorf("health = %v, want 70 after 0.5s of 60 dps", got)
	}
	if len(ecs.Projectiles) != 0 {
		t.Error("beam tower must not spawn projectiles")
	}
	if beam, ok := ecs.Beams[towerID]; !ok || beam.TargetID != enemyID {
		t.Error("beam component must track the current target")
	}
}

func TestBeamDropsWhenTargetLeavesRange(t *testing.T) {
	ecs := entity.NewECS()
	towerID := addTower(ecs, "laser", 0, 0, 60, 150, 0)
	enemyID := addEnemy(ecs, 100, 0, 100)
	cs := NewCombatSystem(ecs, noBoost{})

	cs.Update(0.1)
	ecs.Positions[enemyID].X = 500
	cs.Update(0.1)
	if _, ok := ecs.Beams[towerID]; ok {
		t.Error("beam must drop once the target is out of range")
	}
}

func TestSupportAuraBuffsTowersInRadius(t *testing.T) {
	ecs := entity.NewECS()
	auraID := ecs.NewEntity()
	ecs.Positions[auraID] = &component.Position{X: 0, Y: 0}
	ecs.SupportAuras[auraID] = &component.SupportAura{Radius: 120, DamageBonus: 0.3}

	inRange := addTower(ecs, "basic", 100, 0, 10, 120, 1.0)
	outOfRange := addTower(ecs, "basic", 300, 0, 10, 120, 1.0)

	ss := NewSupportSystem(ecs)
	ss.Update(0.1)
	if got := ecs.Combats[inRange].DamageBuff; got != 1.3 {
		t.Errorf("buff = %v, want 1.3", got)
	}
	if got := ecs.Combats[outOfRange].DamageBuff; got != 1.0 {
		t.Errorf("buff = %v, want 1.0 outside the aura", got)
	}

	// Баф пересчитывается с нуля: после удаления ауры он исчезает.
	ecs.RemoveEntity(auraID)
	ss.Update(0.1)
	if got := ecs.Combats[inRange].DamageBuff; got != 1.0 {
		t.Errorf("buff = %v, want 1.0 after the aura is gone", got)
	}
}

func TestStackedAurasMultiply(t *testing.T) {
	ecs := entity.NewECS()
	for i := 0; i < 2; i++ {
		auraID := ecs.NewEntity()
		ecs.Positions[auraID] = &component.Position{X: float64(i) * 10, Y: 0}
		ecs.SupportAuras[auraID] = &component.SupportAura{Radius: 120, DamageBonus: 0.3}
	}
	towerID := addTower(ecs, "basic", 50, 0, 10, 120, 1.0)

	ss := NewSupportSystem(ecs)
	ss.Update(0.1)
	got := ecs.Combats[towerID].DamageBuff
	if got < 1.689 || got > 1.691 {
		t.Errorf("buff = %v, want 1.69 from two stacked auras", got)
	}
}

func TestBasicTowerKillsInFiveShots(t *testing.T) {
	ecs := entity.NewECS()
	addTower(ecs, "basic", 0, 0, 10, 120, 1.0)
	enemyID := addEnemy(ecs, 60, 0, 50)

	cs := NewCombatSystem(ecs, noBoost{})
	ps := NewProjectileSystem(ecs)

	// Выстрелы на тиках 0, 5, 10, 15, 20; каждый снаряд долетает в тот же
	// тик (60px при шаге 120px). Четыре попадания оставляют 10 здоровья.
	for i := 0; i < 20; i++ {
		cs.Update(0.25)
		ps.Update(0.25)
	}
	if got := ecs.Healths[enemyID].Current; got != 10 {
		t.Fatalf("health after 4 hits = %v, want 10", got)
	}
	cs.Update(0.25)
	ps.Update(0.25)
	if got := ecs.Healths[enemyID].Current; got != 0 {
		t.Errorf("health after 5 hits = %v, want 0", got)
	}
}

func TestBuffedDamageOnProjectile(t *testing.T) {
	ecs := entity.NewECS()
	towerID := addTower(ecs, "basic", 0, 0, 10, 120, 1.0)
	ecs.Combats[towerID].DamageBuff = 1.5
	addEnemy(ecs, 50, 0, 100)

	cs := NewCombatSystem(ecs, noBoost{})
	cs.Update(0.1)
	for _, proj := range ecs.Projectiles {
		if proj.Damage != 15 {
			t.Errorf("projectile damage = %v, want 15 with buff applied", proj.Damage)
		}
	}
}
