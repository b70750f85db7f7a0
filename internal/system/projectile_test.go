package system

import (
	"testing"

	"grid-defense/internal/component"
	"grid-defense/internal/defs"
	"grid-defense/internal/entity"
	"grid-defense/internal/types"
)

func addProjectile(ecs *entity.ECS, proj *component.Projectile, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Projectiles[id] = proj
	return id
}

func TestProjectileFliesAndHits(t *testing.T) {
	ecs := entity.NewECS()
	enemyID := addEnemy(ecs, 100, 0, 50)
	projID := addProjectile(ecs, &component.Projectile{
		TargetID: enemyID,
		TargetX:  100, TargetY: 0,
		Speed:  400,
		Damage: 10,
	}, 0, 0)

	ps := NewProjectileSystem(ecs)
	ps.Update(0.1) // 40px — ещё летит
	if _, alive := ecs.Projectiles[projID]; !alive {
		t.Fatal("projectile must still be in flight")
	}
	ps.Update(0.1)
	ps.Update(0.1) // 120px > 100 — попадание
	if _, alive := ecs.Projectiles[projID]; alive {
		t.Fatal("projectile must be consumed on impact")
	}
	if got := ecs.Healths[enemyID].Current; got != 40 {
		t.Errorf("health = %v, want 40", got)
	}
}

func TestShotIsWastedWhenTargetDies(t *testing.T) {
	ecs := entity.NewECS()
	enemyID := addEnemy(ecs, 10, 0, 50)
	bystanderID := addEnemy(ecs, 12, 0, 50)
	projID := addProjectile(ecs, &component.Projectile{
		TargetID: enemyID,
		TargetX:  10, TargetY: 0,
		Speed:  400,
		Damage: 10,
	}, 0, 0)

	// Цель умирает до прилёта: выстрел пропадает, соседям не достаётся.
	ecs.RemoveEntity(enemyID)
	ps := NewProjectileSystem(ecs)
	ps.Update(0.1)

	if _, alive := ecs.Projectiles[projID]; alive {
		t.Fatal("projectile must be consumed even on a wasted shot")
	}
	if got := ecs.Healths[bystanderID].Current; got != 50 {
		t.Errorf("bystander health = %v, want untouched 50", got)
	}
}

func TestSplashHitsAreaRegardlessOfTarget(t *testing.T) {
	ecs := entity.NewECS()
	targetID := addEnemy(ecs, 10, 0, 50)
	nearID := addEnemy(ecs, 40, 0, 50)  // 30px от точки взрыва
	farID := addEnemy(ecs, 200, 0, 50)  // вне радиуса
	projID := addProjectile(ecs, &component.Projectile{
		TargetID: targetID,
		TargetX:  10, TargetY: 0,
		Speed:        400,
		Damage:       15,
		SplashRadius: 60,
	}, 0, 0)

	// Даже по умершей цели площадной снаряд детонирует в точке.
	ecs.RemoveEntity(targetID)
	ps := NewProjectileSystem(ecs)
	ps.Update(0.1)

	if _, alive := ecs.Projectiles[projID]; alive {
		t.Fatal("projectile must detonate")
	}
	if got := ecs.Healths[nearID].Current; got != 35 {
		t.Errorf("near enemy health = %v, want 35", got)
	}
	if got := ecs.Healths[farID].Current; got != 50 {
		t.Errorf("far enemy health = %v, want untouched 50", got)
	}
}

func TestChainLightningHops(t *testing.T) {
	ecs := entity.NewECS()
	targetID := addEnemy(ecs, 10, 0, 100)
	hop1 := addEnemy(ecs, 60, 0, 100)  // 50px от цели
	hop2 := addEnemy(ecs, 160, 0, 100) // 100px от первого прыжка
	tooFar := addEnemy(ecs, 400, 0, 100)
	addProjectile(ecs, &component.Projectile{
		TargetID: targetID,
		TargetX:  10, TargetY: 0,
		Speed:          400,
		Damage:         20,
		ChainCount:     3,
		ChainReduction: 0.5,
	}, 0, 0)

	ps := NewProjectileSystem(ecs)
	ps.Update(0.1)

	if got := ecs.Healths[targetID].Current; got != 80 {
		t.Errorf("primary target health = %v, want 80", got)
	}
	if got := ecs.Healths[hop1].Current; got != 90 {
		t.Errorf("first hop health = %v, want 90 (half damage)", got)
	}
	if got := ecs.Healths[hop2].Current; got != 95 {
		t.Errorf("second hop health = %v, want 95 (quarter damage)", got)
	}
	if got := ecs.Healths[tooFar].Current; got != 100 {
		t.Errorf("distant enemy health = %v, want untouched", got)
	}
	if len(ecs.LineRenders) != 2 {
		t.Errorf("line flashes = %d, want 2", len(ecs.LineRenders))
	}
}

func TestProjectileAppliesStatusOnHit(t *testing.T) {
	ecs := entity.NewECS()
	enemyID := addEnemy(ecs, 10, 0, 100)
	addProjectile(ecs, &component.Projectile{
		TargetID: enemyID,
		TargetX:  10, TargetY: 0,
		Speed:  400,
		Damage: 5,
		Status: &defs.StatusPayload{Kind: defs.StatusSlow, Duration: 2, Magnitude: 0.5},
	}, 0, 0)

	ps := NewProjectileSystem(ecs)
	ps.Update(0.1)
	if _, slowed := ecs.SlowEffects[enemyID]; !slowed {
		t.Error("hit must apply the slow status")
	}
}
