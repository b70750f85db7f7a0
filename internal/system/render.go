// internal/system/render.go
package system

import (
	"grid-defense/internal/config"
	"grid-defense/internal/entity"
	"grid-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// Лучи лазеров — под сущностями.
	for towerID, beam := range s.ecs.Beams {
		towerPos, hasTower := s.ecs.Positions[towerID]
		targetPos, hasTarget := s.ecs.Positions[beam.TargetID]
		if !hasTower || !hasTarget {
			continue
		}
		vector.StrokeLine(screen, float32(towerPos.X), float32(towerPos.Y), float32(targetPos.X), float32(targetPos.Y), 2.0, config.BeamColor, true)
	}

	// Сущности с Renderable: враги и башни.
	for id, render := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		if render.HasStroke {
			strokeRadius := render.Radius + 2
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), strokeRadius, config.TowerStrokeColor, true)
		}
		bodyColor := render.Color
		if _, frozen := s.ecs.FreezeEffects[id]; frozen {
			bodyColor = config.FreezeTintColor
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, bodyColor, true)
	}

	// Снаряды.
	for id, proj := range s.ecs.Projectiles {
		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), config.ProjectileRadius, proj.Color, true)
		}
	}

	// Полоски здоровья и щита над врагами.
	for id := range s.ecs.Enemies {
		s.drawHealthBar(screen, id)
	}

	// Линии цепных молний.
	for _, line := range s.ecs.LineRenders {
		vector.StrokeLine(screen, float32(line.StartX), float32(line.StartY), float32(line.EndX), float32(line.EndY), 2.0, line.Color, true)
	}
}

// drawHealthBar рисует полоску здоровья, а под ней, если есть щит, — полоску
// щита. Полный по здоровью враг без щита полоску не показывает.
func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, id types.EntityID) {
	pos, hasPos := s.ecs.Positions[id]
	health, hasHealth := s.ecs.Healths[id]
	render, hasRender := s.ecs.Renderables[id]
	if !hasPos || !hasHealth || !hasRender {
		return
	}
	shield, hasShield := s.ecs.Shields[id]
	if health.Current >= health.Max && !hasShield {
		return
	}

	width := float32(render.Radius) * 2
	x := float32(pos.X) - width/2
	y := float32(pos.Y) - render.Radius - 8

	ratio := float32(health.Current / health.Max)
	vector.DrawFilledRect(screen, x, y, width, config.HealthBarHeight, config.HealthBarBackColor, false)
	vector.DrawFilledRect(screen, x, y, width*ratio, config.HealthBarHeight, config.HealthBarFillColor, false)

	if hasShield && shield.Max > 0 {
		shieldRatio := float32(shield.Current / shield.Max)
		vector.DrawFilledRect(screen, x, y-config.HealthBarHeight-1, width*shieldRatio, config.HealthBarHeight, config.ShieldBarColor, false)
	}
}
