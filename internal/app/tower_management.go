// internal/app/tower_management.go
package app

import (
	"math"

	"grid-defense/internal/component"
	"grid-defense/internal/config"
	"grid-defense/internal/defs"
	"grid-defense/internal/event"
	"grid-defense/internal/types"
	"grid-defense/pkg/gridmap"
)

// PlaceTower строит башню указанного типа в клетке. Клетка должна быть
// строительной и свободной, денег должно хватать.
func (g *Game) PlaceTower(defID string, cell gridmap.Cell) (types.EntityID, error) {
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		return 0, ErrUnknownTowerType
	}
	if !g.Grid.InBounds(cell) || !g.Grid.IsBuildable(cell) {
		return 0, ErrNotBuildable
	}
	if _, occupied := g.TowerAt(cell); occupied {
		return 0, ErrCellOccupied
	}
	if g.ECS.Player.Money < def.Cost {
		return 0, ErrInsufficientFunds
	}

	g.ECS.Player.Money -= def.Cost
	id := g.createTowerEntity(&def, cell)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerEventData{DefID: defID, Cost: def.Cost},
	})
	return id, nil
}

// UpgradeTower поднимает башню на уровень. Стоимость растёт геометрически
// от базовой цены, характеристики умножаются на свои множители.
func (g *Game) UpgradeTower(id types.EntityID) error {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return ErrNoSuchTower
	}
	if tower.Level >= config.MaxUpgradeLevel {
		return ErrMaxLevel
	}

	def := defs.TowerLibrary[tower.DefID]
	cost := UpgradeCost(def.Cost, tower.Level)
	if g.ECS.Player.Money < cost {
		return ErrInsufficientFunds
	}

	g.ECS.Player.Money -= cost
	tower.Level++
	tower.TotalSpent += cost

	if combat, hasCombat := g.ECS.Combats[id]; hasCombat {
		combat.Damage *= config.UpgradeDamageFactor
		combat.Range *= config.UpgradeRangeFactor
		combat.FireRate *= config.UpgradeFireRateFactor
	}
	if aura, hasAura := g.ECS.SupportAuras[id]; hasAura {
		aura.Radius *= config.UpgradeRangeFactor
		aura.DamageBonus *= config.UpgradeDamageFactor
	}

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.TowerEventData{DefID: tower.DefID, Cost: cost},
	})
	return nil
}

// SellTower сносит башню и возвращает часть всех вложенных в неё денег.
func (g *Game) SellTower(id types.EntityID) error {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return ErrNoSuchTower
	}

	refund := int(config.SellRefundFactor * float64(tower.TotalSpent))
	g.ECS.Player.Money += refund
	defID := tower.DefID
	g.ECS.RemoveEntity(id)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerSold,
		Data: event.TowerEventData{DefID: defID, Cost: refund},
	})
	return nil
}

// SetTargeting переключает режим прицеливания башни.
func (g *Game) SetTargeting(id types.EntityID, mode defs.TargetingMode) error {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return ErrNoSuchTower
	}
	tower.Targeting = mode
	return nil
}

// TowerAt возвращает башню, стоящую в клетке, если она есть.
func (g *Game) TowerAt(cell gridmap.Cell) (types.EntityID, bool) {
	for id, tower := range g.ECS.Towers {
		if tower.Cell == cell {
			return id, true
		}
	}
	return 0, false
}

// UpgradeCost — цена апгрейда с уровня level (первый уровень — 1).
func UpgradeCost(baseCost, level int) int {
	return int(float64(baseCost) * math.Pow(config.UpgradeCostMultiplier, float64(level)))
}

func (g *Game) createTowerEntity(def *defs.TowerDefinition, cell gridmap.Cell) types.EntityID {
	id := g.ECS.NewEntity()
	x, y := cell.Center(config.CellSize)
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &component.Tower{
		DefID:      def.ID,
		Cell:       cell,
		Level:      1,
		TotalSpent: def.Cost,
		Targeting:  def.Targeting,
	}

	if def.Support != nil {
		// Башня поддержки не стреляет: вместо Combat у неё аура.
		g.ECS.SupportAuras[id] = &component.SupportAura{
			Radius:      def.Support.Radius,
			DamageBonus: def.Support.DamageBonus,
		}
	} else {
		g.ECS.Combats[id] = &component.Combat{
			Damage:     def.Damage,
			Range:      def.Range,
			FireRate:   def.FireRate,
			DamageBuff: 1.0,
		}
	}

	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color.RGBA,
		Radius:    def.Visuals.Radius,
		HasStroke: true,
	}
	return id
}
