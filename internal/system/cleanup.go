// internal/system/cleanup.go
package system

import (
	"grid-defense/internal/entity"
	"grid-defense/internal/event"
)

// RewardProvider отдаёт множитель наград от активных способностей.
type RewardProvider interface {
	MoneyMultiplier() float64
}

// CleanupSystem — единственное место, где меняются деньги, счёт и здоровье
// игрока. Убирает мёртвых и дошедших до базы врагов, гасит протухшие лучи
// и линии молний, объявляет конец игры.
type CleanupSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rewards         RewardProvider
}

func NewCleanupSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rewards RewardProvider) *CleanupSystem {
	return &CleanupSystem{ecs: ecs, eventDispatcher: eventDispatcher, rewards: rewards}
}

func (s *CleanupSystem) Update(deltaTime float64) {
	for id, line := range s.ecs.LineRenders {
		line.TTL -= deltaTime
		if line.TTL <= 0 {
			s.ecs.RemoveEntity(id)
		}
	}

	for id, enemy := range s.ecs.Enemies {
		if enemy.ReachedEnd {
			s.ecs.Player.Health--
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: enemy.DefID})
			s.ecs.RemoveEntity(id)
			continue
		}
		health, ok := s.ecs.Healths[id]
		if !ok || health.Current > 0 {
			continue
		}
		reward := int(float64(enemy.Reward) * s.rewards.MoneyMultiplier())
		s.ecs.Player.Money += reward
		s.ecs.Player.Score += enemy.Reward
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyKilledData{DefID: enemy.DefID, Reward: reward, Boss: enemy.Boss},
		})
		s.ecs.RemoveEntity(id)
	}

	// Лучи на убранные цели снимаются сразу, чтобы рендер не рисовал
	// выстрел в пустоту.
	for towerID, beam := range s.ecs.Beams {
		if _, alive := s.ecs.Enemies[beam.TargetID]; !alive {
			delete(s.ecs.Beams, towerID)
		}
	}

	if s.ecs.Player.Health <= 0 && !s.ecs.Player.GameOver {
		s.ecs.Player.GameOver = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: s.ecs.Player.Score})
	}
}
