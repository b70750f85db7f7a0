// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"golang.org/x/image/font"

	"grid-defense/internal/progress"
)

// State — одно состояние оболочки игры: меню, партия, пауза, конец игры.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Context — то, что переживает смену состояний: шрифт, хранилище
// прогресса и накопленная статистика с достижениями.
type Context struct {
	FontFace     font.Face
	Store        *progress.Store
	Stats        *progress.Statistics
	Achievements *progress.Achievements
}

// SaveProgress пишет текущую статистику и достижения в хранилище.
// Ошибка сохранения не должна прерывать игру — вызывающий решает,
// логировать её или нет.
func (c *Context) SaveProgress() error {
	return c.Store.Save(&progress.SaveData{
		Stats:        *c.Stats,
		Achievements: c.Achievements.Unlocked,
	})
}

// StateMachine держит текущее состояние и переключает их.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState переводит машину в новое состояние с вызовом Exit/Enter.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
