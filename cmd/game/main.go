// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"grid-defense/internal/config"
	"grid-defense/internal/defs"
	"grid-defense/internal/progress"
	"grid-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	if err := defs.LoadAll(); err != nil {
		log.Fatalf("load definitions: %v", err)
	}

	store, err := progress.NewStore("grid-defense")
	if err != nil {
		// Без хранилища играем без сохранений.
		log.Printf("progress store unavailable: %v", err)
		store = progress.NewStoreWithManager(nil)
	}
	save, err := store.Load()
	if err != nil {
		log.Printf("load progress: %v", err)
	}

	ctx := &state.Context{
		FontFace:     basicfont.Face7x13,
		Store:        store,
		Stats:        &save.Stats,
		Achievements: &progress.Achievements{Unlocked: save.Achievements},
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, ctx))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grid Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
