// internal/component/player.go
package component

// PlayerState — явное состояние игрока. Мутируется только в фазе
// cleanup тика и через команды игрока, прошедшие валидацию.
type PlayerState struct {
	Health   int
	Money    int
	Score    int
	GameOver bool
}
