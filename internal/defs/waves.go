// internal/defs/waves.go
package defs

// WaveDefinition описывает состав одной волны врагов.
type WaveDefinition struct {
	Composition   map[string]int `yaml:"composition"`    // ID врага -> количество
	SpawnInterval float64        `yaml:"spawn_interval"` // секунд между появлениями
}

// WaveTable — последовательность волн в игре, загружается из waves.yaml.
var WaveTable []WaveDefinition

// WaveForNumber возвращает определение волны по её номеру (с единицы).
// Волны за пределами таблицы повторяют последнюю запись.
func WaveForNumber(number int) WaveDefinition {
	if len(WaveTable) == 0 {
		return WaveDefinition{}
	}
	idx := number - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(WaveTable) {
		idx = len(WaveTable) - 1
	}
	return WaveTable[idx]
}
