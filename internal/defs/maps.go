// internal/defs/maps.go
package defs

import "grid-defense/pkg/gridmap"

// MapDefinition — описание карты из maps.yaml. Клетки дороги перечислены
// по порядку от входа к выходу.
type MapDefinition struct {
	Name       string   `yaml:"name"`
	Difficulty string   `yaml:"difficulty"`
	Rows       int      `yaml:"rows"`
	Cols       int      `yaml:"cols"`
	Path       [][2]int `yaml:"path"` // пары [row, col]
}

// Layout конвертирует описание в формат pkg/gridmap.
func (m MapDefinition) Layout() gridmap.Layout {
	cells := make([]gridmap.Cell, len(m.Path))
	for i, p := range m.Path {
		cells[i] = gridmap.Cell{Row: p[0], Col: p[1]}
	}
	return gridmap.Layout{
		Name:       m.Name,
		Difficulty: m.Difficulty,
		Rows:       m.Rows,
		Cols:       m.Cols,
		Path:       cells,
	}
}

// MapLibrary — все карты, ключ — имя карты.
var MapLibrary map[string]MapDefinition

// MapOrder — порядок карт в меню выбора.
var MapOrder []string
