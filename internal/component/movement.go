// component/movement.go
package component

import "grid-defense/pkg/gridmap"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	Speed float64 // базовая скорость, пикселей в секунду
}

// PathFollow — движение вдоль вейпоинтов карты. Вейпоинты разделяются
// всеми врагами карты и не изменяются после загрузки.
type PathFollow struct {
	Waypoints []gridmap.Cell
	Index     int     // индекс следующего вейпоинта
	Traveled  float64 // пройдено пикселей вдоль пути
	Total     float64 // полная длина пути в пикселях
}

// Progress — доля пройденного пути, 0..1.
func (p *PathFollow) Progress() float64 {
	if p.Total <= 0 {
		return 0
	}
	progress := p.Traveled / p.Total
	if progress > 1 {
		progress = 1
	}
	return progress
}
