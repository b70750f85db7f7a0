// pkg/gridmap/grid.go
package gridmap

import (
	"fmt"
	"math"
)

// Cell — координата клетки на прямоугольной сетке.
type Cell struct {
	Row, Col int
}

// CellState — состояние клетки.
type CellState uint8

const (
	CellBuildable CellState = iota // свободная клетка, можно строить
	CellPath                       // часть дороги, строить нельзя
)

// Layout описывает карту: упорядоченный список клеток дороги от входа к выходу.
type Layout struct {
	Name       string
	Difficulty string
	Rows, Cols int
	Path       []Cell
}

// Grid — готовая к игре карта: сетка проходимости и вычисленные вейпоинты.
// Вейпоинты неизменяемы после загрузки и разделяются всеми врагами карты.
type Grid struct {
	Rows, Cols int
	Start, End Cell
	Waypoints  []Cell

	cells [][]CellState
}

// NewGrid строит сетку из описания карты. Дорога, не образующая связный
// коридор от входа к выходу, отклоняется сразу — иначе враги никогда
// не дошли бы до конца.
func NewGrid(layout Layout) (*Grid, error) {
	if layout.Rows <= 0 || layout.Cols <= 0 {
		return nil, fmt.Errorf("map %q: invalid size %dx%d", layout.Name, layout.Rows, layout.Cols)
	}
	if len(layout.Path) < 2 {
		return nil, fmt.Errorf("map %q: path must contain at least entry and exit", layout.Name)
	}

	g := &Grid{
		Rows:  layout.Rows,
		Cols:  layout.Cols,
		Start: layout.Path[0],
		End:   layout.Path[len(layout.Path)-1],
		cells: make([][]CellState, layout.Rows),
	}
	for r := range g.cells {
		g.cells[r] = make([]CellState, layout.Cols)
	}

	for _, c := range layout.Path {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("map %q: path cell %v is out of bounds", layout.Name, c)
		}
		g.cells[c.Row][c.Col] = CellPath
	}

	waypoints := FindPath(g, g.Start, g.End)
	if waypoints == nil {
		return nil, fmt.Errorf("map %q: path cells do not form a connected corridor from %v to %v", layout.Name, g.Start, g.End)
	}
	g.Waypoints = waypoints
	return g, nil
}

// InBounds сообщает, находится ли клетка в пределах сетки.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// IsPath сообщает, является ли клетка частью дороги.
func (g *Grid) IsPath(c Cell) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] == CellPath
}

// IsBuildable возвращает false для клеток вне сетки и для дороги.
func (g *Grid) IsBuildable(c Cell) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] == CellBuildable
}

// Center возвращает пиксельные координаты центра клетки.
func (c Cell) Center(cellSize float64) (float64, float64) {
	return float64(c.Col)*cellSize + cellSize/2, float64(c.Row)*cellSize + cellSize/2
}

// PixelToCell возвращает клетку, содержащую пиксельную координату.
func PixelToCell(x, y, cellSize float64) Cell {
	return Cell{Row: int(math.Floor(y / cellSize)), Col: int(math.Floor(x / cellSize))}
}

// PathLength — длина ломаной через центры вейпоинтов в пикселях.
func PathLength(waypoints []Cell, cellSize float64) float64 {
	total := 0.0
	for i := 1; i < len(waypoints); i++ {
		x1, y1 := waypoints[i-1].Center(cellSize)
		x2, y2 := waypoints[i].Center(cellSize)
		total += math.Hypot(x2-x1, y2-y1)
	}
	return total
}
