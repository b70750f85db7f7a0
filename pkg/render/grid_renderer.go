package render

import (
	"image/color"

	"grid-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MapColors — палитра задника карты; задаётся вызывающим, чтобы пакет
// не тянул игровой конфиг.
type MapColors struct {
	Background color.RGBA
	Grass      color.RGBA
	Path       color.RGBA
	Start      color.RGBA
	End        color.RGBA
	GridLine   color.RGBA
}

// GridRenderer рисует клеточную карту. Задник статичен, поэтому
// рендерится один раз в изображение и дальше кладётся одним вызовом.
type GridRenderer struct {
	grid     *gridmap.Grid
	cellSize float64
	colors   *MapColors
	mapImage *ebiten.Image
}

func NewGridRenderer(grid *gridmap.Grid, cellSize float64, screenWidth, screenHeight int, colors *MapColors) *GridRenderer {
	r := &GridRenderer{
		grid:     grid,
		cellSize: cellSize,
		colors:   colors,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
	r.renderMapImage()
	return r
}

// renderMapImage создаёт предрендеренное изображение задника.
func (r *GridRenderer) renderMapImage() {
	r.mapImage.Fill(r.colors.Background)
	size := float32(r.cellSize)

	for row := 0; row < r.grid.Rows; row++ {
		for col := 0; col < r.grid.Cols; col++ {
			cell := gridmap.Cell{Row: row, Col: col}
			c := r.colors.Grass
			switch {
			case cell == r.grid.Start:
				c = r.colors.Start
			case cell == r.grid.End:
				c = r.colors.End
			case r.grid.IsPath(cell):
				c = r.colors.Path
			}
			vector.DrawFilledRect(r.mapImage, float32(col)*size, float32(row)*size, size, size, c, false)
		}
	}

	// Сетка поверх клеток.
	width := float32(r.grid.Cols) * size
	height := float32(r.grid.Rows) * size
	for row := 0; row <= r.grid.Rows; row++ {
		y := float32(row) * size
		vector.StrokeLine(r.mapImage, 0, y, width, y, 1, r.colors.GridLine, false)
	}
	for col := 0; col <= r.grid.Cols; col++ {
		x := float32(col) * size
		vector.StrokeLine(r.mapImage, x, 0, x, height, 1, r.colors.GridLine, false)
	}
}

func (r *GridRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

// HighlightCell подсвечивает клетку под курсором при строительстве.
func (r *GridRenderer) HighlightCell(screen *ebiten.Image, cell gridmap.Cell, c color.RGBA) {
	if !r.grid.InBounds(cell) {
		return
	}
	size := float32(r.cellSize)
	vector.DrawFilledRect(screen, float32(cell.Col)*size, float32(cell.Row)*size, size, size, c, false)
}
