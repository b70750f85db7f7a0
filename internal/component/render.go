// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}

// LineRender — временная линия (цепная молния). Удаляется в cleanup,
// когда истекает TTL.
type LineRender struct {
	StartX, StartY float64
	EndX, EndY     float64
	Color          color.RGBA
	TTL            float64
}
