package main

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"grid-defense/internal/defs"
	"grid-defense/pkg/gridmap"
)

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

// ColorLerp выполняет линейную интерполяцию между двумя цветами
func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c1.R)*(1-t)+float32(c2.R)*t),
		uint8(float32(c1.G)*(1-t)+float32(c2.G)*t),
		uint8(float32(c1.B)*(1-t)+float32(c2.B)*t),
		uint8(float32(c1.A)*(1-t)+float32(c2.A)*t),
	)
}

// viewerMap — одна карта, подготовленная к показу.
type viewerMap struct {
	name string
	def  defs.MapDefinition
	grid *gridmap.Grid
}

func main() {
	const screenWidth = 1280
	const screenHeight = 720
	backgroundColor := rl.NewColor(10, 10, 20, 255)

	if err := defs.LoadAll(); err != nil {
		log.Fatalf("load definitions: %v", err)
	}

	maps := make([]viewerMap, 0, len(defs.MapOrder))
	for _, name := range defs.MapOrder {
		def := defs.MapLibrary[name]
		grid, err := gridmap.NewGrid(def.Layout())
		if err != nil {
			log.Fatalf("map %q: %v", name, err)
		}
		maps = append(maps, viewerMap{name: name, def: def, grid: grid})
	}

	rl.InitWindow(screenWidth, screenHeight, "Map Viewer | Tab - Next Map, Q/E - Rotate, Mouse Wheel - Change Angle")
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	// Позиции, цели и углы обзора для интерполяции между изометрией
	// и видом сверху.
	isoPos := rl.NewVector3(0, 160, 200)
	topDownPos := rl.NewVector3(0, 360, 0.1)
	target := rl.NewVector3(0, 0, 0)
	isoFovy := float32(55.0)
	topDownFovy := float32(35.0)
	cameraAngleT := float32(0.5)

	const cellSize = float32(14.0)
	current := 0

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyTab) {
			current = (current + 1) % len(maps)
		}
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}

		wheel := rl.GetMouseWheelMove()
		if wheel != 0 {
			cameraAngleT += wheel * 0.05
			if cameraAngleT > 0.99 {
				cameraAngleT = 0.99
			} else if cameraAngleT < 0.0 {
				cameraAngleT = 0.0
			}
		}

		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = target
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		m := maps[current]
		// Центр карты — в начале координат, чтобы камера крутилась вокруг неё.
		offsetX := float32(m.grid.Cols) * cellSize / 2
		offsetZ := float32(m.grid.Rows) * cellSize / 2

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		rl.BeginMode3D(camera)

		for row := 0; row < m.grid.Rows; row++ {
			for col := 0; col < m.grid.Cols; col++ {
				cell := gridmap.Cell{Row: row, Col: col}

				var baseColor rl.Color
				height := float32(2.0)
				switch {
				case cell == m.grid.Start:
					baseColor = rl.SkyBlue
					height = 5.0
				case cell == m.grid.End:
					baseColor = rl.Red
					height = 5.0
				case m.grid.IsPath(cell):
					baseColor = rl.NewColor(130, 100, 60, 255)
					height = 1.0
				default:
					baseColor = rl.NewColor(100, 140, 110, 255)
				}

				x := float32(col)*cellSize - offsetX + cellSize/2
				z := float32(row)*cellSize - offsetZ + cellSize/2
				pos := rl.NewVector3(x, height/2, z)

				// Дальние клетки растворяются в фоне.
				distance := rl.Vector3Distance(camera.Position, pos)
				fogStart := float32(200.0)
				fogEnd := float32(450.0)
				fogFactor := (distance - fogStart) / (fogEnd - fogStart)
				if fogFactor < 0 {
					fogFactor = 0
				}
				if fogFactor > 1 {
					fogFactor = 1
				}
				finalColor := ColorLerp(baseColor, backgroundColor, fogFactor)

				rl.DrawCube(pos, cellSize, height, cellSize, finalColor)
				rl.DrawCubeWires(pos, cellSize, height, cellSize, ColorLerp(rl.DarkGray, backgroundColor, fogFactor))
			}
		}

		rl.EndMode3D()

		label := fmt.Sprintf("%s (%s)  %dx%d, path %d cells", m.def.Name, m.def.Difficulty, m.grid.Rows, m.grid.Cols, len(m.grid.Waypoints))
		rl.DrawText(label, 10, 10, 20, rl.White)
		rl.DrawText("Tab - next map, Q/E - rotate, Mouse Wheel - change angle", 10, 36, 20, rl.Gray)
		rl.DrawFPS(10, 66)

		rl.EndDrawing()
	}

	rl.CloseWindow()
}
