// pkg/gridmap/pathfinding.go
package gridmap

// FindPath находит кратчайший путь от start до goal поиском в ширину
// по клеткам дороги. Ходы только в четырёх направлениях, без диагоналей.
// Возвращает nil, если путь не существует.
func FindPath(g *Grid, start, goal Cell) []Cell {
	if !g.IsPath(start) || !g.IsPath(goal) {
		return nil
	}

	directions := [4]Cell{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

	cameFrom := make(map[Cell]Cell)
	visited := map[Cell]bool{start: true}
	queue := []Cell{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == goal {
			return reconstructPath(cameFrom, start, goal)
		}

		for _, d := range directions {
			next := Cell{Row: current.Row + d.Row, Col: current.Col + d.Col}
			if !g.IsPath(next) || visited[next] {
				continue
			}
			visited[next] = true
			cameFrom[next] = current
			queue = append(queue, next)
		}
	}
	return nil // пути нет
}

func reconstructPath(cameFrom map[Cell]Cell, start, goal Cell) []Cell {
	path := []Cell{goal}
	for current := goal; current != start; {
		current = cameFrom[current]
		path = append(path, current)
	}
	// Разворачиваем: путь собран от выхода к входу
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
