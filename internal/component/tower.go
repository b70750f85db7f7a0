// component/tower.go
package component

import (
	"grid-defense/internal/defs"
	"grid-defense/pkg/gridmap"
)

// Tower — построенная башня. Клетка фиксируется при постройке.
type Tower struct {
	DefID      string       // ID из towers.yaml
	Cell       gridmap.Cell
	Level      int // 1..MaxUpgradeLevel
	TotalSpent int // базовая стоимость плюс все апгрейды, для возврата при продаже
	Targeting  defs.TargetingMode
}
