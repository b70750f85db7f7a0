// internal/defs/loader.go
package defs

import (
	"bytes"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"grid-defense/pkg/gridmap"
)

//go:embed data/*.yaml
var dataFS embed.FS

// LoadAll загружает и валидирует все игровые таблицы. Ошибки конфигурации
// (неизвестный тип, несвязная дорога) отклоняются здесь, на загрузке,
// а не во время игры.
func LoadAll() error {
	if err := LoadTowerDefinitions(); err != nil {
		return err
	}
	if err := LoadEnemyDefinitions(); err != nil {
		return err
	}
	if err := LoadWaveDefinitions(); err != nil {
		return err
	}
	if err := LoadMapDefinitions(); err != nil {
		return err
	}
	return nil
}

func decodeStrict(name string, out interface{}) error {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

// LoadTowerDefinitions читает towers.yaml и заполняет TowerLibrary.
func LoadTowerDefinitions() error {
	var towerDefs []TowerDefinition
	if err := decodeStrict("towers.yaml", &towerDefs); err != nil {
		return err
	}

	TowerLibrary = make(map[string]TowerDefinition, len(towerDefs))
	TowerOrder = TowerOrder[:0]
	for _, def := range towerDefs {
		if err := validateTower(def); err != nil {
			return err
		}
		if _, dup := TowerLibrary[def.ID]; dup {
			return fmt.Errorf("duplicate tower id %q", def.ID)
		}
		TowerLibrary[def.ID] = def
		TowerOrder = append(TowerOrder, def.ID)
	}
	return nil
}

func validateTower(def TowerDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("tower with empty id")
	}
	if def.Cost <= 0 {
		return fmt.Errorf("tower %q: cost must be positive", def.ID)
	}
	switch def.Targeting {
	case "", TargetFurthest, TargetFirst, TargetLast, TargetClosest, TargetStrongest, TargetWeakest:
	default:
		return fmt.Errorf("tower %q: unknown targeting mode %q", def.ID, def.Targeting)
	}
	if def.Status != nil {
		switch def.Status.Kind {
		case StatusSlow, StatusPoison, StatusBurn, StatusFreeze:
		default:
			return fmt.Errorf("tower %q: unknown status kind %q", def.ID, def.Status.Kind)
		}
	}
	if def.Support == nil && !def.Beam && def.FireRate <= 0 {
		return fmt.Errorf("tower %q: fire_rate must be positive", def.ID)
	}
	return nil
}

// LoadEnemyDefinitions читает enemies.yaml и заполняет EnemyLibrary.
func LoadEnemyDefinitions() error {
	var enemyDefs []EnemyDefinition
	if err := decodeStrict("enemies.yaml", &enemyDefs); err != nil {
		return err
	}

	EnemyLibrary = make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		if def.ID == "" {
			return fmt.Errorf("enemy with empty id")
		}
		if def.Health <= 0 || def.Speed <= 0 {
			return fmt.Errorf("enemy %q: health and speed must be positive", def.ID)
		}
		if def.Armor < 0 || def.Armor >= 1 {
			return fmt.Errorf("enemy %q: armor must be in [0, 1)", def.ID)
		}
		if _, dup := EnemyLibrary[def.ID]; dup {
			return fmt.Errorf("duplicate enemy id %q", def.ID)
		}
		EnemyLibrary[def.ID] = def
	}
	return nil
}

// LoadWaveDefinitions читает waves.yaml. Волна, ссылающаяся на неизвестный
// тип врага, делает конфигурацию невалидной целиком.
func LoadWaveDefinitions() error {
	var waves []WaveDefinition
	if err := decodeStrict("waves.yaml", &waves); err != nil {
		return err
	}
	if len(waves) == 0 {
		return fmt.Errorf("waves.yaml defines no waves")
	}

	for i, w := range waves {
		if len(w.Composition) == 0 {
			return fmt.Errorf("wave %d: empty composition", i+1)
		}
		if w.SpawnInterval <= 0 {
			return fmt.Errorf("wave %d: spawn_interval must be positive", i+1)
		}
		for enemyID, count := range w.Composition {
			if _, ok := EnemyLibrary[enemyID]; !ok {
				return fmt.Errorf("wave %d: unknown enemy id %q", i+1, enemyID)
			}
			if count <= 0 {
				return fmt.Errorf("wave %d: enemy %q count must be positive", i+1, enemyID)
			}
		}
	}
	WaveTable = waves
	return nil
}

// LoadMapDefinitions читает maps.yaml и проверяет каждую карту построением
// сетки: несвязная дорога отклоняется сразу.
func LoadMapDefinitions() error {
	var maps []MapDefinition
	if err := decodeStrict("maps.yaml", &maps); err != nil {
		return err
	}
	if len(maps) == 0 {
		return fmt.Errorf("maps.yaml defines no maps")
	}

	MapLibrary = make(map[string]MapDefinition, len(maps))
	MapOrder = MapOrder[:0]
	for _, m := range maps {
		if m.Name == "" {
			return fmt.Errorf("map with empty name")
		}
		if _, err := gridmap.NewGrid(m.Layout()); err != nil {
			return fmt.Errorf("invalid map layout: %w", err)
		}
		if _, dup := MapLibrary[m.Name]; dup {
			return fmt.Errorf("duplicate map name %q", m.Name)
		}
		MapLibrary[m.Name] = m
		MapOrder = append(MapOrder, m.Name)
	}
	return nil
}
