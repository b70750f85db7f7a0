package defs

import (
	"testing"

	"grid-defense/pkg/gridmap"
)

func TestLoadAll(t *testing.T) {
	if err := LoadAll(); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(TowerLibrary) == 0 || len(EnemyLibrary) == 0 || len(WaveTable) == 0 || len(MapLibrary) == 0 {
		t.Fatal("all libraries must be populated")
	}
	if len(TowerOrder) != len(TowerLibrary) {
		t.Errorf("TowerOrder has %d entries, library %d", len(TowerOrder), len(TowerLibrary))
	}

	// Каждая карта должна собираться в играбельную сетку.
	for name, m := range MapLibrary {
		if _, err := gridmap.NewGrid(m.Layout()); err != nil {
			t.Errorf("map %q: %v", name, err)
		}
	}

	// Башня поддержки — единственная без боевой части.
	support, ok := TowerLibrary["support"]
	if !ok || support.Support == nil {
		t.Error("support tower must carry a support block")
	}
	laser, ok := TowerLibrary["laser"]
	if !ok || !laser.Beam {
		t.Error("laser tower must be a beam tower")
	}
}

func TestWaveForNumberClamps(t *testing.T) {
	if err := LoadAll(); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	last := WaveTable[len(WaveTable)-1]
	beyond := WaveForNumber(len(WaveTable) + 100)
	if beyond.SpawnInterval != last.SpawnInterval {
		t.Error("waves past the table must repeat the last entry")
	}
	first := WaveForNumber(0)
	if first.SpawnInterval != WaveTable[0].SpawnInterval {
		t.Error("wave numbers below 1 must clamp to the first entry")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff8000")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if c.R != 0xff || c.G != 0x80 || c.B != 0x00 || c.A != 0xff {
		t.Errorf("color = %+v", c)
	}

	c, err = ParseHexColor("#11223344")
	if err != nil {
		t.Fatalf("ParseHexColor with alpha: %v", err)
	}
	if c.A != 0x44 {
		t.Errorf("alpha = %#x, want 0x44", c.A)
	}

	if _, err := ParseHexColor("not-a-color"); err == nil {
		t.Error("malformed colors must be rejected")
	}
}
