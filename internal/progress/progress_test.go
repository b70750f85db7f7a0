package progress

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"

	"grid-defense/internal/event"
)

func TestTrackerCountsEvents(t *testing.T) {
	tracker := NewTracker(nil)

	tracker.OnEvent(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{DefID: "basic", Reward: 10}})
	tracker.OnEvent(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{DefID: "boss", Reward: 100, Boss: true}})
	tracker.OnEvent(event.Event{Type: event.TowerPlaced, Data: event.TowerEventData{DefID: "basic", Cost: 100}})
	tracker.OnEvent(event.Event{Type: event.TowerUpgraded, Data: event.TowerEventData{DefID: "basic", Cost: 150}})
	tracker.OnEvent(event.Event{Type: event.TowerSold, Data: event.TowerEventData{DefID: "basic", Cost: 175}})
	tracker.OnEvent(event.Event{Type: event.EnemyReachedEnd, Data: "fast"})
	tracker.OnEvent(event.Event{Type: event.WaveEnded, Data: event.WaveEndedData{Number: 3, HealthLost: 0}})
	tracker.OnEvent(event.Event{Type: event.WaveEnded, Data: event.WaveEndedData{Number: 4, HealthLost: 2}})
	tracker.OnEvent(event.Event{Type: event.GameOver, Data: 42})

	s := tracker.Stats
	if s.TotalKills != 2 || s.BossKills != 1 {
		t.Errorf("kills = %d/%d, want 2/1", s.TotalKills, s.BossKills)
	}
	if s.MoneyEarned != 110 {
		t.Errorf("money earned = %d, want 110", s.MoneyEarned)
	}
	if s.MoneySpent != 250 {
		t.Errorf("money spent = %d, want 250", s.MoneySpent)
	}
	if s.TowersBuilt != 1 || s.Upgrades != 1 {
		t.Errorf("built/upgrades = %d/%d, want 1/1", s.TowersBuilt, s.Upgrades)
	}
	if s.WavesCompleted != 2 || s.PerfectWaves != 1 {
		t.Errorf("waves/perfect = %d/%d, want 2/1", s.WavesCompleted, s.PerfectWaves)
	}
	if s.BestWave != 4 {
		t.Errorf("best wave = %d, want 4", s.BestWave)
	}
	if s.TowersSold != 1 {
		t.Errorf("sold = %d, want 1", s.TowersSold)
	}
	if s.LivesLost != 1 {
		t.Errorf("lives lost = %d, want 1", s.LivesLost)
	}
	if s.GamesPlayed != 1 || s.HighestScore != 42 {
		t.Errorf("games/highscore = %d/%d, want 1/42", s.GamesPlayed, s.HighestScore)
	}
}

func TestAchievementsUnlockOnce(t *testing.T) {
	a := NewAchievements()
	stats := &Statistics{TotalKills: 1}

	unlocked := a.Check(stats)
	if len(unlocked) != 1 || unlocked[0].ID != "first_blood" {
		t.Fatalf("unlocked = %v, want first_blood only", unlocked)
	}
	if !a.IsUnlocked("first_blood") {
		t.Error("first_blood must be marked unlocked")
	}

	// Повторная проверка не должна открыть его второй раз.
	if again := a.Check(stats); len(again) != 0 {
		t.Errorf("second check unlocked %v, want nothing", again)
	}

	stats.TotalKills = 100
	stats.BossKills = 1
	unlocked = a.Check(stats)
	ids := map[string]bool{}
	for _, def := range unlocked {
		ids[def.ID] = true
	}
	if !ids["centurion"] || !ids["boss_slayer"] {
		t.Errorf("unlocked = %v, want centurion and boss_slayer", ids)
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	appName := fmt.Sprintf("grid_defense_test_%d", time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("cannot open gdata manager: %v", err)
	}
	t.Cleanup(func() {
		if homeDir, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})
	return NewStoreWithManager(manager)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	saved := &SaveData{
		Stats:        Statistics{TotalKills: 7, BestWave: 5, MoneyEarned: 123},
		Achievements: map[string]bool{"first_blood": true},
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Stats != saved.Stats {
		t.Errorf("stats = %+v, want %+v", loaded.Stats, saved.Stats)
	}
	if !loaded.Achievements["first_blood"] {
		t.Error("achievements must survive the round trip")
	}
}

func TestLoadWithoutSaveReturnsFreshProgress(t *testing.T) {
	store := newTestStore(t)
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Stats != (Statistics{}) {
		t.Errorf("stats = %+v, want zero", loaded.Stats)
	}
	if loaded.Achievements == nil {
		t.Error("achievements map must be initialized")
	}
}

func TestNilManagerDegradesGracefully(t *testing.T) {
	store := NewStoreWithManager(nil)
	if err := store.Save(&SaveData{}); err != nil {
		t.Errorf("Save with nil manager: %v", err)
	}
	loaded, err := store.Load()
	if err != nil || loaded == nil {
		t.Errorf("Load with nil manager: %v", err)
	}
}
