// internal/progress/save.go
package progress

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

// Данные лежат в одном объекте хранилища.
const (
	progressObject   = "progress"
	progressProperty = "v1"
)

// SaveData — всё, что переживает перезапуск игры.
type SaveData struct {
	Stats        Statistics      `json:"stats"`
	Achievements map[string]bool `json:"achievements"`
}

// Store — персистентное хранилище прогресса поверх gdata. При недоступном
// хранилище (nil-менеджер) работает вхолостую: игра идёт без сохранений.
type Store struct {
	manager *gdata.Manager
}

// NewStore открывает платформенное хранилище для приложения.
func NewStore(appName string) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open data store: %w", err)
	}
	return &Store{manager: manager}, nil
}

// NewStoreWithManager оборачивает готовый менеджер (для тестов).
func NewStoreWithManager(manager *gdata.Manager) *Store {
	return &Store{manager: manager}
}

// Load читает сохранённый прогресс. Отсутствие сохранения — не ошибка:
// возвращается чистый прогресс.
func (s *Store) Load() (*SaveData, error) {
	save := &SaveData{Achievements: make(map[string]bool)}
	if s.manager == nil {
		return save, nil
	}
	if !s.manager.ObjectPropExists(progressObject, progressProperty) {
		return save, nil
	}

	raw, err := s.manager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return save, fmt.Errorf("load progress: %w", err)
	}
	if err := json.Unmarshal(raw, save); err != nil {
		// Битое сохранение не должно ронять игру.
		log.Printf("progress: corrupted save, starting fresh: %v", err)
		return &SaveData{Achievements: make(map[string]bool)}, nil
	}
	if save.Achievements == nil {
		save.Achievements = make(map[string]bool)
	}
	return save, nil
}

// Save пишет прогресс в хранилище.
func (s *Store) Save(data *SaveData) error {
	if s.manager == nil {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := s.manager.SaveObjectProp(progressObject, progressProperty, raw); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
