package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/majjane/majjaneflow/models"
)

// SettingsStore persists the two notification rules as one JSON document:
// read once at process start, written back wholesale on every save.
type SettingsStore struct {
	mu       sync.RWMutex
	path     string
	settings models.NotificationSettings
}

// OpenSettings loads the settings document at path, falling back to the
// built-in defaults when the file does not exist yet.
func OpenSettings(path string) (*SettingsStore, error) {
	st := &SettingsStore{path: path, settings: models.DefaultNotificationSettings()}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("no notification settings file, using defaults", "path", path)
		return st, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if err := json.Unmarshal(data, &st.settings); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	st.settings.UpcomingRenewal.Normalize()
	st.settings.Overdue.Normalize()
	return st, nil
}

// Get returns a snapshot of the current settings. Day slices are copied so a
// dispatch pass never observes a concurrent save halfway through.
func (st *SettingsStore) Get() models.NotificationSettings {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s := st.settings
	s.UpcomingRenewal.Days = append([]int(nil), s.UpcomingRenewal.Days...)
	s.Overdue.Days = append([]int(nil), s.Overdue.Days...)
	return s
}

// Save replaces the settings wholesale and writes them back to disk.
func (st *SettingsStore) Save(settings models.NotificationSettings) error {
	settings.UpcomingRenewal.Normalize()
	settings.Overdue.Normalize()

	st.mu.Lock()
	defer st.mu.Unlock()

	st.settings = settings
	return st.write()
}

// ToggleDay flips one trigger day-offset on the named rule
// ("upcoming_renewal" or "overdue") and persists the result.
func (st *SettingsStore) ToggleDay(rule string, day int) (models.NotificationSettings, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	switch rule {
	case "upcoming_renewal":
		st.settings.UpcomingRenewal.ToggleDay(day)
	case "overdue":
		st.settings.Overdue.ToggleDay(day)
	default:
		return models.NotificationSettings{}, fmt.Errorf("unknown rule %q", rule)
	}
	if err := st.write(); err != nil {
		return models.NotificationSettings{}, err
	}
	return st.settings, nil
}

func (st *SettingsStore) write() error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	data, err := json.MarshalIndent(st.settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
