package systems

import (
	"fmt"
	"log"
	"strconv"

	cfg "github.com/automoto/netfx/config"
	"github.com/quasilyte/gdata"
)

// ItemStore is the part of *gdata.Manager used for preferences. Under wasm
// gdata keeps items in the browser's localStorage.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var gdataManager ItemStore

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Preferences.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// DefaultStore returns the store opened by InitPersistence, or nil when
// persistence is unavailable
func DefaultStore() ItemStore {
	return gdataManager
}

// LoadFlag reads a boolean preference. A missing item, an unreadable store or
// a nil store all yield def. Any stored value other than "true" is false.
func LoadFlag(s ItemStore, key string, def bool) bool {
	if s == nil {
		return def
	}

	data, err := s.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load preference %q: %v", key, err)
		return def
	}
	if len(data) == 0 {
		return def
	}

	return string(data) == strconv.FormatBool(true)
}

// SaveFlag writes a boolean preference as "true" or "false"
func SaveFlag(s ItemStore, key string, value bool) error {
	if s == nil {
		return nil
	}

	if err := s.SaveItem(key, []byte(strconv.FormatBool(value))); err != nil {
		log.Printf("Warning: Could not save preference %q: %v", key, err)
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// ClearFlag forgets a stored preference so the default applies again
func ClearFlag(s ItemStore, key string) error {
	if s == nil {
		return nil
	}

	// Save empty data to clear the item
	if err := s.SaveItem(key, nil); err != nil {
		log.Printf("Warning: Could not clear preference %q: %v", key, err)
		return fmt.Errorf("clear %s: %w", key, err)
	}
	return nil
}

// LoadNetworkEffect returns whether the particle network is enabled
func LoadNetworkEffect(s ItemStore) bool {
	return LoadFlag(s, cfg.Preferences.NetworkEffectKey, cfg.Preferences.NetworkEffectDefault)
}

// SaveNetworkEffect persists the particle network toggle
func SaveNetworkEffect(s ItemStore, enabled bool) error {
	return SaveFlag(s, cfg.Preferences.NetworkEffectKey, enabled)
}
