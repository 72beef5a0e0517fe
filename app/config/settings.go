// Package config holds the process-wide settings store.
package config

import "sync"

// Default settings established on first access.
const (
	KeyDefaultPageSize = "DEFAULT_PAGE_SIZE"
	KeyEnableAnalytics = "ENABLE_ANALYTICS"
	KeyRateLimit       = "RATE_LIMIT"
)

// Settings is an in-memory map of named configuration values shared by the
// whole process. Values are ephemeral; nothing survives a restart.
type Settings struct {
	mu     sync.RWMutex
	values map[string]interface{}
}

var (
	instance *Settings
	once     sync.Once
)

// Load returns the shared Settings instance, initializing the defaults on
// the first call only. Later calls never re-initialize, so overrides made
// elsewhere in the process stay visible.
func Load() *Settings {
	once.Do(func() {
		instance = &Settings{
			values: map[string]interface{}{
				KeyDefaultPageSize: 20,
				KeyEnableAnalytics: true,
				KeyRateLimit:       100,
			},
		}
	})
	return instance
}

// Get returns the value stored under key, and whether it was present.
func (s *Settings) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// GetInt returns the value under key as an int, or fallback when the key is
// absent or holds a non-int.
func (s *Settings) GetInt(key string, fallback int) int {
	v, ok := s.Get(key)
	if !ok {
		return fallback
	}
	n, ok := v.(int)
	if !ok {
		return fallback
	}
	return n
}

// GetBool returns the value under key as a bool, or fallback when the key is
// absent or holds a non-bool.
func (s *Settings) GetBool(key string, fallback bool) bool {
	v, ok := s.Get(key)
	if !ok {
		return fallback
	}
	b, ok := v.(bool)
	if !ok {
		return fallback
	}
	return b
}

// Set stores value under key. The write is visible to every holder of the
// shared instance.
func (s *Settings) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}
