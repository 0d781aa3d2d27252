package configs

import (
	"fmt"
	"strings"
)

// Supported ad store backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Store selects where the daily ad is persisted.
type Store struct {
	// Backend is one of "memory", "postgres" or "redis".
	Backend string `env:"BACKEND" envDefault:"memory"`
	// Key is the storage key of the daily ad.
	Key string `env:"KEY" envDefault:"daily_ad_campaign"`
}

// Normalized returns the lower-cased backend name or an error when the
// backend is unknown.
func (s Store) Normalized() (string, error) {
	switch b := strings.ToLower(strings.TrimSpace(s.Backend)); b {
	case BackendMemory, BackendPostgres, BackendRedis:
		return b, nil
	default:
		return "", fmt.Errorf("unknown store backend %q", s.Backend)
	}
}
