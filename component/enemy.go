package component

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// EnemyKind selects the shape and base stats of a spawned walker
type EnemyKind uint8

const (
	EnemyCircle EnemyKind = iota
	EnemyTriangle
	EnemySquare

	EnemyKindCount
)

// EnemyStats are the spawn-time values of one enemy kind
type EnemyStats struct {
	Speed  float64
	Health float64
	Timid  bool // Spawns with a flee state
}

// enemyStatsLUT indexed by EnemyKind
var enemyStatsLUT = [EnemyKindCount]EnemyStats{
	EnemyCircle:   {Speed: 1.5, Health: 10},
	EnemyTriangle: {Speed: 2.0, Health: 6, Timid: true},
	EnemySquare:   {Speed: 1.0, Health: 25},
}

// Stats returns the base stats, unknown kinds fall back to circle
func (k EnemyKind) Stats() EnemyStats {
	if k >= EnemyKindCount {
		return enemyStatsLUT[EnemyCircle]
	}
	return enemyStatsLUT[k]
}

func (k EnemyKind) String() string {
	switch k {
	case EnemyCircle:
		return "circle"
	case EnemyTriangle:
		return "triangle"
	case EnemySquare:
		return "square"
	default:
		return fmt.Sprintf("EnemyKind(%d)", uint8(k))
	}
}

// UnmarshalText parses a kind name, case-insensitive
func (k *EnemyKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "circle":
		*k = EnemyCircle
	case "triangle":
		*k = EnemyTriangle
	case "square":
		*k = EnemySquare
	default:
		return errors.Errorf("unknown enemy kind %q", text)
	}
	return nil
}

// MarshalText writes the kind name
func (k EnemyKind) MarshalText() ([]byte, error) {
	if k >= EnemyKindCount {
		return nil, errors.Errorf("invalid enemy kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}
