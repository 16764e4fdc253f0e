package config

import (
	_ "embed"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-defense/component"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/terrain"
)

// DefaultPath is checked when no level file is given on the command line
const DefaultPath = "levels/default.toml"

//go:embed default.toml
var defaultLevel []byte

var (
	ErrUnknownKey   = errors.New("unknown key")
	ErrNoMap        = errors.New("level has no map")
	ErrUnknownMap   = errors.New("unknown builtin map")
	ErrNoTowers     = errors.New("level has no tower types")
	ErrInvalidTower = errors.New("invalid tower type")
	ErrInvalidWave  = errors.New("invalid wave")
)

// Level is the on-disk description of a playable level
type Level struct {
	Name    string      `toml:"name"`
	Seed    uint64      `toml:"seed"`
	Builtin string      `toml:"builtin"` // Used when Map is empty
	Map     []string    `toml:"map"`
	Towers  []TowerType `toml:"towers"`
	Waves   []Wave      `toml:"waves"`
}

type TowerType struct {
	Name           string  `toml:"name"`
	Kind           string  `toml:"kind"`
	BaseDamage     float64 `toml:"base_damage"`
	BaseRateOfFire float64 `toml:"base_rate_of_fire"`
	BaseRange      float64 `toml:"base_range"`
	Cost           float64 `toml:"cost"`
	Description    string  `toml:"description"`
	Flavor         string  `toml:"flavor"`
	Color          string  `toml:"color"` // #rrggbb
}

type Wave struct {
	Groups []Group `toml:"group"`
}

type Group struct {
	Size int                 `toml:"size"`
	Type component.EnemyKind `toml:"type"`
}

// Parse decodes and validates a level, unknown keys are rejected
func Parse(data []byte) (*Level, error) {
	var l Level
	md, err := toml.Decode(string(data), &l)
	if err != nil {
		return nil, errors.Wrap(err, "decode level")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Wrapf(ErrUnknownKey, "%s", undecoded[0])
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads a level file
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read level %s", path)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "level %s", filepath.Base(path))
	}
	log.Printf("[CONFIG] loaded level %q from %s: %d towers, %d waves", l.Name, path, len(l.Towers), len(l.Waves))
	return l, nil
}

// Default returns the embedded level
func Default() (*Level, error) {
	l, err := Parse(defaultLevel)
	if err != nil {
		return nil, errors.Wrap(err, "embedded level")
	}
	return l, nil
}

// LoadAuto loads with priority: customPath > DefaultPath > embedded
func LoadAuto(customPath string) (*Level, error) {
	if customPath != "" {
		return Load(customPath)
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	}
	return Default()
}

// Rows returns the map text, resolving a builtin map name
func (l *Level) Rows() ([]string, error) {
	if len(l.Map) > 0 {
		return l.Map, nil
	}
	if l.Builtin == "" {
		return nil, ErrNoMap
	}
	rows, ok := terrain.Builtin[l.Builtin]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMap, "%q", l.Builtin)
	}
	return rows, nil
}

// Validate checks the map parses and every tower and wave is usable
func (l *Level) Validate() error {
	rows, err := l.Rows()
	if err != nil {
		return err
	}
	if _, err := terrain.Parse(rows); err != nil {
		return errors.Wrap(err, "map")
	}

	if len(l.Towers) == 0 {
		return ErrNoTowers
	}
	names := make(map[string]bool, len(l.Towers))
	for i, t := range l.Towers {
		switch {
		case t.Name == "":
			return errors.Wrapf(ErrInvalidTower, "tower %d has no name", i)
		case names[t.Name]:
			return errors.Wrapf(ErrInvalidTower, "duplicate tower %q", t.Name)
		case t.Cost <= 0:
			return errors.Wrapf(ErrInvalidTower, "tower %q cost %v", t.Name, t.Cost)
		case t.BaseRange < 0:
			return errors.Wrapf(ErrInvalidTower, "tower %q range %v", t.Name, t.BaseRange)
		}
		if _, err := parseColor(t.Color); err != nil {
			return errors.Wrapf(ErrInvalidTower, "tower %q color: %v", t.Name, err)
		}
		names[t.Name] = true
	}

	for i, w := range l.Waves {
		for j, g := range w.Groups {
			if g.Size <= 0 {
				return errors.Wrapf(ErrInvalidWave, "wave %d group %d size %d", i+1, j+1, g.Size)
			}
		}
	}
	return nil
}

// Build converts the level into the simulation's static level data
func (l *Level) Build() (*engine.Level, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	rows, _ := l.Rows()
	g, err := terrain.Parse(rows)
	if err != nil {
		return nil, errors.Wrap(err, "map")
	}

	towers := make([]component.TowerType, len(l.Towers))
	for i, t := range l.Towers {
		color, _ := parseColor(t.Color)
		towers[i] = component.TowerType{
			Name:        t.Name,
			Kind:        t.Kind,
			Damage:      t.BaseDamage,
			RateOfFire:  t.BaseRateOfFire,
			Range:       t.BaseRange,
			Cost:        t.Cost,
			Description: t.Description,
			Flavor:      t.Flavor,
			Color:       color,
		}
	}

	waves := make([]component.Wave, len(l.Waves))
	for i, w := range l.Waves {
		groups := make([]component.WaveGroup, len(w.Groups))
		for j, g := range w.Groups {
			groups[j] = component.WaveGroup{Size: g.Size, Kind: g.Type}
		}
		waves[i] = component.Wave{Groups: groups}
	}

	return engine.NewLevel(l.Name, l.Seed, g, towers, waves), nil
}

// parseColor packs #rrggbb, empty means black
func parseColor(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, err
	}
	r, g, b := c.RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b), nil
}
