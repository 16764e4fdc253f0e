package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-defense/component"
	"github.com/lixenwraith/vi-defense/terrain"
)

const minimal = `
name = "tiny"
seed = 7
builtin = "straights"

[[towers]]
name = "factory"
kind = "factory"
cost = 1.5
color = "#ff8000"

[[waves]]
  [[waves.group]]
  size = 2
  type = "Triangle"
`

func TestDefaultLevel(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if len(l.Towers) != 8 {
		t.Errorf("Expected 8 tower types, got %d", len(l.Towers))
	}

	level, err := l.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if level.Grid.Width != 22 || level.Grid.Height != 18 {
		t.Errorf("Expected 22x18 map, got %dx%d", level.Grid.Width, level.Grid.Height)
	}
	if level.PathLength() != 101 {
		t.Errorf("Expected path length 101, got %d", level.PathLength())
	}
	factories := 0
	for i := range level.Towers {
		if level.Towers[i].IsFactory() {
			factories++
		}
	}
	if factories != 1 {
		t.Errorf("Expected one factory type, got %d", factories)
	}
	if len(level.Waves) == 0 || level.Waves[0].Count() == 0 {
		t.Error("Expected a populated first wave")
	}
}

func TestParseMinimal(t *testing.T) {
	l, err := Parse([]byte(minimal))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	level, err := l.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if level.Name != "tiny" || level.Seed != 7 {
		t.Errorf("Expected tiny/7, got %s/%d", level.Name, level.Seed)
	}
	if n := len(level.Grid.Entrances()); n != 6 {
		t.Errorf("Expected straights with 6 entrances, got %d", n)
	}
	if c := level.Towers[0].Color; c != 0xff8000 {
		t.Errorf("Expected color 0xff8000, got %#x", c)
	}
	if g := level.Waves[0].Groups[0]; g.Kind != component.EnemyTriangle || g.Size != 2 {
		t.Errorf("Expected 2 triangles, got %+v", g)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		want    error
	}{
		{"unknown key", [2]string{`seed = 7`, "seed = 7\nspeed = 3"}, ErrUnknownKey},
		{"unknown builtin", [2]string{`"straights"`, `"spiral"`}, ErrUnknownMap},
		{"no map", [2]string{`builtin = "straights"`, ""}, ErrNoMap},
		{"zero cost", [2]string{`cost = 1.5`, `cost = 0.0`}, ErrInvalidTower},
		{"bad color", [2]string{`"#ff8000"`, `"orange"`}, ErrInvalidTower},
		{"empty group", [2]string{`size = 2`, `size = 0`}, ErrInvalidWave},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(minimal, tt.replace[0], tt.replace[1], 1)
			_, err := Parse([]byte(data))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseRejectsBadEnemyAndMap(t *testing.T) {
	data := strings.Replace(minimal, `"Triangle"`, `"hexagon"`, 1)
	if _, err := Parse([]byte(data)); err == nil {
		t.Error("Expected unknown enemy kind rejected")
	}

	noTowers := `name = "x"
builtin = "straights"
`
	if _, err := Parse([]byte(noTowers)); !errors.Is(err, ErrNoTowers) {
		t.Errorf("Expected %v, got %v", ErrNoTowers, err)
	}

	ragged := strings.Replace(minimal, `builtin = "straights"`, `map = ["#####", "#####", "#> <#", "####", "#####"]`, 1)
	if _, err := Parse([]byte(ragged)); !errors.Is(err, terrain.ErrRaggedMap) {
		t.Errorf("Expected %v, got %v", terrain.ErrRaggedMap, err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.toml")
	if err := os.WriteFile(path, []byte(minimal), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := LoadAuto(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if l.Name != "tiny" {
		t.Errorf("Expected tiny, got %s", l.Name)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected missing file error")
	}
}

func TestLoadAutoFallsBackToEmbedded(t *testing.T) {
	l, err := LoadAuto("")
	if err != nil {
		t.Fatalf("LoadAuto failed: %v", err)
	}
	if l.Name != "Switchback" {
		t.Errorf("Expected embedded level, got %s", l.Name)
	}
}
