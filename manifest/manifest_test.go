package manifest

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/terrain"
)

func newWorld() *engine.World {
	return engine.NewWorld(engine.NewLevel("test", 1, terrain.MustParse(terrain.Switchback), nil, nil))
}

func TestInstallRunsByPriority(t *testing.T) {
	w := newWorld()
	if err := Install(w); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	want := []string{"memory", "pusillanimity", "walk", "impulse", "explosion", "death", "spawn", "build", "wrap"}
	got := w.Systems()
	if len(got) != len(want) {
		t.Fatalf("Expected %d systems, got %d", len(want), len(got))
	}
	for i, s := range got {
		if s.Name() != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], s.Name())
		}
	}
}

func TestInstallSubset(t *testing.T) {
	w := newWorld()
	if err := Install(w, "wrap", "walk"); err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	got := w.Systems()
	if len(got) != 2 || got[0].Name() != "walk" || got[1].Name() != "wrap" {
		t.Errorf("Expected walk then wrap, got %v", got)
	}
}

func TestInstallUnknown(t *testing.T) {
	w := newWorld()
	err := Install(w, "walk", "teleport")
	if !errors.Is(err, ErrUnknownSystem) {
		t.Fatalf("Expected %v, got %v", ErrUnknownSystem, err)
	}
	if n := len(w.Systems()); n != 0 {
		t.Errorf("Expected nothing installed, got %d systems", n)
	}
}

func TestRegisteredNamesMatchSystems(t *testing.T) {
	w := newWorld()
	MustInstall(w)
	for _, s := range w.Systems() {
		found := false
		for _, name := range ActiveSystems() {
			if name == s.Name() {
				found = true
			}
		}
		if !found {
			t.Errorf("System %s is not listed as active", s.Name())
		}
	}
}
