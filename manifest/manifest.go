package manifest

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/registry"
	"github.com/lixenwraith/vi-defense/system"
)

// ErrUnknownSystem is returned by Install for a name with no registered factory
var ErrUnknownSystem = errors.New("unknown system")

var registerOnce sync.Once

// RegisterSystems registers all core system factories with the registry
func RegisterSystems() {
	registry.RegisterSystem("memory", system.NewMemorySystem)
	registry.RegisterSystem("pusillanimity", system.NewPusillanimitySystem)
	registry.RegisterSystem("walk", system.NewWalkSystem)
	registry.RegisterSystem("impulse", system.NewImpulseSystem)
	registry.RegisterSystem("explosion", system.NewExplosionSystem)
	registry.RegisterSystem("death", system.NewDeathSystem)
	registry.RegisterSystem("spawn", system.NewSpawnSystem)
	registry.RegisterSystem("build", system.NewBuildSystem)
	registry.RegisterSystem("wrap", system.NewWrapSystem)
}

// ActiveSystems returns the systems a world runs by default
// Execution order comes from system priorities, not from this list
func ActiveSystems() []string {
	return []string{
		"memory",
		"pusillanimity",
		"walk",
		"impulse",
		"explosion",
		"death",
		"spawn",
		"build",
		"wrap",
	}
}

// Install creates the named systems on a world, all active systems when names is empty
// Nothing is installed when a name is unknown
func Install(w *engine.World, names ...string) error {
	registerOnce.Do(RegisterSystems)
	if len(names) == 0 {
		names = ActiveSystems()
	}

	factories := make([]registry.SystemFactory, 0, len(names))
	for _, name := range names {
		f, ok := registry.GetSystem(name)
		if !ok {
			return errors.Wrapf(ErrUnknownSystem, "%q", name)
		}
		factories = append(factories, f)
	}
	for _, f := range factories {
		w.AddSystem(f(w))
	}
	return nil
}

// MustInstall installs all active systems and panics on a registry mismatch
func MustInstall(w *engine.World) {
	if err := Install(w); err != nil {
		panic(err)
	}
}
