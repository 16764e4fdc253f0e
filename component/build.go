package component

import "github.com/lixenwraith/vi-defense/core"

// BuildKind distinguishes new towers from upgrades in the build queue
type BuildKind uint8

const (
	BuildTower BuildKind = iota
	BuildUpgrade
)

// BuildType carries the per-kind build data
// CanBuild is false while the upgraded tower is still under construction
type BuildType struct {
	Kind        BuildKind
	CanBuild    bool
	UpgradeFlag uint32
}

// Buildable reports whether progress may be added to an order of this type
func (t BuildType) Buildable() bool {
	return t.Kind == BuildTower || t.CanBuild
}

// BuildOrder is one pending construction, progress counts ticks of player work
type BuildOrder struct {
	Cost     float64
	Progress float64
	Row, Col int
	Tower    core.Entity
	Type     BuildType
}

// Complete reports whether the order has accumulated its full cost
func (o *BuildOrder) Complete() bool {
	return o.Progress >= o.Cost
}

// Fraction is the build progress in [0, 1]
func (o *BuildOrder) Fraction() float64 {
	if o.Cost <= 0 {
		return 1
	}
	f := o.Progress / o.Cost
	if f > 1 {
		return 1
	}
	return f
}
