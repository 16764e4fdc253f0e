package parameter

import "github.com/lixenwraith/vi-defense/terrain"

// Waves
const (
	// WaveTicks is the interval between wave starts, also the checkpoint interval
	WaveTicks = 20 * TicksPerSecond

	// SpawnIntervalTicks separates consecutive spawns from the same entrance
	SpawnIntervalTicks = 40

	// SpawnJitter is the maximum lateral spawn offset as a fraction of a tile
	SpawnJitter = 0.3
)

// Enemies
const (
	// EnemyRadius is the collision radius of every walker
	EnemyRadius = 0.3 * terrain.TileSize

	// ImpulseDecay scales remaining impulse every tick
	ImpulseDecay = 0.95

	// ImpactBounce is the share of a collision correction fed back into the impulse
	ImpactBounce = 0.5
)

// Explosions
const (
	// ExplosionTicks is the lifetime of an explosion
	ExplosionTicks = 16

	// ExplosionImpulseMax caps the impulse an explosion can leave on a walker
	ExplosionImpulseMax = terrain.TileSize / 2
)

// Flee (pusillanimous) state machine
const (
	// FleeSpeedMultiplier is applied to walker speed while fleeing
	FleeSpeedMultiplier = 2.5

	// FleeDashTicks is how long the boosted speed lasts
	FleeDashTicks = 100

	// FleeCooldownTicks follow the dash before the walker can flee again
	FleeCooldownTicks = 300
)

// Construction
const (
	// BuildTicksPerCost converts a tower cost into build progress units
	BuildTicksPerCost = TicksPerSecond

	// UpgradeCostFactor scales the tower cost for each upgrade
	UpgradeCostFactor = 0.5

	// MaxUpgradeSlots bounds upgrade flags to the bits of a uint32
	MaxUpgradeSlots = 32

	// PlayerBuildRate is the progress the player adds per tick
	PlayerBuildRate = 1.0

	// FactoryBuildRate is the progress one adjacent factory adds per tick
	FactoryBuildRate = 0.5

	// FactoryMaxRotationSpeed and FactoryRotationAccel drive the factory spin
	FactoryMaxRotationSpeed = 0.03
	FactoryRotationAccel    = 0.0005

	// FactoryKind marks tower types that assist construction
	FactoryKind = "factory"

	// QueuedAlpha is the sprite alpha of towers waiting to be built
	QueuedAlpha = 0.5
)
