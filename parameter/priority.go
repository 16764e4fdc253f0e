package parameter

// System Execution Priorities (lower runs first)
// Gaps are reserved for systems registered from outside the core
const (
	PriorityMemory       = 10 // Position history before anything moves
	PriorityStatusEffect = 20
	PriorityWalk         = 30
	PriorityProjectile   = 40 // External
	PriorityTargeting    = 50 // External
	PriorityImpulse      = 60
	PriorityExplosion    = 70 // After impulse so edge crossings see this tick's motion
	PriorityCosmetic     = 80 // External
	PriorityDeath        = 90
	PrioritySpawn        = 100
	PriorityBuild        = 110
	PriorityWrap         = 120
)
