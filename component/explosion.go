package component

// ExplosionComponent is a stationary blast whose radius eases out over its lifetime
// OldRadius lets the explosion system tell when a walker crosses the expanding edge
type ExplosionComponent struct {
	X, Y      float64
	Radius    float64
	OldRadius float64
	MaxRadius float64
	Age       int
}
