package component

// MobComponent is a world position paired with the previous tick's position
// Old values feed interpolation and edge-crossing tests
type MobComponent struct {
	X, Y       float64
	OldX, OldY float64
}

// NewMob places a mob with no motion history
func NewMob(x, y float64) MobComponent {
	return MobComponent{X: x, Y: y, OldX: x, OldY: y}
}

// WalkerComponent moves a mob along the path, negative speed walks backwards
type WalkerComponent struct {
	Speed float64
	Kind  EnemyKind // Shape, cosmetic only
}

// ImpulseComponent is a decaying displacement applied on top of walking
type ImpulseComponent struct {
	DX, DY float64
}

// HealthComponent marks a damageable entity, removed when Current drops to zero
type HealthComponent struct {
	Current float64
	Max     float64
}

// PusillanimousComponent is the flee state counter, 0 means ready to flee
type PusillanimousComponent struct {
	Duration int
}

// ThreatComponent marks a walker that has been threatened and should flee
type ThreatComponent struct{}
