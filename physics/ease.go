package physics

import "math"

// Geometric easing: velocity is scaled by r = maxSpeed/(maxSpeed+accel) every tick
// so sustained acceleration converges on maxSpeed

func resistance(maxSpeed, accel float64) float64 {
	return maxSpeed / (maxSpeed + accel)
}

// AccelGeometric accelerates toward maxSpeed, overshooting is not checked
func AccelGeometric(x, speed, maxSpeed, accel float64) (float64, float64) {
	speed = resistance(maxSpeed, accel) * (speed + accel)
	return x + speed, speed
}

// DecayGeometric coasts with the same resistance and no acceleration
func DecayGeometric(x, speed, maxSpeed, accel float64) (float64, float64) {
	speed *= resistance(maxSpeed, accel)
	return x + speed, speed
}

// WrapAngle maps an angle into [-pi, pi]
func WrapAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}
