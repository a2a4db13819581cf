package physics

// Body is a point mass with per-tick velocity
type Body struct {
	X, Y   float64
	VX, VY float64
}

// Integrate advances one tick: v += a; p += v
func Integrate(k *Body, ax, ay float64) {
	k.VX += ax
	k.VY += ay
	k.X += k.VX
	k.Y += k.VY
}

// SetImpulse overrides velocity (hard redirect)
func SetImpulse(k *Body, vx, vy float64) {
	k.VX = vx
	k.VY = vy
}
