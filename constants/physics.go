package constants

// Projectile Physics Constants (per tick at TickRate)
const (
	// Gravity is added to vertical velocity every tick
	Gravity = 0.2

	// BounceDampening scales and inverts vertical velocity on peg contact
	BounceDampening = 0.5

	BallRadius = 8.0

	// BounceNudge lifts the ball out of the peg after a bounce
	BounceNudge = 5.0

	// Horizontal velocity is redrawn uniformly from [KickMin, KickMax]
	// on spawn and on every bounce
	KickMin = -2.0
	KickMax = 2.0

	SpawnY = 50.0

	// MaxTicksPerDrop bounds headless simulation of a single ball
	MaxTicksPerDrop = 20000
)
