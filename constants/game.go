package constants

import "time"

// Game Loop Timing Constants
const (
	// TickRate is the simulation rate the physics constants are tuned for.
	// Gravity and kick values are per tick, not per second.
	TickRate = 60

	// TickInterval is the wall-clock spacing of simulation ticks
	TickInterval = time.Second / TickRate

	// DefaultWager is the opening bet, matches the bet field placeholder
	DefaultWager = "10.00"

	// DefaultSeed is used when no seed is configured and time seeding is off
	DefaultSeed uint64 = 0x5eed
)
