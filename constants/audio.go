package constants

import "time"

// Audio Output
const (
	AudioSampleRate = 44100

	// MinSoundGap is the minimum gap between repeats of one sound
	MinSoundGap = 50 * time.Millisecond

	// JackpotMultiplier and above announce with the bell
	JackpotMultiplier = 100.0
)

// Peg Sound Timing
const (
	PegSoundDuration = 30 * time.Millisecond
	PegSoundAttack   = 2 * time.Millisecond
	PegSoundRelease  = 20 * time.Millisecond
)

// Error Sound Timing
const (
	ErrorSoundDuration = 80 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 20 * time.Millisecond
)

// Bell Sound Timing
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Coin Sound Timing
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)
