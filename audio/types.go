package audio

import "github.com/lixenwraith/plinko/constants"

// SoundType represents different sound effects
type SoundType int

const (
	SoundPeg     SoundType = iota // Ball bounced off a peg
	SoundSettle                   // Ball landed in a regular bin
	SoundJackpot                  // Ball landed in a jackpot bin
	SoundReject                   // Bet or payout rejected
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundPeg:
		return "peg"
	case SoundSettle:
		return "settle"
	case SoundJackpot:
		return "jackpot"
	case SoundReject:
		return "reject"
	default:
		return "unknown"
	}
}

// Config controls output format and mixing levels
type Config struct {
	SampleRate    int
	BufferSize    int // speaker buffer in samples
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
	// JackpotMultiplier is the lowest multiplier that plays SoundJackpot
	JackpotMultiplier float64
}

// DefaultConfig returns stock levels
func DefaultConfig() Config {
	return Config{
		SampleRate:   constants.AudioSampleRate,
		BufferSize:   constants.AudioSampleRate / 10,
		MasterVolume: 1.0,
		EffectVolumes: [soundTypeCount]float64{
			SoundPeg:     0.25,
			SoundSettle:  0.5,
			SoundJackpot: 0.7,
			SoundReject:  0.4,
		},
		JackpotMultiplier: constants.JackpotMultiplier,
	}
}
