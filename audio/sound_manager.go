// Package audio plays synthesized game sounds through the system speaker.
// Every method is safe to call when the speaker failed to initialize.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/plinko/constants"
)

// SoundManager mixes one-shot effects into a single speaker stream
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  [soundTypeCount]time.Time
}

func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; the game runs silent if this fails
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, sm.cfg.BufferSize); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops playback and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues soundType. Repeats of the same sound closer than MinSoundGap
// are dropped so a burst of bounces does not stack up.
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || soundType < 0 || soundType >= soundTypeCount {
		return
	}

	now := time.Now()
	if now.Sub(sm.lastPlayed[soundType]) < constants.MinSoundGap {
		return
	}
	sm.lastPlayed[soundType] = now

	streamer := GetSoundEffect(soundType, &sm.cfg)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlaySettle picks the settle or jackpot sound for a bin multiplier
func (sm *SoundManager) PlaySettle(multiplier float64) {
	sm.Play(SettleSound(multiplier, sm.cfg.JackpotMultiplier))
}

// SettleSound maps a multiplier to the sound that announces it
func SettleSound(multiplier, jackpot float64) SoundType {
	if multiplier >= jackpot {
		return SoundJackpot
	}
	return SoundSettle
}

// ToggleMute flips muting and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
