package physics

import (
	"fmt"

	"github.com/lixenwraith/plinko/constants"
	"github.com/lixenwraith/plinko/vmath"
)

// CollisionPolicy selects how overlapping pegs within one tick are resolved
type CollisionPolicy uint8

const (
	// ResolveAll bounces off every overlapping peg in board order. Each
	// bounce nudges the ball before the next peg is tested, so a single tick
	// can produce a double bounce.
	ResolveAll CollisionPolicy = iota
	// ResolveFirst applies at most one bounce per tick
	ResolveFirst
)

func (p CollisionPolicy) String() string {
	switch p {
	case ResolveAll:
		return "all"
	case ResolveFirst:
		return "first"
	default:
		return fmt.Sprintf("CollisionPolicy(%d)", uint8(p))
	}
}

// ParseCollisionPolicy accepts "all" or "first"; empty selects ResolveAll
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch s {
	case "", "all":
		return ResolveAll, nil
	case "first":
		return ResolveFirst, nil
	default:
		return ResolveAll, fmt.Errorf("unknown collision policy %q", s)
	}
}

// Profile holds per-tick tuning for a projectile. Values are per tick at
// constants.TickRate, not per second.
type Profile struct {
	Gravity    float64 // added to VY every tick
	Dampening  float64 // bounce keeps this fraction of VY, inverted
	BallRadius float64
	Nudge      float64 // upward de-penetration after a bounce
	KickMin    float64 // VX is redrawn from [KickMin, KickMax]
	KickMax    float64
	SpawnY     float64
	Policy     CollisionPolicy
}

// DefaultProfile is the stock tuning, pre-defined so callers can share it
var DefaultProfile = Profile{
	Gravity:    constants.Gravity,
	Dampening:  constants.BounceDampening,
	BallRadius: constants.BallRadius,
	Nudge:      constants.BounceNudge,
	KickMin:    constants.KickMin,
	KickMax:    constants.KickMax,
	SpawnY:     constants.SpawnY,
	Policy:     ResolveAll,
}

// Validate checks ranges the integrator relies on
func (p *Profile) Validate() error {
	switch {
	case !(p.Dampening > 0 && p.Dampening < 1):
		return fmt.Errorf("dampening must be in (0,1), got %v", p.Dampening)
	case !(p.Gravity > 0) || !vmath.IsFinite(p.Gravity):
		return fmt.Errorf("gravity must be positive and finite, got %v", p.Gravity)
	case !(p.BallRadius >= 0) || !vmath.IsFinite(p.BallRadius):
		return fmt.Errorf("ball radius must be non-negative and finite, got %v", p.BallRadius)
	case !(p.Nudge >= 0) || !vmath.IsFinite(p.Nudge):
		return fmt.Errorf("nudge must be non-negative and finite, got %v", p.Nudge)
	case !vmath.IsFinite(p.KickMin) || !vmath.IsFinite(p.KickMax):
		return fmt.Errorf("kick range [%v, %v] must be finite", p.KickMin, p.KickMax)
	case !vmath.IsFinite(p.SpawnY):
		return fmt.Errorf("spawn y must be finite, got %v", p.SpawnY)
	case !(p.KickMax >= p.KickMin):
		return fmt.Errorf("kick range [%v, %v] is inverted", p.KickMin, p.KickMax)
	case p.Policy > ResolveFirst:
		return fmt.Errorf("unknown collision policy %d", p.Policy)
	}
	return nil
}
