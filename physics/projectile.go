package physics

import (
	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/scoring"
	"github.com/lixenwraith/plinko/vmath"
)

// StepResult reports what happened during one tick
type StepResult struct {
	Hits    int  // peg bounces applied this tick
	Settled bool // ball crossed the bin line this tick
}

// Projectile is the falling ball. It moves from falling to settled exactly
// once; a settled projectile never changes again.
type Projectile struct {
	body    Body
	profile *Profile
	rng     *vmath.FastRand

	ticks     int
	settled   bool
	binIndex  int
	payout    float64
	hasPayout bool
}

// NewProjectile places a ball at (x, y) with horizontal velocity vx and no
// vertical velocity. profile and rng are retained, not copied.
func NewProjectile(x, y, vx float64, profile *Profile, rng *vmath.FastRand) *Projectile {
	return &Projectile{
		body:     Body{X: x, Y: y, VX: vx},
		profile:  profile,
		rng:      rng,
		binIndex: -1,
	}
}

// Spawn drops a ball from the top center of b with a random horizontal kick
func Spawn(b *board.Board, profile *Profile, rng *vmath.FastRand) *Projectile {
	vx := rng.Uniform(profile.KickMin, profile.KickMax)
	return NewProjectile(b.Width()/2, profile.SpawnY, vx, profile, rng)
}

// Step advances one tick: gravity, motion, peg collisions, then the bin line
// check. wager is only read on the settling tick. An invalid wager still
// settles the ball and resolves its bin, but no payout is stored and the
// *scoring.InvalidWagerError is returned. Settled projectiles ignore Step.
func (p *Projectile) Step(b *board.Board, wager float64) (StepResult, error) {
	if p.settled {
		return StepResult{}, nil
	}

	p.ticks++
	Integrate(&p.body, 0, p.profile.Gravity)

	res := StepResult{
		Hits: ResolvePegHits(&p.body, b, p.profile, p.rng),
	}

	if p.body.Y < b.BinLine() {
		return res, nil
	}

	p.settled = true
	p.binIndex = b.BinIndexFor(p.body.X)
	res.Settled = true

	payout, err := scoring.Payout(wager, p.binIndex, b)
	if err != nil {
		return res, err
	}
	p.payout = payout
	p.hasPayout = true
	return res, nil
}

func (p *Projectile) Position() (x, y float64) { return p.body.X, p.body.Y }

func (p *Projectile) Velocity() (vx, vy float64) { return p.body.VX, p.body.VY }

// Body returns a snapshot of the kinematic state
func (p *Projectile) Body() Body { return p.body }

func (p *Projectile) Settled() bool { return p.settled }

// BinIndex is the resolved bin once settled, -1 while falling
func (p *Projectile) BinIndex() int { return p.binIndex }

// Payout returns the settled payout; ok is false while falling or when the
// wager was rejected at settle time
func (p *Projectile) Payout() (payout float64, ok bool) { return p.payout, p.hasPayout }

// Ticks counts Step calls that advanced the ball
func (p *Projectile) Ticks() int { return p.ticks }
