package physics

import (
	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/vmath"
)

// ResolvePegHits tests k against every peg in board order and applies a
// stochastic bounce for each overlap: VY is inverted and damped, VX is
// replaced by a uniform kick, and the body is lifted by Nudge. Returns the
// number of bounces applied.
//
// The scan is O(pegs) per call with no broad phase. Fine for a few hundred
// pegs; larger lattices would want row bucketing here.
func ResolvePegHits(k *Body, b *board.Board, p *Profile, rng *vmath.FastRand) int {
	hits := 0
	for i, n := 0, b.PegCount(); i < n; i++ {
		peg := b.Peg(i)
		// NaN distances compare false and count as a miss
		if !vmath.CirclesOverlap(k.X, k.Y, p.BallRadius, peg.X, peg.Y, b.PegRadius()) {
			continue
		}

		SetImpulse(k, rng.Uniform(p.KickMin, p.KickMax), -k.VY*p.Dampening)
		k.Y -= p.Nudge
		hits++

		if p.Policy == ResolveFirst {
			break
		}
	}
	return hits
}
