package engine

import "math/rand"

// RandomTempoPolicy draws the next tempo while random mode is engaged. Each
// draw is uniform over [baseline-spread, baseline+spread] clamped to the
// global tempo bounds, and the baseline is always the tempo currently in
// effect, so successive draws form a bounded random walk rather than jumps
// around a fixed anchor.
type RandomTempoPolicy struct {
	rng *rand.Rand
}

func NewRandomTempoPolicy(seed int64) *RandomTempoPolicy {
	return &RandomTempoPolicy{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the tempo for the next interval. A spread of zero returns the
// baseline unchanged.
func (p *RandomTempoPolicy) Next(baseline, spread int) int {
	if spread <= 0 {
		return baseline
	}
	lo := baseline - spread
	if lo < MinTempo {
		lo = MinTempo
	}
	hi := baseline + spread
	if hi > MaxTempo {
		hi = MaxTempo
	}
	return lo + p.rng.Intn(hi-lo+1)
}
