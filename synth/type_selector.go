package synth

import (
	"math/rand/v2"

	"github.com/ravibhatia/moldfeed/matching"
)

// TypeSelector samples the side and kind of the next generated order.
type TypeSelector interface {
	Sample(rng *rand.Rand) (matching.Side, matching.Kind)
}

// UniformSelector chooses a side by a Bernoulli draw and an order kind by
// cumulative-weight cutoffs over the four kinds, independent of side.
type UniformSelector struct {
	bidProportion float64
	limitCutoff   float64
	marketCutoff  float64
	cancelCutoff  float64
	typeSum       float64
}

// NewUniformSelector builds a selector. bidRate is the probability of
// drawing Bid over Ask; the remaining rates are relative weights for
// Limit, Market, Cancel, and Update respectively and need not sum to 1 —
// they are normalized against their own sum. Panics if any rate is
// negative or the kind rates sum to zero.
func NewUniformSelector(bidRate, limitRate, marketRate, cancelRate, updateRate float64) *UniformSelector {
	if bidRate < 0 || limitRate < 0 || marketRate < 0 || cancelRate < 0 || updateRate < 0 {
		panic("synth: rates must be nonnegative")
	}
	typeSum := limitRate + marketRate + cancelRate + updateRate
	if typeSum <= 0 {
		panic("synth: order kind rates must sum to a positive value")
	}
	return &UniformSelector{
		bidProportion: bidRate,
		limitCutoff:   limitRate,
		marketCutoff:  limitRate + marketRate,
		cancelCutoff:  limitRate + marketRate + cancelRate,
		typeSum:       typeSum,
	}
}

// Sample draws one (side, kind) pair.
func (s *UniformSelector) Sample(rng *rand.Rand) (matching.Side, matching.Kind) {
	side := matching.Ask
	if rng.Float64() <= s.bidProportion {
		side = matching.Bid
	}

	sample := rng.Float64() * s.typeSum
	switch {
	case sample < s.limitCutoff:
		return side, matching.KindLimit
	case sample < s.marketCutoff:
		return side, matching.KindMarket
	case sample < s.cancelCutoff:
		return side, matching.KindCancel
	default:
		return side, matching.KindUpdate
	}
}
