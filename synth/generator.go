package synth

import (
	"math/rand/v2"

	"github.com/ravibhatia/moldfeed/matching"
)

// recentIDCapacity bounds the per-side memory of recently-submitted order
// ids available to Cancel and Update draws.
const recentIDCapacity = 1_000_000

var quantities = [5]uint64{1, 2, 5, 10, 20}

// OrderGenerator fills in the concrete fields of an order given its
// timestamp, side, and kind.
type OrderGenerator interface {
	Generate(timestamp uint64, side matching.Side, kind matching.Kind, rng *rand.Rand) matching.Order
}

// recentIDRing is a fixed-capacity ring of recently-submitted order ids,
// pre-filled with the sentinel id 0 so Cancel/Update draws never panic
// before the ring has seen recentIDCapacity limit orders.
type recentIDRing struct {
	ids  [recentIDCapacity]uint64
	next int
}

func (r *recentIDRing) push(id uint64) {
	r.ids[r.next] = id
	r.next = (r.next + 1) % recentIDCapacity
}

func (r *recentIDRing) sample(rng *rand.Rand) uint64 {
	return r.ids[rng.IntN(recentIDCapacity)]
}

// GaussianGenerator draws prices from a truncated (absolute-valued)
// Gaussian distribution scaled into integer cents, and quantities
// uniformly from a small fixed set of round lot sizes.
type GaussianGenerator struct {
	mean   float64
	stddev float64

	counter uint64
	bids    recentIDRing
	asks    recentIDRing
}

// NewGaussianGenerator creates a generator whose prices are drawn from
// N(mean, stddev), taken as an absolute value, and scaled to cents.
func NewGaussianGenerator(mean, stddev float64) *GaussianGenerator {
	return &GaussianGenerator{mean: mean, stddev: stddev}
}

func (g *GaussianGenerator) price(rng *rand.Rand) uint64 {
	sample := rng.NormFloat64()*g.stddev + g.mean
	if sample < 0 {
		sample = -sample
	}
	return uint64(sample * 100)
}

func (g *GaussianGenerator) ringFor(side matching.Side) *recentIDRing {
	if side == matching.Bid {
		return &g.bids
	}
	return &g.asks
}

// Generate builds one order of the requested side and kind.
func (g *GaussianGenerator) Generate(timestamp uint64, side matching.Side, kind matching.Kind, rng *rand.Rand) matching.Order {
	qty := quantities[rng.IntN(len(quantities))]

	switch kind {
	case matching.KindLimit:
		g.counter++
		g.ringFor(side).push(g.counter)
		return matching.Order{ID: g.counter, Side: side, Timestamp: timestamp, Kind: kind, Qty: qty, Price: g.price(rng)}
	case matching.KindMarket:
		g.counter++
		return matching.Order{ID: g.counter, Side: side, Timestamp: timestamp, Kind: kind, Qty: qty}
	case matching.KindCancel:
		return matching.Order{ID: g.ringFor(side).sample(rng), Side: side, Timestamp: timestamp, Kind: kind}
	case matching.KindUpdate:
		g.counter++
		return matching.Order{
			ID:        g.counter,
			Side:      side,
			Timestamp: timestamp,
			Kind:      kind,
			OldID:     g.ringFor(side).sample(rng),
			Qty:       qty,
			Price:     g.price(rng),
		}
	default:
		panic("synth: unknown order kind")
	}
}
