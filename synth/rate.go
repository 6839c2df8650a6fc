// Package synth generates synthetic order flow for driving and
// benchmarking the matching engine: a Poisson-timed stream of limit,
// market, cancel, and update orders drawn from parameterised distributions.
package synth

import (
	"math/rand/v2"
	"time"
)

const nanosPerSecond = 1_000_000_000

// RateController decides how much simulated time elapses before the next
// event.
type RateController interface {
	NextDelay(rng *rand.Rand) time.Duration
}

// PoissonRate draws inter-arrival gaps from an exponential distribution
// with a constant rate, in events per second, matching a homogeneous
// Poisson process.
type PoissonRate struct {
	rate float64
}

// NewPoissonRate creates a PoissonRate generating events at eventsPerSecond
// on average. Panics if eventsPerSecond is not positive.
func NewPoissonRate(eventsPerSecond float64) *PoissonRate {
	if eventsPerSecond <= 0 {
		panic("synth: rate must be positive")
	}
	return &PoissonRate{rate: eventsPerSecond}
}

// NextDelay samples one inter-arrival gap.
func (p *PoissonRate) NextDelay(rng *rand.Rand) time.Duration {
	seconds := rng.ExpFloat64() / p.rate
	return time.Duration(seconds * nanosPerSecond)
}
