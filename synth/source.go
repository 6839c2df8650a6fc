package synth

import "math/rand/v2"

// Source composes a rate controller, type selector, order generator, and
// event router into one Poisson-timed synthetic order flow. Each call to
// Next advances the source's internal clock by one sampled inter-arrival
// gap and routes exactly one order, so timestamps across a run are
// non-decreasing by construction.
type Source struct {
	rate      RateController
	selector  TypeSelector
	generator OrderGenerator
	router    EventRouter
	rng       *rand.Rand

	timestamp uint64
}

// NewSource composes a Source from its four parts and a random source.
func NewSource(rate RateController, selector TypeSelector, generator OrderGenerator, router EventRouter, rng *rand.Rand) *Source {
	return &Source{rate: rate, selector: selector, generator: generator, router: router, rng: rng}
}

// Next samples one event and routes it.
func (s *Source) Next() {
	s.timestamp += uint64(s.rate.NextDelay(s.rng).Nanoseconds())
	side, kind := s.selector.Sample(s.rng)
	order := s.generator.Generate(s.timestamp, side, kind, s.rng)
	s.router.Route(order)
}

// Timestamp returns the source's current simulated time in nanoseconds.
func (s *Source) Timestamp() uint64 {
	return s.timestamp
}
