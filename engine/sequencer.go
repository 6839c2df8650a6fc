package engine

import (
	"runtime"

	"github.com/ravibhatia/moldfeed/ring"
	"github.com/ravibhatia/moldfeed/session"
)

// Sequencer consumes raw payloads from an input ring, stamps each with the
// next (session, sequence) pair, and forwards the result to an output ring.
// It assigns exactly one sequence number per payload and never drops or
// reorders input.
type Sequencer struct {
	input   *ring.Ring[[]byte]
	output  *ring.Ring[SequencedEvent]
	table   *session.Table
	stopped chan struct{}
}

// NewSequencer builds a Sequencer reading from input and writing to output,
// assigning sequence numbers from table.
func NewSequencer(input *ring.Ring[[]byte], output *ring.Ring[SequencedEvent], table *session.Table) *Sequencer {
	return &Sequencer{
		input:   input,
		output:  output,
		table:   table,
		stopped: make(chan struct{}),
	}
}

// Run drives the hot loop until Stop is called. Intended to run on its own
// goroutine, pinned to a dedicated core by the caller.
func (s *Sequencer) Run() {
	for {
		select {
		case <-s.stopped:
			return
		default:
		}

		payload, ok := s.input.Pop()
		if !ok {
			runtime.Gosched()
			continue
		}

		ev := SequencedEvent{
			Payload:        payload,
			SequenceNumber: s.table.Next(),
			SessionID:      s.table.ID(),
		}
		s.output.SpinPush(ev, runtime.Gosched)
	}
}

// Stop signals Run to return after its current iteration.
func (s *Sequencer) Stop() {
	close(s.stopped)
}
