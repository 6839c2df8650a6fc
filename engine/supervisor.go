package engine

import (
	"net"
	"runtime"
	"time"

	"github.com/ravibhatia/moldfeed/affinity"
	"github.com/ravibhatia/moldfeed/ring"
	"github.com/ravibhatia/moldfeed/session"
)

// Supervisor wires the raw-events and sequenced-events rings to a Sequencer
// and Publisher, spawns each on its own goroutine pinned to a distinct CPU
// core where the platform supports it, and owns the producer end of the
// raw-events ring.
type Supervisor struct {
	rawEvents  *ring.Ring[[]byte]
	seqEvents  *ring.Ring[SequencedEvent]
	sequencer  *Sequencer
	publisher  *Publisher
	sessionTbl *session.Table
}

// Config parameterizes Supervisor construction.
type Config struct {
	RingCapacity    int
	MaxPacketBytes  int
	FlushInterval   time.Duration
	SequencerCoreID int
	PublisherCoreID int
}

// New allocates both rings and constructs the Sequencer and Publisher, but
// does not start their goroutines; call Start for that.
func New(cfg Config, conn net.PacketConn, dest net.Addr) *Supervisor {
	raw := ring.New[[]byte](cfg.RingCapacity)
	seq := ring.New[SequencedEvent](cfg.RingCapacity)
	tbl := session.New()

	return &Supervisor{
		rawEvents:  raw,
		seqEvents:  seq,
		sequencer:  NewSequencer(raw, seq, tbl),
		publisher:  NewPublisher(seq, conn, dest, cfg.MaxPacketBytes, cfg.FlushInterval),
		sessionTbl: tbl,
	}
}

// Start spawns the sequencer and publisher goroutines, each attempting to
// pin itself to the configured core before entering its hot loop. Pinning
// failure costs latency headroom, not correctness, so it is not surfaced
// here.
func (s *Supervisor) Start(cfg Config) {
	go func() {
		_ = affinity.Pin(cfg.SequencerCoreID)
		defer runtime.UnlockOSThread()
		s.sequencer.Run()
	}()

	go func() {
		_ = affinity.Pin(cfg.PublisherCoreID)
		defer runtime.UnlockOSThread()
		s.publisher.Run()
	}()
}

// PushEvent pushes payload onto the raw-events ring, spin-retrying on Full.
// It is the supervisor's sole entry point for feeding the pipeline.
func (s *Supervisor) PushEvent(payload []byte) {
	s.rawEvents.SpinPush(payload, runtime.Gosched)
}

// Stop signals both the sequencer and publisher to finish their current
// iteration and return; the publisher flushes any buffered messages first.
func (s *Supervisor) Stop() {
	s.sequencer.Stop()
	s.publisher.Stop()
}
