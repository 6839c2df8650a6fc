package engine

import (
	"net"
	"runtime"
	"time"

	"github.com/ravibhatia/moldfeed/ring"
	"github.com/ravibhatia/moldfeed/wire"
)

// Publisher batches sequenced payloads into bounded-size datagrams and
// writes them to a UDP destination under a size bound and a flush-interval
// time bound.
type Publisher struct {
	input *ring.Ring[SequencedEvent]
	conn  net.PacketConn
	dest  net.Addr

	maxPacketBytes int
	flushInterval  time.Duration

	buf               []byte
	messageCount      uint16
	firstSequence     uint64
	firstSession      wire.SessionID
	nextFlushDeadline time.Time

	stopped chan struct{}
}

// NewPublisher builds a Publisher reading sequenced events from input and
// writing datagrams to dest over conn. maxPacketBytes bounds total datagram
// size, header included; flushInterval bounds how long a non-full datagram
// can wait before it is sent anyway. A single payload longer than
// maxPacketBytes minus the header and its 2-byte length prefix is still
// sent, alone in its own datagram, which then exceeds maxPacketBytes.
func NewPublisher(input *ring.Ring[SequencedEvent], conn net.PacketConn, dest net.Addr, maxPacketBytes int, flushInterval time.Duration) *Publisher {
	p := &Publisher{
		input:          input,
		conn:           conn,
		dest:           dest,
		maxPacketBytes: maxPacketBytes,
		flushInterval:  flushInterval,
		stopped:        make(chan struct{}),
	}
	p.resetBuffer()
	p.nextFlushDeadline = time.Now().Add(flushInterval)
	return p
}

func (p *Publisher) resetBuffer() {
	p.buf = make([]byte, wire.HeaderSize, p.maxPacketBytes)
	p.messageCount = 0
}

// enqueue appends e to the current datagram, flushing first if the session
// changed or the append would overflow the size bound.
func (p *Publisher) enqueue(e SequencedEvent) {
	if p.messageCount == 0 {
		p.firstSession = e.SessionID
		p.firstSequence = e.SequenceNumber
	} else if e.SessionID != p.firstSession {
		p.flush()
		p.firstSession = e.SessionID
		p.firstSequence = e.SequenceNumber
	}

	if len(p.buf)+wire.LengthPrefixSize+len(e.Payload) > p.maxPacketBytes {
		p.flush()
		p.firstSession = e.SessionID
		p.firstSequence = e.SequenceNumber
	}

	p.buf = wire.EncodeMessage(p.buf, e.Payload)
	p.messageCount++
}

// flush overwrites the reserved header and emits the buffer, if non-empty.
// An empty buffer only restarts the flush deadline.
func (p *Publisher) flush() {
	if p.messageCount == 0 {
		p.nextFlushDeadline = time.Now().Add(p.flushInterval)
		return
	}
	h := wire.Header{
		SessionID:           p.firstSession,
		FirstSequenceNumber: p.firstSequence,
		MessageCount:        p.messageCount,
	}
	h.Encode(p.buf[0:wire.HeaderSize])
	if _, err := p.conn.WriteTo(p.buf, p.dest); err != nil {
		panic(err)
	}
	p.resetBuffer()
	p.nextFlushDeadline = time.Now().Add(p.flushInterval)
}

// Run drives the hot loop: flush when the deadline has passed, else pop and
// enqueue, else spin. Intended to run on its own goroutine, pinned to a
// dedicated core by the caller. A UDP write failure is fatal to this loop,
// by design: there is no recovery path for a failed send.
func (p *Publisher) Run() {
	for {
		select {
		case <-p.stopped:
			p.flush()
			return
		default:
		}

		if !time.Now().Before(p.nextFlushDeadline) {
			p.flush()
			continue
		}

		ev, ok := p.input.Pop()
		if !ok {
			runtime.Gosched()
			continue
		}
		p.enqueue(ev)
	}
}

// Stop signals Run to flush any buffered messages and return.
func (p *Publisher) Stop() {
	close(p.stopped)
}
