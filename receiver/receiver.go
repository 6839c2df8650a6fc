// Package receiver implements the consumer-side datagram parser: it reads
// MoldUDP64-style datagrams off a UDP socket, splits them into message
// blocks without copying, decodes the typed payloads, and pushes the
// decoded events onto a wait-free ring for a downstream handler thread.
package receiver

import (
	"net"
	"runtime"

	"github.com/ravibhatia/moldfeed/ring"
	"github.com/ravibhatia/moldfeed/wire"
)

// maxDatagramBytes bounds the reusable receive buffer; datagrams larger
// than this are truncated by the OS read and handled like a datagram with a
// truncated block: the complete blocks before the cut are delivered and the
// rest is dropped.
const maxDatagramBytes = 2048

// Receiver owns a UDP socket and the producer end of an output ring of
// decoded events. It is single-threaded and does not reassemble state
// across datagrams.
type Receiver struct {
	conn    net.PacketConn
	output  *ring.Ring[wire.Event]
	buf     []byte
	stopped chan struct{}
}

// New builds a Receiver reading from conn and pushing decoded events onto
// output.
func New(conn net.PacketConn, output *ring.Ring[wire.Event]) *Receiver {
	return &Receiver{
		conn:    conn,
		output:  output,
		buf:     make([]byte, maxDatagramBytes),
		stopped: make(chan struct{}),
	}
}

// Run drives the hot loop: read one datagram, parse it, dispatch decoded
// events to the output ring, repeat. A read failure is fatal to this loop
// by design — there is no recovery path for a failed receive.
func (r *Receiver) Run() {
	for {
		select {
		case <-r.stopped:
			return
		default:
		}

		n, _, err := r.conn.ReadFrom(r.buf)
		if err != nil {
			panic(err)
		}
		r.handleDatagram(r.buf[:n])
	}
}

func (r *Receiver) handleDatagram(data []byte) {
	if len(data) < wire.HeaderSize {
		return
	}
	h, err := wire.ParseHeader(data)
	if err != nil {
		return
	}

	body := data[wire.HeaderSize:]
	blocks := wire.SplitBlocks(body, int(h.MessageCount))
	for _, blk := range blocks {
		ev, err := wire.DecodePayload(blk.Payload)
		if err != nil {
			continue
		}
		r.output.SpinPush(ev, runtime.Gosched)
	}
}

// Stop signals Run to return after its current iteration. Since Run blocks
// on ReadFrom, callers that need a prompt stop should also close or set a
// deadline on the underlying connection.
func (r *Receiver) Stop() {
	close(r.stopped)
}
