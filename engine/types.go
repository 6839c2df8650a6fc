// Package engine implements the producer-side pipeline: a sequencer that
// stamps raw payloads with a session and sequence number, and a publisher
// that batches sequenced payloads into bounded UDP datagrams. A supervisor
// wires the two together on dedicated, optionally core-pinned goroutines.
package engine

import "github.com/ravibhatia/moldfeed/wire"

// SequencedEvent pairs a raw payload with the (session, sequence) stamp the
// sequencer assigned it.
type SequencedEvent struct {
	Payload        []byte
	SequenceNumber uint64
	SessionID      wire.SessionID
}
