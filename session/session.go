// Package session tracks the current broadcast session tag and hands out
// monotonically increasing per-session sequence numbers to the producer
// pipeline.
package session

import (
	"github.com/google/uuid"

	"github.com/ravibhatia/moldfeed/wire"
)

// NewSessionID generates a fresh session tag from a random UUIDv4's first
// 10 bytes.
func NewSessionID() wire.SessionID {
	u := uuid.New()
	var id wire.SessionID
	copy(id[:], u[:wire.SessionIDSize])
	return id
}

// Table issues sequence numbers for the active session. A new Table always
// starts a new session; the sequencer never resumes a prior session's
// numbering, so there is no load-from-disk path here.
type Table struct {
	id   wire.SessionID
	next uint64
}

// New starts a fresh session with a freshly generated id and sequence
// numbering starting at 1.
func New() *Table {
	return &Table{id: NewSessionID(), next: 1}
}

// ID returns the session's tag.
func (t *Table) ID() wire.SessionID {
	return t.id
}

// Next returns the next sequence number to assign and advances the counter.
// Not safe for concurrent use; the sequencer thread is the sole caller.
func (t *Table) Next() uint64 {
	n := t.next
	t.next++
	return n
}

// Peek returns the next sequence number without advancing the counter.
func (t *Table) Peek() uint64 {
	return t.next
}
