package engine

import (
	"testing"
	"time"

	"github.com/ravibhatia/moldfeed/ring"
	"github.com/ravibhatia/moldfeed/session"
)

func TestSequencerAssignsIncreasingSequenceNumbers(t *testing.T) {
	in := ring.New[[]byte](8)
	out := ring.New[SequencedEvent](8)
	tbl := session.New()
	seq := NewSequencer(in, out, tbl)

	go seq.Run()
	defer seq.Stop()

	in.Push([]byte("a"))
	in.Push([]byte("b"))
	in.Push([]byte("c"))

	var got []SequencedEvent
	deadline := time.Now().Add(time.Second)
	for len(got) < 3 && time.Now().Before(deadline) {
		if ev, ok := out.Pop(); ok {
			got = append(got, ev)
		}
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	for i, ev := range got {
		want := uint64(i + 1)
		if ev.SequenceNumber != want {
			t.Errorf("event %d: got sequence %d, want %d", i, ev.SequenceNumber, want)
		}
		if ev.SessionID != tbl.ID() {
			t.Errorf("event %d: session id mismatch", i)
		}
	}
}
