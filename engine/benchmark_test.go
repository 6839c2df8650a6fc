package engine

import (
	"testing"

	"github.com/ravibhatia/moldfeed/ring"
	"github.com/ravibhatia/moldfeed/session"
)

func BenchmarkSequencerHotLoop(b *testing.B) {
	in := ring.New[[]byte](1024)
	out := ring.New[SequencedEvent](1024)
	tbl := session.New()
	seq := NewSequencer(in, out, tbl)

	payload := []byte{0x62, 0, 0, 0, 0, 0, 0}

	go seq.Run()
	defer seq.Stop()

	go func() {
		for {
			out.Pop()
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in.SpinPush(payload, nil)
	}
}
