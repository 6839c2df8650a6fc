package wire

import (
	"bytes"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	var sid SessionID
	copy(sid[:], []byte("sess000001"))
	h := Header{SessionID: sid, FirstSequenceNumber: 42, MessageCount: 3}

	buf := make([]byte, HeaderSize)
	h.Encode(buf)

	got, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if got != h {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, h)
	}
}

func TestParseHeaderShortBuffer(t *testing.T) {
	if _, err := ParseHeader(make([]byte, HeaderSize-1)); err != ErrMalformedFrame {
		t.Fatalf("got err %v, want ErrMalformedFrame", err)
	}
}

func TestEncodeMessageAndSplitBlocks(t *testing.T) {
	var dst []byte
	dst = EncodeMessage(dst, []byte{TypeTestBenchmark, 1, 2, 3, 4, 5})
	dst = EncodeMessage(dst, []byte{TypeAddOrder, 9, 9})

	blocks := SplitBlocks(dst, 2)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if !bytes.Equal(blocks[0].Payload, []byte{TypeTestBenchmark, 1, 2, 3, 4, 5}) {
		t.Fatalf("block 0 payload mismatch: %v", blocks[0].Payload)
	}
	if !bytes.Equal(blocks[1].Payload, []byte{TypeAddOrder, 9, 9}) {
		t.Fatalf("block 1 payload mismatch: %v", blocks[1].Payload)
	}
}

func TestSplitBlocksStopsOnTruncation(t *testing.T) {
	var dst []byte
	dst = EncodeMessage(dst, []byte{TypeTestBenchmark, 1})
	// Declares a block count higher than the data actually holds.
	dst = append(dst, 0, 5, 1, 2) // length prefix says 5, only 2 bytes follow

	blocks := SplitBlocks(dst, 3)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1 (truncated second block skipped)", len(blocks))
	}
}

func TestSplitBlocksRespectsCount(t *testing.T) {
	var dst []byte
	dst = EncodeMessage(dst, []byte{TypeTestBenchmark, 1})
	dst = EncodeMessage(dst, []byte{TypeTestBenchmark, 2})

	blocks := SplitBlocks(dst, 1)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
}

func TestTestBenchmarkRoundTrip(t *testing.T) {
	want := TestBenchmark{Timestamp: 0x0000123456789abc & 0xffffffffffff}
	buf := want.Encode(nil)
	got, err := DecodeTestBenchmark(buf)
	if err != nil {
		t.Fatalf("DecodeTestBenchmark: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestAddOrderRoundTrip(t *testing.T) {
	want := AddOrder{
		StockLocate:    7,
		TrackingNumber: 1,
		Timestamp:      123456789,
		OrderRef:       99887766,
		Side:           SideBuy,
		Shares:         100,
		Price:          1000000,
	}
	copy(want.Stock[:], "AAPL    ")

	buf := want.Encode(nil)
	if len(buf) != addOrderSize {
		t.Fatalf("got %d bytes, want %d", len(buf), addOrderSize)
	}
	got, err := DecodeAddOrder(buf)
	if err != nil {
		t.Fatalf("DecodeAddOrder: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestOrderExecutedRoundTrip(t *testing.T) {
	want := OrderExecuted{
		StockLocate:    7,
		TrackingNumber: 1,
		Timestamp:      123456789,
		OrderRef:       99887766,
		ExecutedShares: 50,
		MatchNumber:    555,
	}
	buf := want.Encode(nil)
	if len(buf) != orderExecutedSize {
		t.Fatalf("got %d bytes, want %d", len(buf), orderExecutedSize)
	}
	got, err := DecodeOrderExecuted(buf)
	if err != nil {
		t.Fatalf("DecodeOrderExecuted: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDecodePayloadDispatch(t *testing.T) {
	add := AddOrder{StockLocate: 1, Side: SideSell, Shares: 5}
	buf := add.Encode(nil)

	ev, err := DecodePayload(buf)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if ev.Type != TypeAddOrder || ev.AddOrder != add {
		t.Fatalf("got %+v, want AddOrder %+v", ev, add)
	}
}

func TestDecodePayloadUnknownType(t *testing.T) {
	_, err := DecodePayload([]byte{'Z', 0, 0, 0})
	if err != ErrUnknownMessageType {
		t.Fatalf("got err %v, want ErrUnknownMessageType", err)
	}
}

func TestDecodePayloadEmpty(t *testing.T) {
	if _, err := DecodePayload(nil); err != ErrMalformedFrame {
		t.Fatalf("got err %v, want ErrMalformedFrame", err)
	}
}
