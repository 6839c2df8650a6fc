// Package capture records a stream of decoded wire events to a
// zstd-compressed file for later replay, and replays it back. It adapts
// the teacher's zstd, magic-byte-header snapshot format from order-book
// state into a continuous capture log serving observability and test
// replay instead of recovery; the snapshot's temp-file-plus-rename write is
// not carried over (see NewRecorder).
package capture

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/ravibhatia/moldfeed/wire"
)

// captureMagic is written at the start of every capture file so corrupt or
// foreign files are rejected quickly.
var captureMagic = [8]byte{'M', 'F', 'C', 'A', 'P', 0, 0, 1}

// Recorder appends decoded wire events to a zstd-compressed capture file.
// Each event is length-prefixed by its encoded payload size so Replayer can
// read the stream back one event at a time.
type Recorder struct {
	f   *os.File
	enc *zstd.Encoder
}

// NewRecorder creates (or truncates) the file at path and writes the
// capture header. The file is written directly rather than via a
// temp-file-plus-rename: unlike a point-in-time snapshot, a capture is an
// append-only log whose whole value is in being live during the run it
// records.
func NewRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if _, err := enc.Write(captureMagic[:]); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return nil, err
	}
	return &Recorder{f: f, enc: enc}, nil
}

// Write appends one decoded event to the capture.
func (r *Recorder) Write(ev wire.Event) error {
	payload := encodeEvent(ev)

	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(payload)))
	if _, err := r.enc.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := r.enc.Write(payload)
	return err
}

// Close flushes and closes the underlying zstd stream and file.
func (r *Recorder) Close() error {
	if err := r.enc.Close(); err != nil {
		_ = r.f.Close()
		return err
	}
	return r.f.Close()
}

// Replayer reads back a capture file written by Recorder, decoding and
// re-emitting events in the order they were recorded.
type Replayer struct {
	f   *os.File
	dec *zstd.Decoder
}

// NewReplayer opens the capture file at path and verifies its header.
func NewReplayer(path string) (*Replayer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	var magic [8]byte
	if _, err := io.ReadFull(dec, magic[:]); err != nil {
		dec.Close()
		_ = f.Close()
		return nil, fmt.Errorf("capture: reading header: %w", err)
	}
	if magic != captureMagic {
		dec.Close()
		_ = f.Close()
		return nil, fmt.Errorf("capture: invalid capture file header")
	}

	return &Replayer{f: f, dec: dec}, nil
}

// Next returns the next recorded event, or io.EOF once the capture is
// exhausted.
func (r *Replayer) Next() (wire.Event, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r.dec, lenBuf[:]); err != nil {
		return wire.Event{}, err
	}
	n := binary.BigEndian.Uint16(lenBuf[:])

	buf := make([]byte, n)
	if _, err := io.ReadFull(r.dec, buf); err != nil {
		return wire.Event{}, fmt.Errorf("capture: reading event payload: %w", err)
	}
	return wire.DecodePayload(buf)
}

// Close closes the underlying zstd stream and file.
func (r *Replayer) Close() error {
	r.dec.Close()
	return r.f.Close()
}

func encodeEvent(ev wire.Event) []byte {
	switch ev.Type {
	case wire.TypeTestBenchmark:
		return ev.Benchmark.Encode(nil)
	case wire.TypeAddOrder:
		return ev.AddOrder.Encode(nil)
	case wire.TypeOrderExecuted:
		return ev.OrderExecuted.Encode(nil)
	default:
		return nil
	}
}
