package wire

import "encoding/binary"

// Type tags for the payload kinds this core understands. Any other tag is
// UnknownMessageType and must be skipped by callers, never treated as fatal.
const (
	TypeTestBenchmark = 'b'
	TypeAddOrder      = 'A'
	TypeOrderExecuted = 'E'
)

// Side values for AddOrder, matching the ITCH buy/sell indicator convention.
const (
	SideBuy  = 'B'
	SideSell = 'S'
)

const (
	testBenchmarkSize = 7
	addOrderSize      = 36
	orderExecutedSize = 31
)

// encodeTimestamp48 writes t's low 48 bits, big-endian, into dst[0:6].
func encodeTimestamp48(dst []byte, t uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], t)
	copy(dst, buf[2:8])
}

// decodeTimestamp48 left-pads a 6-byte big-endian field with two zero bytes
// and reads it as a uint64.
func decodeTimestamp48(src []byte) uint64 {
	var buf [8]byte
	copy(buf[2:8], src[0:6])
	return binary.BigEndian.Uint64(buf[:])
}

// TestBenchmark is the 'b' payload: {tag, timestamp[6]}.
type TestBenchmark struct {
	Timestamp uint64
}

// Encode appends the encoded payload to dst and returns the extended slice.
func (m TestBenchmark) Encode(dst []byte) []byte {
	var buf [testBenchmarkSize]byte
	buf[0] = TypeTestBenchmark
	encodeTimestamp48(buf[1:7], m.Timestamp)
	return append(dst, buf[:]...)
}

// DecodeTestBenchmark decodes a 'b' payload. data must start at the type tag.
func DecodeTestBenchmark(data []byte) (TestBenchmark, error) {
	if len(data) < testBenchmarkSize {
		return TestBenchmark{}, ErrMalformedFrame
	}
	return TestBenchmark{Timestamp: decodeTimestamp48(data[1:7])}, nil
}

// AddOrder is the 'A' payload: {tag, stock_locate[2], tracking[2],
// timestamp[6], order_ref[8], side[1], shares[4], stock[8], price[4]}.
type AddOrder struct {
	StockLocate    uint16
	TrackingNumber uint16
	Timestamp      uint64
	OrderRef       uint64
	Side           byte
	Shares         uint32
	Stock          [8]byte
	Price          uint32
}

// Encode appends the encoded payload to dst and returns the extended slice.
func (m AddOrder) Encode(dst []byte) []byte {
	var buf [addOrderSize]byte
	buf[0] = TypeAddOrder
	binary.BigEndian.PutUint16(buf[1:3], m.StockLocate)
	binary.BigEndian.PutUint16(buf[3:5], m.TrackingNumber)
	encodeTimestamp48(buf[5:11], m.Timestamp)
	binary.BigEndian.PutUint64(buf[11:19], m.OrderRef)
	buf[19] = m.Side
	binary.BigEndian.PutUint32(buf[20:24], m.Shares)
	copy(buf[24:32], m.Stock[:])
	binary.BigEndian.PutUint32(buf[32:36], m.Price)
	return append(dst, buf[:]...)
}

// DecodeAddOrder decodes an 'A' payload. data must start at the type tag.
func DecodeAddOrder(data []byte) (AddOrder, error) {
	if len(data) < addOrderSize {
		return AddOrder{}, ErrMalformedFrame
	}
	m := AddOrder{
		StockLocate:    binary.BigEndian.Uint16(data[1:3]),
		TrackingNumber: binary.BigEndian.Uint16(data[3:5]),
		Timestamp:      decodeTimestamp48(data[5:11]),
		OrderRef:       binary.BigEndian.Uint64(data[11:19]),
		Side:           data[19],
		Shares:         binary.BigEndian.Uint32(data[20:24]),
		Price:          binary.BigEndian.Uint32(data[32:36]),
	}
	copy(m.Stock[:], data[24:32])
	return m, nil
}

// OrderExecuted is the 'E' payload: {tag, stock_locate[2], tracking[2],
// timestamp[6], order_ref[8], executed_shares[4], match_number[8]}.
type OrderExecuted struct {
	StockLocate    uint16
	TrackingNumber uint16
	Timestamp      uint64
	OrderRef       uint64
	ExecutedShares uint32
	MatchNumber    uint64
}

// Encode appends the encoded payload to dst and returns the extended slice.
func (m OrderExecuted) Encode(dst []byte) []byte {
	var buf [orderExecutedSize]byte
	buf[0] = TypeOrderExecuted
	binary.BigEndian.PutUint16(buf[1:3], m.StockLocate)
	binary.BigEndian.PutUint16(buf[3:5], m.TrackingNumber)
	encodeTimestamp48(buf[5:11], m.Timestamp)
	binary.BigEndian.PutUint64(buf[11:19], m.OrderRef)
	binary.BigEndian.PutUint32(buf[19:23], m.ExecutedShares)
	binary.BigEndian.PutUint64(buf[23:31], m.MatchNumber)
	return append(dst, buf[:]...)
}

// DecodeOrderExecuted decodes an 'E' payload. data must start at the type tag.
func DecodeOrderExecuted(data []byte) (OrderExecuted, error) {
	if len(data) < orderExecutedSize {
		return OrderExecuted{}, ErrMalformedFrame
	}
	return OrderExecuted{
		StockLocate:    binary.BigEndian.Uint16(data[1:3]),
		TrackingNumber: binary.BigEndian.Uint16(data[3:5]),
		Timestamp:      decodeTimestamp48(data[5:11]),
		OrderRef:       binary.BigEndian.Uint64(data[11:19]),
		ExecutedShares: binary.BigEndian.Uint32(data[19:23]),
		MatchNumber:    binary.BigEndian.Uint64(data[23:31]),
	}, nil
}

// Event is the decoded form of one message block, tagged by Type. Only the
// field matching Type is meaningful; the struct is stored by value so the
// receiver parser never allocates per message.
type Event struct {
	Type          byte
	Benchmark     TestBenchmark
	AddOrder      AddOrder
	OrderExecuted OrderExecuted
}

// DecodePayload dispatches on the type tag and decodes into an Event.
// ErrUnknownMessageType is returned for any tag other than 'b', 'A', 'E';
// callers should skip the block and continue rather than treat it as fatal.
func DecodePayload(data []byte) (Event, error) {
	tag, err := DecodeMessageType(data)
	if err != nil {
		return Event{}, err
	}
	switch tag {
	case TypeTestBenchmark:
		b, err := DecodeTestBenchmark(data)
		if err != nil {
			return Event{}, err
		}
		return Event{Type: TypeTestBenchmark, Benchmark: b}, nil
	case TypeAddOrder:
		a, err := DecodeAddOrder(data)
		if err != nil {
			return Event{}, err
		}
		return Event{Type: TypeAddOrder, AddOrder: a}, nil
	case TypeOrderExecuted:
		e, err := DecodeOrderExecuted(data)
		if err != nil {
			return Event{}, err
		}
		return Event{Type: TypeOrderExecuted, OrderExecuted: e}, nil
	default:
		return Event{}, ErrUnknownMessageType
	}
}
