package wire

import "encoding/binary"

// SessionIDSize is the byte width of the opaque session tag.
const SessionIDSize = 10

// HeaderSize is the fixed byte width of a frame header.
const HeaderSize = SessionIDSize + 8 + 2

// SessionID is the opaque tag identifying a broadcast session.
type SessionID [SessionIDSize]byte

// Header is the 20-byte MoldUDP64-style frame prefix: {session_id[10],
// first_sequence_number[8], message_count[2]}, all big-endian.
type Header struct {
	SessionID           SessionID
	FirstSequenceNumber uint64
	MessageCount        uint16
}

// Encode writes the header, big-endian, into dst[0:HeaderSize].
// dst must have length >= HeaderSize.
func (h Header) Encode(dst []byte) {
	copy(dst[0:SessionIDSize], h.SessionID[:])
	binary.BigEndian.PutUint64(dst[SessionIDSize:SessionIDSize+8], h.FirstSequenceNumber)
	binary.BigEndian.PutUint16(dst[SessionIDSize+8:HeaderSize], h.MessageCount)
}

// ParseHeader reads the 20-byte prefix of data. It returns ErrMalformedFrame
// if data is shorter than HeaderSize.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, ErrMalformedFrame
	}
	var h Header
	copy(h.SessionID[:], data[0:SessionIDSize])
	h.FirstSequenceNumber = binary.BigEndian.Uint64(data[SessionIDSize : SessionIDSize+8])
	h.MessageCount = binary.BigEndian.Uint16(data[SessionIDSize+8 : HeaderSize])
	return h, nil
}
