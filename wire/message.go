package wire

import "encoding/binary"

// LengthPrefixSize is the byte width of a message block's length prefix.
const LengthPrefixSize = 2

// EncodeMessage appends a length-prefixed message block {length[2], payload}
// to dst and returns the extended slice. It does not allocate beyond what
// append needs to grow dst.
func EncodeMessage(dst []byte, payload []byte) []byte {
	var lenBuf [LengthPrefixSize]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(payload)))
	dst = append(dst, lenBuf[:]...)
	dst = append(dst, payload...)
	return dst
}

// DecodeMessageType inspects the first byte of a message payload without
// copying or validating the rest of it.
func DecodeMessageType(payload []byte) (byte, error) {
	if len(payload) < 1 {
		return 0, ErrMalformedFrame
	}
	return payload[0], nil
}

// Block is a view over one length-prefixed message block inside a datagram.
// Payload aliases the caller's buffer; it is never copied.
type Block struct {
	Payload []byte
}

// SplitBlocks walks data (the datagram body following the 20-byte header)
// extracting up to count message blocks. It stops early, without error, the
// moment fewer than 2 bytes remain (a truncated length prefix) or a declared
// length would read past the end of data (a truncated block): a short final
// block is a stopping condition, not an error surfaced to the caller.
func SplitBlocks(data []byte, count int) []Block {
	blocks := make([]Block, 0, count)
	offset := 0
	for i := 0; i < count; i++ {
		if len(data)-offset < LengthPrefixSize {
			break
		}
		length := int(binary.BigEndian.Uint16(data[offset : offset+LengthPrefixSize]))
		offset += LengthPrefixSize
		if len(data)-offset < length {
			break
		}
		blocks = append(blocks, Block{Payload: data[offset : offset+length]})
		offset += length
	}
	return blocks
}
