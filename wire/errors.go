// Package wire implements the MoldUDP64-style framing protocol: a 20-byte
// frame header, length-prefixed message blocks, and the small set of
// fixed-layout, big-endian typed payloads carried inside them.
package wire

import "errors"

// ErrMalformedFrame is returned when a buffer is too short to hold a frame
// header or a payload's declared fixed fields.
var ErrMalformedFrame = errors.New("wire: malformed frame")

// ErrTruncatedBlock names the condition of a message block whose declared
// length exceeds the bytes remaining in the datagram. SplitBlocks treats
// that condition as a stopping point and does not return this error.
var ErrTruncatedBlock = errors.New("wire: truncated message block")

// ErrUnknownMessageType is returned by DecodePayload for a type tag this
// package does not know how to decode. Callers (the receiver parser) are
// expected to skip the block rather than treat this as fatal.
var ErrUnknownMessageType = errors.New("wire: unknown message type")
