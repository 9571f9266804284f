package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// MaxSynchsafe is the largest value a 4-byte synchsafe integer can carry (2^28-1).
const MaxSynchsafe = 1<<28 - 1

// ErrSynchsafe reports a synchsafe integer whose encoding is invalid.
var ErrSynchsafe = errors.New("invalid synchsafe integer")

// DecodeSynchsafe decodes a synchsafe integer (7 bits per byte, MSB first).
//
// If any byte has its high bit set the masked value is still returned
// together with an error wrapping ErrSynchsafe, so callers can choose
// between rejecting the field and degrading to a plain big-endian read.
func DecodeSynchsafe(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, fmt.Errorf("%w: need 4 bytes, got %d", ErrSynchsafe, len(b))
	}

	v := uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)

	for i, c := range b {
		if c&0x80 != 0 {
			return v, fmt.Errorf("%w: byte %d (0x%02X) has its high bit set", ErrSynchsafe, i, c)
		}
	}
	return v, nil
}

// EncodeSynchsafe encodes v as a 4-byte synchsafe integer.
func EncodeSynchsafe(v uint32) ([4]byte, error) {
	if v > MaxSynchsafe {
		return [4]byte{}, fmt.Errorf("%w: %d exceeds 28 bits", ErrSynchsafe, v)
	}
	return [4]byte{
		byte(v>>21) & 0x7F,
		byte(v>>14) & 0x7F,
		byte(v>>7) & 0x7F,
		byte(v) & 0x7F,
	}, nil
}

// Uint32 decodes a plain 4-byte big-endian integer.
func Uint32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}
