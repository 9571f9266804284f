package id3

import "bytes"

var unsyncPair = []byte{0xFF, 0x00}

// RemoveUnsynchronization reverses the unsynchronisation scheme by dropping
// every 0x00 that immediately follows a 0xFF. A trailing lone 0xFF is kept.
//
// When b contains no FF 00 pair it is returned as is, without copying.
func RemoveUnsynchronization(b []byte) []byte {
	i := bytes.Index(b, unsyncPair)
	if i < 0 {
		return b
	}

	out := make([]byte, 0, len(b)-1)
	out = append(out, b[:i+1]...)
	for j := i + 2; j < len(b); j++ {
		out = append(out, b[j])
		if b[j] == 0xFF && j+1 < len(b) && b[j+1] == 0x00 {
			j++
		}
	}
	return out
}
