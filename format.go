package id3dissect

import (
	"io"

	"github.com/simonhull/id3dissect/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to maintain public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatID3v2   = types.FormatID3v2
)

// DetectFormat is a wrapper around types.DetectFormat.
// Maintains the public API while delegating to internal implementation.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}

// IsID3v2 reports whether header starts with the ID3v2 magic. It is a cheap
// applicability check; the version and size are validated by Dissect.
func IsID3v2(header []byte) bool {
	return types.IsID3v2(header)
}
