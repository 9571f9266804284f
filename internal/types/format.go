package types

import (
	"io"

	"github.com/simonhull/id3dissect/internal/binary"
)

// Format represents the detected tag format.
type Format int

const (
	// FormatUnknown represents input that does not start with a known tag.
	FormatUnknown Format = iota
	// FormatID3v2 represents input that starts with an ID3v2 tag.
	FormatID3v2
)

func (f Format) String() string {
	switch f {
	case FormatID3v2:
		return "ID3v2"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for files carrying this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatID3v2:
		return []string{".mp3", ".id3", ".aiff", ".wav"}
	default:
		return nil
	}
}

// IsID3v2 reports whether header starts with the ID3v2 magic "ID3".
// It does not validate the version or size.
func IsID3v2(header []byte) bool {
	return len(header) >= 3 && header[0] == 'I' && header[1] == 'D' && header[2] == '3'
}

// DetectFormat determines the tag format by examining magic bytes.
//
// Detection only looks at the first three bytes; the header is validated
// during dissection.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	if size < 3 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "file too small",
		}
	}

	sr := binary.NewSafeReader(r, size, path)

	magic := make([]byte, 3)
	if err := sr.ReadAt(magic, 0, "tag magic bytes"); err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}

	if IsID3v2(magic) {
		return FormatID3v2, nil
	}

	return FormatUnknown, &UnsupportedFormatError{
		Path:   path,
		Reason: "no ID3v2 tag at start of file",
	}
}
