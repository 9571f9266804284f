package types

import "fmt"

// HeaderSize is the fixed size of the ID3v2 tag header and footer.
const HeaderSize = 10

// TagHeader is the decoded 10-byte ID3v2 tag header.
type TagHeader struct {
	Major    uint8       `json:"major"`
	Revision uint8       `json:"revision"`
	Flags    HeaderFlags `json:"flags"`

	// Size is the declared tag size excluding the header (and footer).
	Size uint32 `json:"size"`

	// SizeSynchsafe is false when the size field violated the synchsafe
	// encoding and was re-read as a plain big-endian integer.
	SizeSynchsafe bool `json:"size_synchsafe"`

	// ExtendedHeaderSize is the number of body bytes skipped for the
	// extended header (0 when absent).
	ExtendedHeaderSize uint32 `json:"extended_header_size,omitempty"`
}

// HeaderFlags holds the tag-level flag byte and its named bits.
type HeaderFlags struct {
	Raw               uint8 `json:"raw"`
	Unsynchronisation bool  `json:"unsynchronisation"`
	ExtendedHeader    bool  `json:"extended_header"`
	Experimental      bool  `json:"experimental"`
	Footer            bool  `json:"footer"`
}

// Version returns the full version string, e.g. "2.4.0".
func (h TagHeader) Version() string {
	return fmt.Sprintf("2.%d.%d", h.Major, h.Revision)
}

// TotalSize returns the number of bytes the whole tag occupies, header and
// footer included.
func (h TagHeader) TotalSize() int64 {
	n := int64(HeaderSize) + int64(h.Size)
	if h.Flags.Footer {
		n += HeaderSize
	}
	return n
}

// FrameFlags holds a frame's 16-bit flag field and its named bits.
//
// Bit positions differ between v2.3 and v2.4; the named fields are always
// decoded according to the tag's version.
type FrameFlags struct {
	Raw                   uint16 `json:"raw"`
	TagAlterPreservation  bool   `json:"tag_alter_preservation,omitempty"`
	FileAlterPreservation bool   `json:"file_alter_preservation,omitempty"`
	ReadOnly              bool   `json:"read_only,omitempty"`
	Compression           bool   `json:"compression,omitempty"`
	Encryption            bool   `json:"encryption,omitempty"`
	Grouping              bool   `json:"grouping,omitempty"`
	Unsynchronisation     bool   `json:"unsynchronisation,omitempty"`
	DataLengthIndicator   bool   `json:"data_length_indicator,omitempty"`
}
