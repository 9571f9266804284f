package id3

import (
	"encoding/binary"

	binutil "github.com/simonhull/id3dissect/internal/binary"
	"github.com/simonhull/id3dissect/internal/types"
)

// versionSpec captures everything the frame scanner does differently
// between ID3v2.3 and ID3v2.4. One is chosen per tag.
type versionSpec struct {
	major uint8

	// frameSize decodes a frame header size field. ok is false when a
	// synchsafe field had to be re-read as plain big-endian.
	frameSize func(b []byte) (size uint32, ok bool)

	flags func(raw uint16) types.FrameFlags

	// prefix returns the number of bytes frame flags add before the
	// payload, in the order they appear.
	prefix func(f types.FrameFlags) []prefixField

	// wholeBodyUnsync is true when the tag-level unsynchronisation flag
	// applies to the whole body at once (v2.3) rather than to each frame.
	wholeBodyUnsync bool

	// encodings reports whether a text encoding byte is defined.
	encodings func(types.TextEncoding) bool
}

// prefixField is one flag-driven field between the frame header and the payload.
type prefixField struct {
	name string
	size int
}

var (
	fieldDecompressedSize = prefixField{"decompressed size", 4}
	fieldEncryptionMethod = prefixField{"encryption method", 1}
	fieldGroupID          = prefixField{"group id", 1}
	fieldDataLength       = prefixField{"data length indicator", 4}
)

var v23 = versionSpec{
	major: 3,
	frameSize: func(b []byte) (uint32, bool) {
		return binary.BigEndian.Uint32(b), true
	},
	flags: func(raw uint16) types.FrameFlags {
		return types.FrameFlags{
			Raw:                   raw,
			TagAlterPreservation:  raw&0x8000 != 0,
			FileAlterPreservation: raw&0x4000 != 0,
			ReadOnly:              raw&0x2000 != 0,
			Compression:           raw&0x0080 != 0,
			Encryption:            raw&0x0040 != 0,
			Grouping:              raw&0x0020 != 0,
		}
	},
	prefix: func(f types.FrameFlags) []prefixField {
		var fields []prefixField
		if f.Compression {
			fields = append(fields, fieldDecompressedSize)
		}
		if f.Encryption {
			fields = append(fields, fieldEncryptionMethod)
		}
		if f.Grouping {
			fields = append(fields, fieldGroupID)
		}
		return fields
	},
	wholeBodyUnsync: true,
	encodings: func(e types.TextEncoding) bool {
		return e == types.EncodingLatin1 || e == types.EncodingUTF16
	},
}

var v24 = versionSpec{
	major: 4,
	frameSize: func(b []byte) (uint32, bool) {
		v, err := binutil.DecodeSynchsafe(b)
		if err != nil {
			return binary.BigEndian.Uint32(b), false
		}
		return v, true
	},
	flags: func(raw uint16) types.FrameFlags {
		return types.FrameFlags{
			Raw:                   raw,
			TagAlterPreservation:  raw&0x4000 != 0,
			FileAlterPreservation: raw&0x2000 != 0,
			ReadOnly:              raw&0x1000 != 0,
			Grouping:              raw&0x0040 != 0,
			Compression:           raw&0x0008 != 0,
			Encryption:            raw&0x0004 != 0,
			Unsynchronisation:     raw&0x0002 != 0,
			DataLengthIndicator:   raw&0x0001 != 0,
		}
	},
	prefix: func(f types.FrameFlags) []prefixField {
		var fields []prefixField
		if f.Grouping {
			fields = append(fields, fieldGroupID)
		}
		if f.Encryption {
			fields = append(fields, fieldEncryptionMethod)
		}
		if f.DataLengthIndicator {
			fields = append(fields, fieldDataLength)
		}
		return fields
	},
	encodings: func(e types.TextEncoding) bool {
		return e.Valid()
	},
}

// specFor returns the strategy for a major version accepted by ReadHeader.
func specFor(major uint8) versionSpec {
	if major == 3 {
		return v23
	}
	return v24
}
