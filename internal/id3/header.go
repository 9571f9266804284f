package id3

import (
	"errors"
	"fmt"

	"github.com/simonhull/id3dissect/internal/binary"
	"github.com/simonhull/id3dissect/internal/types"
)

// Header rejection reasons. All of them surface as a MalformedHeader issue.
var (
	ErrShortHeader        = errors.New("input shorter than the 10-byte ID3v2 header")
	ErrBadMagic           = errors.New("missing ID3 magic")
	ErrUnsupportedVersion = errors.New("unsupported ID3v2 version")
)

const (
	headerFlagUnsync       = 0x80
	headerFlagExtended     = 0x40
	headerFlagExperimental = 0x20
	headerFlagFooter       = 0x10
)

// ReadHeader decodes the 10-byte tag header at the start of buf.
//
// Only versions 2.3 and 2.4 are accepted. A size field that violates the
// synchsafe encoding is re-read as a plain big-endian integer and reported
// as a SynchsafeViolation warning rather than rejected.
func ReadHeader(buf []byte) (types.TagHeader, []types.Issue, error) {
	if len(buf) < types.HeaderSize {
		return types.TagHeader{}, nil, fmt.Errorf("%w: got %d bytes", ErrShortHeader, len(buf))
	}
	if !types.IsID3v2(buf) {
		return types.TagHeader{}, nil, fmt.Errorf("%w: found %q", ErrBadMagic, buf[:3])
	}

	h := types.TagHeader{
		Major:    buf[3],
		Revision: buf[4],
	}
	if h.Major != 3 && h.Major != 4 {
		return h, nil, fmt.Errorf("%w: 2.%d.%d", ErrUnsupportedVersion, h.Major, h.Revision)
	}
	h.Flags = decodeHeaderFlags(buf[5], h.Major)

	var issues []types.Issue
	size, err := binary.DecodeSynchsafe(buf[6:10])
	h.Size, h.SizeSynchsafe = size, true
	if err != nil {
		h.Size, h.SizeSynchsafe = binary.Uint32(buf[6:10]), false
		issues = append(issues, types.Issue{
			Severity: types.SeverityWarning,
			Code:     types.CodeSynchsafeViolation,
			Message:  fmt.Sprintf("tag size field %X is not synchsafe, read as big-endian %d", buf[6:10], h.Size),
			Offset:   6,
		})
	}

	return h, issues, nil
}

// decodeHeaderFlags names the tag flag bits. The footer bit only exists in v2.4.
func decodeHeaderFlags(raw, major uint8) types.HeaderFlags {
	return types.HeaderFlags{
		Raw:               raw,
		Unsynchronisation: raw&headerFlagUnsync != 0,
		ExtendedHeader:    raw&headerFlagExtended != 0,
		Experimental:      raw&headerFlagExperimental != 0,
		Footer:            major == 4 && raw&headerFlagFooter != 0,
	}
}

// extendedHeaderSize returns the number of body bytes the extended header
// occupies. In v2.3 the size field excludes itself; in v2.4 it is synchsafe
// and includes itself.
func extendedHeaderSize(major uint8, body []byte) (uint32, error) {
	if len(body) < 4 {
		return 0, fmt.Errorf("extended header size field needs 4 bytes, body has %d", len(body))
	}

	var n uint64
	if major == 3 {
		n = 4 + uint64(binary.Uint32(body[:4]))
	} else {
		v, err := binary.DecodeSynchsafe(body[:4])
		if err != nil {
			return 0, fmt.Errorf("extended header size: %w", err)
		}
		if v < 6 {
			return 0, fmt.Errorf("extended header size %d is below the 6-byte minimum", v)
		}
		n = uint64(v)
	}

	if n > uint64(len(body)) {
		return 0, fmt.Errorf("extended header of %d bytes does not fit the %d-byte body", n, len(body))
	}
	return uint32(n), nil
}
