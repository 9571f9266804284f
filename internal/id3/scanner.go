package id3

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/id3dissect/internal/types"
)

var errDecompressedTooLarge = errors.New("decompressed frame exceeds size limit")

// scanner walks frame regions of a single tag. A region is either the tag
// body or the embedded part of a CHAP/CTOC payload.
type scanner struct {
	spec   versionSpec
	policy types.Policy
	col    *collector

	// frameUnsync is set for v2.4 tags whose header flag marks every frame
	// as unsynchronised.
	frameUnsync bool

	// inflateBudget is what compressed frames may still expand to in this
	// pass, at any depth. It starts at the policy's hard cap.
	inflateBudget int64
}

// scan decodes frames from region until it runs out of bytes, reaches
// padding or meets an invalid frame ID. base is the tag offset of region[0].
// missing is the number of declared bytes already counted as truncated past
// the end of region. Issues about the region itself are attached to sink.
func (s *scanner) scan(region []byte, base int64, depth int, missing int64, sink *[]types.Issue) []types.Frame {
	var frames []types.Frame
	pos := 0

	for len(region)-pos >= types.FrameHeaderSize {
		hdr := region[pos : pos+types.FrameHeaderSize]
		off := base + int64(pos)

		if !validFrameID(hdr[:4]) {
			rest := region[pos:]
			if !allZero(rest) {
				s.col.addf(sink, types.SeverityWarning, types.CodeInvalidFrameID, off,
					"invalid frame ID %q, %d remaining bytes treated as padding", hdr[:4], len(rest))
			}
			s.col.tail(rest)
			return frames
		}

		f := types.Frame{
			ID:     string(hdr[:4]),
			Offset: off,
			Flags:  s.spec.flags(binary.BigEndian.Uint16(hdr[8:10])),
		}

		size, synchsafe := s.spec.frameSize(hdr[4:8])
		f.Size = size
		if !synchsafe {
			s.col.addf(&f.Issues, types.SeverityWarning, types.CodeSynchsafeViolation, off+4,
				"frame size field %X is not synchsafe, read as big-endian %d", hdr[4:8], size)
		}

		avail := len(region) - pos - types.FrameHeaderSize
		f.PayloadSize = avail
		if uint64(size) <= uint64(avail) {
			f.PayloadSize = int(size)
		} else {
			s.col.addf(&f.Issues, types.SeverityWarning, types.CodeTruncated, off,
				"frame %s declares %d bytes but only %d remain", f.ID, size, avail)
			if short := int64(size) - int64(avail) - missing; short > 0 {
				s.col.stats.TruncatedBytes += short
			}
		}

		payloadOff := off + types.FrameHeaderSize
		payload := region[pos+types.FrameHeaderSize : pos+types.FrameHeaderSize+f.PayloadSize]

		if size == 0 {
			s.col.addf(&f.Issues, types.SeverityWarning, types.CodeEmptyFrame, off, "frame %s has no payload", f.ID)
			f.Content = types.Unknown{}
		} else {
			f.Content = s.decodeFrame(&f, payload, payloadOff, depth)
		}
		f.Kind = f.Content.Kind()

		s.col.frame(&f, depth)
		s.col.log.Debug().
			Str("id", f.ID).
			Int64("offset", f.Offset).
			Uint32("size", f.Size).
			Int("depth", depth).
			Str("kind", f.Kind.String()).
			Msg("frame")

		frames = append(frames, f)
		pos += types.FrameHeaderSize + f.PayloadSize
	}

	s.col.tail(region[pos:])
	return frames
}

// decodeFrame undoes the flag-driven transformations on a payload and
// decodes its content.
func (s *scanner) decodeFrame(f *types.Frame, payload []byte, off int64, depth int) types.Content {
	data := payload
	if s.spec.major == 4 && (f.Flags.Unsynchronisation || s.frameUnsync) {
		data = RemoveUnsynchronization(data)
	}

	for _, field := range s.spec.prefix(f.Flags) {
		if len(data) < field.size {
			s.col.addf(&f.Issues, types.SeverityWarning, types.CodeMalformedFrame, off,
				"frame %s is too short for its %s", f.ID, field.name)
			return types.Unknown{Data: payload}
		}
		data = data[field.size:]
	}

	if f.Flags.Encryption {
		s.col.addf(&f.Issues, types.SeverityInfo, types.CodeUnsupportedFrameFlags, off,
			"frame %s is encrypted, content not decoded", f.ID)
		return types.Unknown{Data: data}
	}

	if f.Flags.Compression {
		if s.inflateBudget <= 0 {
			s.col.addf(&f.Issues, types.SeverityWarning, types.CodeMalformedFrame, off,
				"frame %s not decompressed: tag already expanded to its %d byte limit", f.ID, s.policy.MaxTagBytes)
			s.col.stats.UnprocessedBytes += int64(len(data))
			return types.Unknown{Data: data}
		}
		inflated, err := inflate(data, s.inflateBudget)
		if errors.Is(err, errDecompressedTooLarge) {
			s.inflateBudget = 0
			s.col.addf(&f.Issues, types.SeverityWarning, types.CodeMalformedFrame, off,
				"frame %s not decompressed: %v", f.ID, err)
			s.col.stats.UnprocessedBytes += int64(len(data))
			return types.Unknown{Data: data}
		}
		if err != nil {
			s.col.addf(&f.Issues, types.SeverityWarning, types.CodeMalformedFrame, off,
				"frame %s: decompression failed: %v", f.ID, err)
			return types.Unknown{Data: data}
		}
		s.inflateBudget -= int64(len(inflated))
		data = inflated
	}

	return s.decodeContent(f, data, off, depth)
}

// inflate decompresses a zlib stream, refusing output larger than limit.
func inflate(data []byte, limit int64) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes remain for the tag", errDecompressedTooLarge, limit)
	}
	return out, nil
}

// embedded scans the sub-frame region of a CHAP or CTOC frame one level
// deeper, or skips it with a RecursionDepthExceeded warning when the next
// level would pass the policy's depth limit.
func (s *scanner) embedded(parent *types.Frame, region []byte, off int64, depth int) []types.Frame {
	if len(region) == 0 {
		return nil
	}
	if depth+1 > s.policy.MaxDepth {
		s.col.addf(&parent.Issues, types.SeverityWarning, types.CodeRecursionDepthExceeded, off,
			"embedded frames at depth %d exceed the limit of %d, %d bytes not scanned",
			depth+1, s.policy.MaxDepth, len(region))
		s.col.stats.UnprocessedBytes += int64(len(region))
		return nil
	}
	missing := int64(parent.Size) - int64(parent.PayloadSize)
	return s.scan(region, off, depth+1, missing, &parent.Issues)
}

// validFrameID reports whether id consists of four characters in [A-Z0-9].
func validFrameID(id []byte) bool {
	if len(id) != 4 {
		return false
	}
	for _, c := range id {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
