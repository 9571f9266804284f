package types

// FrameHeaderSize is the size of a v2.3/v2.4 frame header.
const FrameHeaderSize = 10

// Frame is one decoded frame, top-level or embedded in a CHAP/CTOC.
type Frame struct {
	ID string `json:"id"`

	// Offset is the position of the frame header within its tag (or within
	// the unsynchronised body for v2.3 tags with the tag-level flag set).
	Offset int64 `json:"offset"`

	// Size is the declared payload size from the frame header.
	Size uint32 `json:"size"`

	// PayloadSize is the number of payload bytes actually present, which
	// is smaller than Size for truncated frames.
	PayloadSize int `json:"payload_size"`

	Flags   FrameFlags `json:"flags"`
	Kind    FrameKind  `json:"kind"`
	Content Content    `json:"content"`
	Issues  []Issue    `json:"issues,omitempty"`
}

// Truncated reports whether the declared size ran past the available bytes.
func (f Frame) Truncated() bool {
	return f.PayloadSize < int(f.Size)
}

// SubFrames returns the embedded frames of a CHAP or CTOC frame.
func (f Frame) SubFrames() []Frame {
	switch c := f.Content.(type) {
	case Chapter:
		return c.SubFrames
	case TableOfContents:
		return c.SubFrames
	default:
		return nil
	}
}
