package types

import (
	"fmt"
	"strconv"
	"time"
)

// UnusedOffset is the CHAP byte-offset sentinel meaning "not set".
const UnusedOffset uint32 = 0xFFFFFFFF

// ByteOffset is a CHAP start or end byte offset. The 0xFFFFFFFF sentinel is
// kept distinct from numeric offsets and is never reported as a number.
type ByteOffset struct {
	value uint32
	set   bool
}

// NewByteOffset interprets a raw 32-bit CHAP offset field.
func NewByteOffset(raw uint32) ByteOffset {
	if raw == UnusedOffset {
		return ByteOffset{}
	}
	return ByteOffset{value: raw, set: true}
}

// Value returns the offset and whether it is set.
func (o ByteOffset) Value() (uint32, bool) {
	return o.value, o.set
}

func (o ByteOffset) String() string {
	if !o.set {
		return "unused"
	}
	return strconv.FormatUint(uint64(o.value), 10)
}

// MarshalJSON renders an unused offset as null.
func (o ByteOffset) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return strconv.AppendUint(nil, uint64(o.value), 10), nil
}

// Chapter is a CHAP frame.
//
// Chapters carry millisecond times and optional byte offsets, followed by
// embedded frames (usually TIT2 for the chapter title):
//
//	for _, ch := range d.Chapters() {
//	    fmt.Printf("%s %s-%s %s\n",
//	        ch.ElementID,
//	        FormatTimestamp(ch.StartMS),
//	        FormatTimestamp(ch.EndMS),
//	        ch.Title())
//	}
type Chapter struct {
	ElementID   string     `json:"element_id"`
	StartMS     uint32     `json:"start_ms"`
	EndMS       uint32     `json:"end_ms"`
	StartOffset ByteOffset `json:"start_offset"`
	EndOffset   ByteOffset `json:"end_offset"`
	SubFrames   []Frame    `json:"sub_frames,omitempty"`
}

// StartTime returns the chapter start as a duration.
func (c Chapter) StartTime() time.Duration {
	return time.Duration(c.StartMS) * time.Millisecond
}

// EndTime returns the chapter end as a duration.
func (c Chapter) EndTime() time.Duration {
	return time.Duration(c.EndMS) * time.Millisecond
}

// Duration returns EndTime-StartTime, or 0 when the end precedes the start.
func (c Chapter) Duration() time.Duration {
	if c.EndMS < c.StartMS {
		return 0
	}
	return time.Duration(c.EndMS-c.StartMS) * time.Millisecond
}

// Title returns the first value of the chapter's embedded TIT2 frame.
func (c Chapter) Title() string {
	return subFrameText(c.SubFrames, "TIT2")
}

// TableOfContents is a CTOC frame.
type TableOfContents struct {
	ElementID string   `json:"element_id"`
	TopLevel  bool     `json:"top_level"`
	Ordered   bool     `json:"ordered"`
	ChildIDs  []string `json:"child_ids"`
	SubFrames []Frame  `json:"sub_frames,omitempty"`
}

// Title returns the first value of the table's embedded TIT2 frame.
func (t TableOfContents) Title() string {
	return subFrameText(t.SubFrames, "TIT2")
}

func subFrameText(frames []Frame, id string) string {
	for _, f := range frames {
		if f.ID != id {
			continue
		}
		if t, ok := f.Content.(Text); ok && len(t.Values) > 0 {
			return t.Values[0]
		}
	}
	return ""
}

// FormatTimestamp renders milliseconds as hh:mm:ss.mmm.
func FormatTimestamp(ms uint32) string {
	h := ms / 3_600_000
	m := ms / 60_000 % 60
	s := ms / 1000 % 60
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms%1000)
}
