package id3dissect

import (
	"github.com/simonhull/id3dissect/internal/id3"
	"github.com/simonhull/id3dissect/internal/types"
)

// Frame is an alias to types.Frame.
// Re-exporting from internal/types to maintain public API.
type Frame = types.Frame

// FrameFlags is an alias to types.FrameFlags.
type FrameFlags = types.FrameFlags

// FrameKind is an alias to types.FrameKind.
type FrameKind = types.FrameKind

// Re-export all frame kind constants
const (
	KindUnknown         = types.KindUnknown
	KindText            = types.KindText
	KindURL             = types.KindURL
	KindUserText        = types.KindUserText
	KindUserURL         = types.KindUserURL
	KindComment         = types.KindComment
	KindPicture         = types.KindPicture
	KindUniqueFileID    = types.KindUniqueFileID
	KindChapter         = types.KindChapter
	KindTableOfContents = types.KindTableOfContents
)

// Content is an alias to types.Content, the decoded payload of a frame.
type Content = types.Content

// Content variants.
type (
	Text         = types.Text
	URL          = types.URL
	UserText     = types.UserText
	UserURL      = types.UserURL
	Comment      = types.Comment
	UniqueFileID = types.UniqueFileID
	Unknown      = types.Unknown
)

// TextEncoding is an alias to types.TextEncoding.
type TextEncoding = types.TextEncoding

// Re-export all text encoding constants
const (
	EncodingLatin1  = types.EncodingLatin1
	EncodingUTF16   = types.EncodingUTF16
	EncodingUTF16BE = types.EncodingUTF16BE
	EncodingUTF8    = types.EncodingUTF8
)

// FrameDescription returns the human-readable name of a v2.3/v2.4 frame ID,
// e.g. "Title/songname/content description" for TIT2. Unlisted IDs return
// "Unknown frame type".
func FrameDescription(id string) string {
	return id3.Description(id)
}
