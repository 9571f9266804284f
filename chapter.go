package id3dissect

import (
	"github.com/simonhull/id3dissect/internal/types"
)

// Chapter is an alias to types.Chapter.
// Re-exporting from internal/types to maintain public API.
type Chapter = types.Chapter

// TableOfContents is an alias to types.TableOfContents.
type TableOfContents = types.TableOfContents

// ByteOffset is an alias to types.ByteOffset.
type ByteOffset = types.ByteOffset

// UnusedOffset is the raw CHAP offset value meaning "not set".
const UnusedOffset = types.UnusedOffset

// FormatTimestamp renders milliseconds as hh:mm:ss.mmm.
func FormatTimestamp(ms uint32) string {
	return types.FormatTimestamp(ms)
}
