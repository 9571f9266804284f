package id3

import (
	"fmt"

	binutil "github.com/simonhull/id3dissect/internal/binary"
	"github.com/simonhull/id3dissect/internal/types"
)

const (
	tocFlagOrdered  = 0x01
	tocFlagTopLevel = 0x02
)

// decodeChapter parses a CHAP frame:
//
//	[null-terminated]  Element ID
//	[4 bytes]          Start time (ms)
//	[4 bytes]          End time (ms)
//	[4 bytes]          Start offset (0xFFFFFFFF = unused)
//	[4 bytes]          End offset (0xFFFFFFFF = unused)
//	[remaining]        Embedded frames
func (s *scanner) decodeChapter(f *types.Frame, data []byte, off int64, depth int) (types.Content, error) {
	c := binutil.NewCursor(data, off)
	id, ok := c.Terminated(1)
	if !ok {
		return nil, fmt.Errorf("%w after element ID", errMissingTerminator)
	}

	start := binutil.Next[uint32](c, "start time")
	end := binutil.Next[uint32](c, "end time")
	startOffset := binutil.Next[uint32](c, "start offset")
	endOffset := binutil.Next[uint32](c, "end offset")
	if err := c.Err(); err != nil {
		return nil, err
	}

	ch := types.Chapter{
		ElementID:   latin1(id),
		StartMS:     start,
		EndMS:       end,
		StartOffset: types.NewByteOffset(startOffset),
		EndOffset:   types.NewByteOffset(endOffset),
	}
	ch.SubFrames = s.embedded(f, c.Rest(), c.Offset(), depth)
	return ch, nil
}

// decodeTableOfContents parses a CTOC frame:
//
//	[null-terminated]  Element ID
//	[1 byte]           Flags (0x02 top-level, 0x01 ordered)
//	[1 byte]           Entry count
//	[null-terminated]  Child element IDs, entry count times
//	[remaining]        Embedded frames
func (s *scanner) decodeTableOfContents(f *types.Frame, data []byte, off int64, depth int) (types.Content, error) {
	c := binutil.NewCursor(data, off)
	id, ok := c.Terminated(1)
	if !ok {
		return nil, fmt.Errorf("%w after element ID", errMissingTerminator)
	}

	flags := binutil.Next[uint8](c, "flags")
	count := binutil.Next[uint8](c, "entry count")
	if err := c.Err(); err != nil {
		return nil, err
	}

	toc := types.TableOfContents{
		ElementID: latin1(id),
		TopLevel:  flags&tocFlagTopLevel != 0,
		Ordered:   flags&tocFlagOrdered != 0,
		ChildIDs:  make([]string, 0, count),
	}
	for i := range int(count) {
		child, ok := c.Terminated(1)
		if !ok {
			return nil, fmt.Errorf("%w after child %d of %d", errMissingTerminator, i+1, count)
		}
		toc.ChildIDs = append(toc.ChildIDs, latin1(child))
	}

	toc.SubFrames = s.embedded(f, c.Rest(), c.Offset(), depth)
	return toc, nil
}
