package binary

import (
	"bytes"
	"fmt"
)

// Cursor reads sequentially from an in-memory buffer with deferred error checking.
//
// Once a read runs past the end of the buffer the cursor records the error
// and every later read returns a zero value, so a run of field reads can be
// checked once at the end:
//
//	c := binary.NewCursor(payload, frameOffset)
//	start := Next[uint32](c, "start time")
//	end := Next[uint32](c, "end time")
//	if err := c.Err(); err != nil {
//		return err
//	}
type Cursor struct {
	buf  []byte
	pos  int
	base int64
	err  error
}

// NewCursor creates a Cursor over buf. base is the absolute offset of buf[0]
// and is only used for reporting.
func NewCursor(buf []byte, base int64) *Cursor {
	return &Cursor{buf: buf, base: base}
}

// Err returns the first error encountered, if any.
func (c *Cursor) Err() error {
	return c.err
}

// Pos returns the current position relative to the start of the buffer.
func (c *Cursor) Pos() int {
	return c.pos
}

// Offset returns the absolute offset of the next unread byte.
func (c *Cursor) Offset() int64 {
	return c.base + int64(c.pos)
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.buf) - c.pos
}

// Rest returns the unread bytes without copying and without advancing.
func (c *Cursor) Rest() []byte {
	return c.buf[c.pos:]
}

// Bytes returns the next n bytes without copying.
func (c *Cursor) Bytes(n int, what string) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || n > c.Len() {
		c.err = fmt.Errorf("%w: reading %s at offset %d: need %d bytes, have %d",
			ErrShortBuffer, what, c.Offset(), n, c.Len())
		return nil
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b
}

// Skip advances past n bytes.
func (c *Cursor) Skip(n int, what string) {
	c.Bytes(n, what)
}

// Terminated returns the bytes up to the next terminator of the given width
// (1 for single-byte encodings, 2 for UTF-16) and advances past the
// terminator. Two-byte terminators are only recognized on an even position
// relative to the cursor start. When no terminator exists the remaining bytes
// are returned, the cursor is exhausted, and found is false.
func (c *Cursor) Terminated(width int) (field []byte, found bool) {
	if c.err != nil {
		return nil, false
	}
	rest := c.Rest()
	idx := IndexTerminator(rest, width)
	if idx < 0 {
		c.pos = len(c.buf)
		return rest, false
	}
	c.pos += idx + width
	return rest[:idx], true
}

// IndexTerminator returns the index of the first terminator of the given
// width in b, or -1. A width-2 terminator must start on an even index.
func IndexTerminator(b []byte, width int) int {
	if width != 2 {
		return bytes.IndexByte(b, 0)
	}
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return i
		}
	}
	return -1
}

// Next reads a big-endian value of type T and advances the cursor.
// If a previous read failed, returns zero value without attempting the read.
func Next[T uint8 | uint16 | uint32 | uint64](c *Cursor, what string) T {
	b := c.Bytes(sizeOf[T](), what)
	if b == nil {
		var zero T
		return zero
	}
	return decodeBE[T](b)
}
