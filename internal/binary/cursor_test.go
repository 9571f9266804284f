package binary

import (
	"errors"
	"testing"
)

func TestCursor_Sequential(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	c := NewCursor(data, 100)

	if v := Next[uint8](c, "first byte"); v != 0x01 {
		t.Errorf("expected 0x01, got 0x%02x", v)
	}
	if v := Next[uint16](c, "second word"); v != 0x0203 {
		t.Errorf("expected 0x0203, got 0x%04x", v)
	}
	if c.Pos() != 3 {
		t.Errorf("expected position 3, got %d", c.Pos())
	}
	if c.Offset() != 103 {
		t.Errorf("expected offset 103, got %d", c.Offset())
	}
	if v := Next[uint32](c, "dword"); v != 0x04050607 {
		t.Errorf("expected 0x04050607, got 0x%08x", v)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 remaining byte, got %d", c.Len())
	}
	if err := c.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCursor_ErrorAccumulation(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02}, 0)

	_ = Next[uint8](c, "first")  // OK
	_ = Next[uint8](c, "second") // OK
	_ = Next[uint8](c, "third")  // Error - out of bounds

	if c.Err() == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(c.Err(), ErrShortBuffer) {
		t.Errorf("expected ErrShortBuffer, got %v", c.Err())
	}

	first := c.Err()
	if v := Next[uint32](c, "fourth"); v != 0 {
		t.Errorf("reads after an error should return zero, got %d", v)
	}
	if c.Err() != first {
		t.Error("first error should persist")
	}
}

func TestCursor_Terminated(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		width     int
		wantField string
		wantFound bool
		wantPos   int
	}{
		{
			name:      "single byte terminator",
			data:      []byte("chp1\x00rest"),
			width:     1,
			wantField: "chp1",
			wantFound: true,
			wantPos:   5,
		},
		{
			name:      "no terminator",
			data:      []byte("abc"),
			width:     1,
			wantField: "abc",
			wantFound: false,
			wantPos:   3,
		},
		{
			name:      "aligned double terminator",
			data:      []byte{0x00, 'A', 0x00, 0x00, 0x00, 'B'},
			width:     2,
			wantField: "\x00A",
			wantFound: true,
			wantPos:   4,
		},
		{
			name: "misaligned zero pair is not a terminator",
			// 'A',0x00 | 0x00,'B' | 0x00,0x00
			data:      []byte{'A', 0x00, 0x00, 'B', 0x00, 0x00},
			width:     2,
			wantField: "A\x00\x00B",
			wantFound: true,
			wantPos:   6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.data, 0)
			field, found := c.Terminated(tt.width)
			if string(field) != tt.wantField {
				t.Errorf("field = %q, want %q", field, tt.wantField)
			}
			if found != tt.wantFound {
				t.Errorf("found = %v, want %v", found, tt.wantFound)
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.Pos(), tt.wantPos)
			}
		})
	}
}

func TestCursor_BytesAliasesBuffer(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	c := NewCursor(data, 0)
	b := c.Bytes(2, "pair")
	data[0] = 9
	if b[0] != 9 {
		t.Error("Bytes should return a view of the underlying buffer")
	}
	if got := c.Rest(); len(got) != 2 || got[0] != 3 {
		t.Errorf("Rest() = %v, want [3 4]", got)
	}
}
