package id3

import (
	"bytes"
	"testing"
)

func TestRemoveUnsynchronization(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{name: "empty", in: []byte{}, want: []byte{}},
		{name: "no pair", in: []byte{0x01, 0xFF, 0x02}, want: []byte{0x01, 0xFF, 0x02}},
		{name: "single pair", in: []byte{0xFF, 0x00}, want: []byte{0xFF}},
		{name: "pair then zero", in: []byte{0xFF, 0x00, 0x00}, want: []byte{0xFF, 0x00}},
		{name: "two pairs", in: []byte{0xFF, 0x00, 0xFF, 0x00}, want: []byte{0xFF, 0xFF}},
		{name: "sync pattern", in: []byte{0xFF, 0x00, 0xE0, 0x41}, want: []byte{0xFF, 0xE0, 0x41}},
		{name: "trailing lone FF", in: []byte{0x41, 0xFF, 0x00, 0x42, 0xFF}, want: []byte{0x41, 0xFF, 0x42, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveUnsynchronization(tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("RemoveUnsynchronization(%X) = %X, want %X", tt.in, got, tt.want)
			}
			if len(got) > len(tt.in) {
				t.Errorf("output longer than input: %d > %d", len(got), len(tt.in))
			}
		})
	}
}

func TestRemoveUnsynchronization_NoCopy(t *testing.T) {
	in := []byte("plain text without sync pairs")
	out := RemoveUnsynchronization(in)
	if &out[0] != &in[0] {
		t.Error("input without FF 00 pairs should be returned without copying")
	}

	// Filtering already-clean output changes nothing.
	again := RemoveUnsynchronization(out)
	if !bytes.Equal(again, in) {
		t.Errorf("second pass changed clean data: %q", again)
	}
}

func TestRemoveUnsynchronization_RoundTrip(t *testing.T) {
	original := []byte{0x00, 0xFF, 0xE0, 0xFF, 0xFF, 0x00, 0x12, 0xFF}
	got := RemoveUnsynchronization(addUnsync(original))
	if !bytes.Equal(got, original) {
		t.Errorf("round trip = %X, want %X", got, original)
	}
}

func BenchmarkRemoveUnsynchronization(b *testing.B) {
	data := bytes.Repeat([]byte{0x12, 0xFF, 0x00, 0xE0}, 64*1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RemoveUnsynchronization(data)
	}
}
