package types

import (
	"testing"
	"time"
)

func TestByteOffset(t *testing.T) {
	unused := NewByteOffset(0xFFFFFFFF)
	if v, ok := unused.Value(); ok || v != 0 {
		t.Errorf("sentinel Value() = (%d, %v), want (0, false)", v, ok)
	}
	if unused.String() != "unused" {
		t.Errorf("sentinel String() = %q", unused.String())
	}
	if b, _ := unused.MarshalJSON(); string(b) != "null" {
		t.Errorf("sentinel MarshalJSON() = %s, want null", b)
	}

	set := NewByteOffset(4096)
	if v, ok := set.Value(); !ok || v != 4096 {
		t.Errorf("Value() = (%d, %v), want (4096, true)", v, ok)
	}
	if b, _ := set.MarshalJSON(); string(b) != "4096" {
		t.Errorf("MarshalJSON() = %s, want 4096", b)
	}

	zero := NewByteOffset(0)
	if _, ok := zero.Value(); !ok {
		t.Error("offset 0 is a valid offset")
	}
}

func TestChapter_Times(t *testing.T) {
	ch := Chapter{ElementID: "chp1", StartMS: 1500, EndMS: 61500}
	if ch.StartTime() != 1500*time.Millisecond {
		t.Errorf("StartTime() = %v", ch.StartTime())
	}
	if ch.Duration() != time.Minute {
		t.Errorf("Duration() = %v, want 1m", ch.Duration())
	}

	backwards := Chapter{StartMS: 5000, EndMS: 1000}
	if backwards.Duration() != 0 {
		t.Errorf("Duration() for end < start = %v, want 0", backwards.Duration())
	}
}

func TestChapter_Title(t *testing.T) {
	ch := Chapter{
		SubFrames: []Frame{
			{ID: "TPE1", Content: Text{Values: []string{"Someone"}}},
			{ID: "TIT2", Content: Text{Values: []string{"Intro", "Alt"}}},
		},
	}
	if got := ch.Title(); got != "Intro" {
		t.Errorf("Title() = %q, want Intro", got)
	}
	if got := (Chapter{}).Title(); got != "" {
		t.Errorf("Title() without sub-frames = %q", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		ms   uint32
		want string
	}{
		{0, "00:00:00.000"},
		{60000, "00:01:00.000"},
		{3_723_004, "01:02:03.004"},
		{0xFFFFFFFF, "1193:02:47.295"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.ms); got != tt.want {
			t.Errorf("FormatTimestamp(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}
