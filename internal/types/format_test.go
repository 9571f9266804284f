package types

import (
	"bytes"
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    Format
		wantErr bool
	}{
		{name: "id3v2.4", data: []byte("ID3\x04\x00\x00\x00\x00\x00\x00"), want: FormatID3v2},
		{name: "id3v2.3", data: []byte("ID3\x03\x00\x00\x00\x00\x00\x00"), want: FormatID3v2},
		{name: "magic only", data: []byte("ID3"), want: FormatID3v2},
		{name: "mp3 frame sync", data: []byte{0xFF, 0xFB, 0x90, 0x00}, want: FormatUnknown, wantErr: true},
		{name: "flac", data: []byte("fLaC\x00\x00\x00\x00"), want: FormatUnknown, wantErr: true},
		{name: "too small", data: []byte("ID"), want: FormatUnknown, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(bytes.NewReader(tt.data), int64(len(tt.data)), "test.mp3")
			if (err != nil) != tt.wantErr {
				t.Fatalf("DetectFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
			if err != nil {
				var ufe *UnsupportedFormatError
				if !errors.As(err, &ufe) {
					t.Errorf("error should be *UnsupportedFormatError, got %T", err)
				}
			}
		})
	}
}

func TestIsID3v2(t *testing.T) {
	tests := []struct {
		header []byte
		want   bool
	}{
		{[]byte("ID3\x04"), true},
		{[]byte("ID3"), true},
		{[]byte("ID"), false},
		{[]byte("3DI\x04"), false},
		{nil, false},
	}

	for _, tc := range tests {
		if got := IsID3v2(tc.header); got != tc.want {
			t.Errorf("IsID3v2(%q) = %v, want %v", tc.header, got, tc.want)
		}
	}
}

func TestFormat_Extensions(t *testing.T) {
	if got := FormatID3v2.Extensions(); len(got) == 0 || got[0] != ".mp3" {
		t.Errorf("FormatID3v2.Extensions() = %v, want .mp3 first", got)
	}
	if got := FormatUnknown.Extensions(); got != nil {
		t.Errorf("FormatUnknown.Extensions() = %v, want nil", got)
	}
}

func TestFormat_String(t *testing.T) {
	if FormatID3v2.String() != "ID3v2" {
		t.Errorf("FormatID3v2.String() = %q", FormatID3v2.String())
	}
	if FormatUnknown.String() != "Unknown" {
		t.Errorf("FormatUnknown.String() = %q", FormatUnknown.String())
	}
}
