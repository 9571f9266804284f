package id3dissect_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/id3dissect/internal/binary"
)

// tag builds an ID3v2 tag with the given major version, flags and body.
func tag(t testing.TB, major, flags byte, body []byte) []byte {
	t.Helper()

	size, err := binary.EncodeSynchsafe(uint32(len(body)))
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	buf.WriteString("ID3")
	buf.Write([]byte{major, 0, flags})
	buf.Write(size[:])
	buf.Write(body)
	return buf.Bytes()
}

// frame builds a v2.4 frame with a synchsafe size.
func frame(t testing.TB, id string, payload []byte) []byte {
	t.Helper()

	size, err := binary.EncodeSynchsafe(uint32(len(payload)))
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	buf.WriteString(id)
	buf.Write(size[:])
	buf.Write([]byte{0, 0})
	buf.Write(payload)
	return buf.Bytes()
}

// text builds a UTF-8 text frame payload.
func text(s string) []byte {
	return append([]byte{3}, s...)
}

// simpleTag is a clean v2.4 tag with a title, an artist and 32 bytes of
// padding.
func simpleTag(t testing.TB) []byte {
	t.Helper()

	body := &bytes.Buffer{}
	body.Write(frame(t, "TIT2", text("Opening Night")))
	body.Write(frame(t, "TPE1", text("The Dissectors")))
	body.Write(make([]byte, 32))
	return tag(t, 4, 0, body.Bytes())
}

// writeFile writes data followed by a few fake audio bytes to a temp file.
func writeFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	audio := []byte{0xFF, 0xFB, 0x90, 0x00}
	if err := os.WriteFile(path, append(append([]byte{}, data...), audio...), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
