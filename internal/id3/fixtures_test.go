package id3

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"

	binutil "github.com/simonhull/id3dissect/internal/binary"
	"github.com/simonhull/id3dissect/internal/types"
)

// synchsafe encodes v for fixtures, failing the test on overflow.
func synchsafe(t testing.TB, v int) []byte {
	t.Helper()
	b, err := binutil.EncodeSynchsafe(uint32(v))
	if err != nil {
		t.Fatalf("fixture size %d: %v", v, err)
	}
	return b[:]
}

// buildTag assembles a tag header with a synchsafe size and the given body.
func buildTag(t testing.TB, major, flags byte, body []byte) []byte {
	t.Helper()
	buf := []byte{'I', 'D', '3', major, 0, flags}
	buf = append(buf, synchsafe(t, len(body))...)
	return append(buf, body...)
}

// frame23 builds a v2.3 frame with a big-endian size.
func frame23(id string, flags uint16, payload []byte) []byte {
	buf := make([]byte, 10, 10+len(payload))
	copy(buf, id)
	binary.BigEndian.PutUint32(buf[4:8], uint32(len(payload)))
	binary.BigEndian.PutUint16(buf[8:10], flags)
	return append(buf, payload...)
}

// frame24 builds a v2.4 frame with a synchsafe size.
func frame24(t testing.TB, id string, flags uint16, payload []byte) []byte {
	t.Helper()
	buf := make([]byte, 0, 10+len(payload))
	buf = append(buf, id...)
	buf = append(buf, synchsafe(t, len(payload))...)
	buf = binary.BigEndian.AppendUint16(buf, flags)
	return append(buf, payload...)
}

// latin1Text builds a text payload with encoding 0 and NUL-separated values.
func latin1Text(values ...string) []byte {
	buf := []byte{0}
	for i, v := range values {
		if i > 0 {
			buf = append(buf, 0)
		}
		buf = append(buf, v...)
	}
	return buf
}

// chapPayload builds a CHAP payload followed by the given embedded frames.
func chapPayload(id string, start, end, startOff, endOff uint32, sub ...[]byte) []byte {
	buf := append([]byte(id), 0)
	buf = binary.BigEndian.AppendUint32(buf, start)
	buf = binary.BigEndian.AppendUint32(buf, end)
	buf = binary.BigEndian.AppendUint32(buf, startOff)
	buf = binary.BigEndian.AppendUint32(buf, endOff)
	for _, s := range sub {
		buf = append(buf, s...)
	}
	return buf
}

// ctocPayload builds a CTOC payload followed by the given embedded frames.
func ctocPayload(id string, flags byte, children []string, sub ...[]byte) []byte {
	buf := append([]byte(id), 0, flags, byte(len(children)))
	for _, c := range children {
		buf = append(buf, c...)
		buf = append(buf, 0)
	}
	for _, s := range sub {
		buf = append(buf, s...)
	}
	return buf
}

// addUnsync applies the unsynchronisation scheme: a 0x00 is inserted after
// every 0xFF.
func addUnsync(b []byte) []byte {
	var out []byte
	for _, c := range b {
		out = append(out, c)
		if c == 0xFF {
			out = append(out, 0x00)
		}
	}
	return out
}

func deflate(t testing.TB, b []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}
	return buf.Bytes()
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// dissect runs a pass with the default options and fails on rejection.
func dissect(t testing.TB, buf []byte) *types.Dissection {
	t.Helper()
	d, err := Dissect(buf, types.DefaultOptions())
	if err != nil {
		t.Fatalf("Dissect() error = %v", err)
	}
	return d
}

func codes(issues []types.Issue) []types.Code {
	out := make([]types.Code, 0, len(issues))
	for _, is := range issues {
		out = append(out, is.Code)
	}
	return out
}

func allCodes(d *types.Dissection) []types.Code {
	var out []types.Code
	for is := range d.AllIssues() {
		out = append(out, is.Code)
	}
	return out
}

func countCode(d *types.Dissection, code types.Code) int {
	n := 0
	for is := range d.AllIssues() {
		if is.Code == code {
			n++
		}
	}
	return n
}
