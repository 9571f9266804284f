package id3dissect_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/simonhull/id3dissect"
)

func TestDissect_Simple(t *testing.T) {
	d, err := id3dissect.Dissect(simpleTag(t))
	if err != nil {
		t.Fatalf("Dissect failed: %v", err)
	}

	if d.Header.Version() != "2.4.0" {
		t.Errorf("expected version 2.4.0, got %s", d.Header.Version())
	}
	if d.Text("TIT2") != "Opening Night" {
		t.Errorf("expected title 'Opening Night', got %q", d.Text("TIT2"))
	}
	if d.Text("TPE1") != "The Dissectors" {
		t.Errorf("expected artist 'The Dissectors', got %q", d.Text("TPE1"))
	}
	if d.Stats.Frames != 2 {
		t.Errorf("expected 2 frames, got %d", d.Stats.Frames)
	}
	if d.Stats.PaddingBytes != 32 {
		t.Errorf("expected 32 padding bytes, got %d", d.Stats.PaddingBytes)
	}
	if d.Stats.Issues() != 0 {
		t.Errorf("expected no issues, got %d", d.Stats.Issues())
	}
}

func TestDissect_NotID3(t *testing.T) {
	d, err := id3dissect.Dissect([]byte("fLaC\x00\x00\x00\x22 plenty of bytes"))

	var unsupported *id3dissect.UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if !id3dissect.IsRejection(err) {
		t.Error("IsRejection should be true for a malformed header")
	}
	if d == nil || len(d.Issues) != 1 || d.Issues[0].Code != id3dissect.CodeMalformedHeader {
		t.Fatalf("expected a single MalformedHeader issue, got %+v", d)
	}
	if !d.Rejected() {
		t.Error("Rejected() should be true")
	}
}

func TestDissect_TooLarge(t *testing.T) {
	// Header only: the declared body is never read.
	buf := tag(t, 4, 0, nil)
	buf[6], buf[7], buf[8], buf[9] = 0x7F, 0x7F, 0x7F, 0x7F

	d, err := id3dissect.Dissect(buf)

	var tooLarge *id3dissect.TagTooLargeError
	if !errors.As(err, &tooLarge) {
		t.Fatalf("expected TagTooLargeError, got %v", err)
	}
	if tooLarge.Limit != id3dissect.DefaultPolicy().MaxTagBytes {
		t.Errorf("limit = %d", tooLarge.Limit)
	}
	if d.SizeClass != id3dissect.SizeExceeded {
		t.Errorf("size class = %v", d.SizeClass)
	}
	if len(d.Frames) != 0 {
		t.Errorf("no frames should be scanned, got %d", len(d.Frames))
	}
}

func TestDissect_InvalidPolicy(t *testing.T) {
	_, err := id3dissect.Dissect(simpleTag(t), id3dissect.WithMaxDepth(0))
	if !errors.Is(err, id3dissect.ErrInvalidPolicy) {
		t.Errorf("expected ErrInvalidPolicy, got %v", err)
	}
}

func TestDissect_Strict(t *testing.T) {
	body := &bytes.Buffer{}
	body.Write(frame(t, "TIT2", text("ok")))
	body.Write(frame(t, "TALB", nil))
	buf := tag(t, 4, 0, body.Bytes())

	d, err := id3dissect.Dissect(buf)
	if err != nil {
		t.Fatalf("lenient mode should not fail: %v", err)
	}
	if d.Stats.Warnings != 1 {
		t.Fatalf("expected one EmptyFrame warning, got %d", d.Stats.Warnings)
	}

	d, err = id3dissect.Dissect(buf, id3dissect.WithStrict())
	if !errors.Is(err, id3dissect.ErrStrict) {
		t.Fatalf("expected ErrStrict, got %v", err)
	}
	var strict *id3dissect.StrictError
	if !errors.As(err, &strict) {
		t.Fatalf("expected StrictError, got %T", err)
	}
	if strict.Issue.Code != id3dissect.CodeEmptyFrame || strict.Count != 1 {
		t.Errorf("strict error = %+v", strict)
	}
	if d == nil || d.Text("TIT2") != "ok" {
		t.Error("strict mode should still return the dissection")
	}

	if _, err := id3dissect.Dissect(simpleTag(t), id3dissect.WithStrict()); err != nil {
		t.Errorf("clean tag should pass strict mode: %v", err)
	}
}

func TestDissect_StrictIgnoresInfo(t *testing.T) {
	buf := tag(t, 4, 0, frame(t, "XYZ1", []byte{1, 2, 3}))

	d, err := id3dissect.Dissect(buf, id3dissect.WithStrict())
	if err != nil {
		t.Fatalf("info issues should not fail strict mode: %v", err)
	}
	if d.Stats.Infos != 1 {
		t.Errorf("expected one UnknownFrameId info, got %d", d.Stats.Infos)
	}
}

func TestDissect_Logger(t *testing.T) {
	var out bytes.Buffer
	logger := zerolog.New(&out).Level(zerolog.DebugLevel)

	if _, err := id3dissect.Dissect(simpleTag(t), id3dissect.WithLogger(logger)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "tag dissected") {
		t.Errorf("expected a debug summary line, got %q", out.String())
	}

	out.Reset()
	id3dissect.Dissect([]byte("nope"), id3dissect.WithLogger(logger))
	if !strings.Contains(out.String(), `"level":"warn"`) {
		t.Errorf("expected a warn line for the rejection, got %q", out.String())
	}
}

func TestDissectFile(t *testing.T) {
	path := writeFile(t, "song.mp3", simpleTag(t))

	d, err := id3dissect.DissectFile(path)
	if err != nil {
		t.Fatalf("DissectFile failed: %v", err)
	}
	if d.Path != path {
		t.Errorf("Path = %q, want %q", d.Path, path)
	}
	if d.Text("TIT2") != "Opening Night" {
		t.Errorf("title = %q", d.Text("TIT2"))
	}
	// Audio bytes after the tag are not part of the dissection.
	if d.Stats.UnprocessedBytes != 0 || d.Stats.Issues() != 0 {
		t.Errorf("stats = %+v", d.Stats)
	}
}

func TestDissectFile_NotFound(t *testing.T) {
	_, err := id3dissect.DissectFile("/nonexistent/song.mp3")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
	if id3dissect.IsRejection(err) {
		t.Error("I/O errors are not rejections")
	}
}

func TestDissectReader_Truncated(t *testing.T) {
	full := simpleTag(t)
	cut := full[:len(full)-40]

	d, err := id3dissect.DissectReader(bytes.NewReader(cut), int64(len(cut)), "cut.mp3")
	if err != nil {
		t.Fatalf("truncated input should not fail: %v", err)
	}
	if d.Stats.TruncatedBytes != 40 {
		t.Errorf("TruncatedBytes = %d, want 40", d.Stats.TruncatedBytes)
	}
	if d.Text("TIT2") != "Opening Night" {
		t.Errorf("frames before the cut should decode, title = %q", d.Text("TIT2"))
	}
}

// countingReader records how many bytes were requested.
type countingReader struct {
	r    *bytes.Reader
	read int64
}

func (c *countingReader) ReadAt(p []byte, off int64) (int, error) {
	c.read += int64(len(p))
	return c.r.ReadAt(p, off)
}

func TestDissectReader_SizePolicyBeforeBody(t *testing.T) {
	policy := id3dissect.DefaultPolicy()
	policy.LargeTagBytes = 10
	policy.VeryLargeTagBytes = 20
	policy.MaxTagBytes = 30

	buf := simpleTag(t)
	cr := &countingReader{r: bytes.NewReader(buf)}

	d, err := id3dissect.DissectReader(cr, int64(len(buf)), "big.mp3", id3dissect.WithPolicy(policy))
	if !id3dissect.IsRejection(err) {
		t.Fatalf("expected a rejection, got %v", err)
	}
	if d.SizeClass != id3dissect.SizeExceeded {
		t.Errorf("size class = %v", d.SizeClass)
	}
	if cr.read != 10 {
		t.Errorf("read %d bytes, only the 10-byte header should be read", cr.read)
	}
}

func TestDissectReader_Empty(t *testing.T) {
	d, err := id3dissect.DissectReader(bytes.NewReader(nil), 0, "empty.mp3")
	if !id3dissect.IsRejection(err) {
		t.Fatalf("expected a rejection for empty input, got %v", err)
	}
	if d.Issues[0].Code != id3dissect.CodeMalformedHeader {
		t.Errorf("issue = %v", d.Issues[0])
	}
}

func TestWithoutImageAnalysis(t *testing.T) {
	// JPEG magic declared as PNG.
	pic := append([]byte{0}, "image/png\x00"...)
	pic = append(pic, 3, 0)
	pic = append(pic, 0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00)
	buf := tag(t, 4, 0, frame(t, "APIC", pic))

	d, err := id3dissect.Dissect(buf)
	if err != nil {
		t.Fatal(err)
	}
	if d.Stats.Infos != 1 {
		t.Errorf("expected a MIMEMismatch info with analysis on, got %d infos", d.Stats.Infos)
	}

	d, err = id3dissect.Dissect(buf, id3dissect.WithoutImageAnalysis())
	if err != nil {
		t.Fatal(err)
	}
	if d.Stats.Infos != 0 {
		t.Errorf("expected no infos with analysis off, got %d", d.Stats.Infos)
	}
	pics := d.Pictures()
	if len(pics) != 1 || pics[0].PictureType != id3dissect.PictureFrontCover {
		t.Errorf("pictures = %v", pics)
	}
}

func TestFrameDescription(t *testing.T) {
	tests := map[string]string{
		"TIT2": "Title/songname/content description",
		"APIC": "Attached picture",
		"CHAP": "Chapter frame",
		"ZZZZ": "Unknown frame type",
	}
	for id, want := range tests {
		if got := id3dissect.FrameDescription(id); got != want {
			t.Errorf("FrameDescription(%q) = %q, want %q", id, got, want)
		}
	}
}
