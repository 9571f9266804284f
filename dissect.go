package id3dissect

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/id3dissect/internal/binary"
	"github.com/simonhull/id3dissect/internal/id3"
	"github.com/simonhull/id3dissect/internal/registry"
	"github.com/simonhull/id3dissect/internal/types"
)

// Dissect analyzes the ID3v2 tag at the start of buf.
//
// The returned Dissection is non-nil whenever the options are valid. The
// error is nil unless the tag was rejected before frame scanning (see
// IsRejection) or WithStrict found a warning or error issue. Every other
// anomaly is recorded as an Issue on the tag or on the frame it concerns.
//
// Example:
//
//	d, err := id3dissect.Dissect(buf)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("ID3v%s, %d frames\n", d.Header.Version(), d.Stats.Frames)
//	for issue := range d.AllIssues() {
//		fmt.Println(issue)
//	}
func Dissect(buf []byte, opts ...Option) (*Dissection, error) {
	o := newOptions(opts)
	if err := o.policy.Validate(); err != nil {
		return nil, err
	}
	return o.dissect(buf, "")
}

// DissectReader dissects the tag at the start of r.
//
// Only the 10-byte header is read before the size policy is applied, so a
// tag above the hard cap is rejected without reading its body. Otherwise
// the declared tag region (header, body and footer) is read in one call;
// input shorter than the declared size is dissected as a truncated tag.
func DissectReader(r io.ReaderAt, size int64, path string, opts ...Option) (*Dissection, error) {
	o := newOptions(opts)
	if err := o.policy.Validate(); err != nil {
		return nil, err
	}
	return o.dissectReader(r, size, path)
}

// DissectFile opens path and dissects the tag at its start.
//
// Example:
//
//	d, err := id3dissect.DissectFile("episode.mp3")
//	if err != nil {
//		return err
//	}
//	for _, ch := range d.Chapters() {
//		fmt.Printf("%s %s\n", id3dissect.FormatTimestamp(ch.StartMS), ch.Title())
//	}
func DissectFile(path string, opts ...Option) (*Dissection, error) {
	o := newOptions(opts)
	if err := o.policy.Validate(); err != nil {
		return nil, err
	}
	return o.dissectFile(path)
}

// DissectContext is DissectFile with a cancellation check before any I/O.
//
// A single dissection is a bounded synchronous pass; per-file timeouts
// are the caller's concern.
func DissectContext(ctx context.Context, path string, opts ...Option) (*Dissection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return DissectFile(path, opts...)
}

// DissectMany dissects multiple files concurrently with default options.
// See DissectAll.
func DissectMany(ctx context.Context, paths ...string) ([]*Dissection, error) {
	return DissectAll(ctx, paths)
}

// DissectAll dissects multiple files concurrently.
//
// Files are dissected in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// Rejected tags and strict-mode failures do not stop the batch: their
// Dissections are returned with the issues that caused them. Any other
// error (a file that cannot be read, a cancelled context) stops the
// remaining work and is returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	results, err := id3dissect.DissectAll(ctx, paths, id3dissect.WithMaxDepth(2))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, d := range results {
//		fmt.Printf("%s: %d frames, %d issues\n", d.Path, d.Stats.Frames, d.Stats.Issues())
//	}
func DissectAll(ctx context.Context, paths []string, opts ...Option) ([]*Dissection, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	o := newOptions(opts)
	if err := o.policy.Validate(); err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Dissection, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			d, err := o.dissectFile(path)
			if d == nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (o *dissectOptions) dissectFile(path string) (*Dissection, error) {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("open file: %w", err)
		o.metrics.observe(nil, err)
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		err = fmt.Errorf("stat file: %w", err)
		o.metrics.observe(nil, err)
		return nil, err
	}

	return o.dissectReader(f, stat.Size(), path)
}

func (o *dissectOptions) dissectReader(r io.ReaderAt, size int64, path string) (*Dissection, error) {
	buf, err := readTag(r, size, path, o.policy)
	if err != nil {
		err = fmt.Errorf("read tag: %w", err)
		o.metrics.observe(nil, err)
		return nil, err
	}
	return o.dissect(buf, path)
}

// readTag returns the header alone when it is malformed or declares a size
// above the cap; the dissector rejects both from the header bytes.
func readTag(r io.ReaderAt, size int64, path string, p Policy) ([]byte, error) {
	sr := binary.NewSafeReader(r, size, path)

	header, err := sr.ReadUpTo(0, types.HeaderSize, "tag header")
	if err != nil {
		return nil, err
	}

	h, _, err := id3.ReadHeader(header)
	if err != nil || p.Classify(h.Size) == types.SizeExceeded {
		return header, nil
	}
	return sr.ReadUpTo(0, h.TotalSize(), "tag")
}

func (o *dissectOptions) dissect(buf []byte, path string) (*Dissection, error) {
	d, err := lookup(buf).Dissect(buf, types.Options{
		Policy: o.policy,
		Logger: o.logger,
		Path:   path,
	})
	if err == nil && o.strict {
		err = strictError(d, path)
	}
	o.metrics.observe(d, err)
	return d, err
}

// lookup picks the dissector for buf. Input no dissector claims goes to
// the ID3v2 dissector, which reports the bad header as an issue.
func lookup(buf []byte) registry.Dissector {
	if _, d := registry.Lookup(buf); d != nil {
		return d
	}
	return registry.Get(types.FormatID3v2)
}

func strictError(d *Dissection, path string) error {
	var first Issue
	count := 0
	for issue := range d.AllIssues() {
		if issue.Severity < SeverityWarning {
			continue
		}
		if count == 0 {
			first = issue
		}
		count++
	}
	if count == 0 {
		return nil
	}
	return &StrictError{Path: path, Issue: first, Count: count}
}
