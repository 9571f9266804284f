// Package id3 dissects ID3v2.3 and ID3v2.4 tags into headers, frame trees,
// issues and statistics.
package id3

import (
	"github.com/simonhull/id3dissect/internal/registry"
	"github.com/simonhull/id3dissect/internal/types"
)

// Dissect analyzes the ID3v2 tag at the start of buf.
//
// The returned Dissection is never nil. An error is returned only when the
// tag is rejected before frame scanning: *types.UnsupportedFormatError for
// a bad header and *types.TagTooLargeError when the declared size is above
// the policy's hard cap. Every other anomaly is recorded as an Issue.
func Dissect(buf []byte, opts types.Options) (*types.Dissection, error) {
	log := opts.Logger.With().Str("path", opts.Path).Logger()
	col := newCollector(log)
	d := &types.Dissection{Path: opts.Path}
	defer func() { d.Stats = col.stats }()

	h, headerIssues, err := ReadHeader(buf)
	d.Header = h
	if err != nil {
		col.addf(&d.Issues, types.SeverityError, types.CodeMalformedHeader, 0, "%v", err)
		log.Warn().Err(err).Msg("tag rejected")
		return d, &types.UnsupportedFormatError{Path: opts.Path, Reason: err.Error()}
	}
	for _, is := range headerIssues {
		col.add(&d.Issues, is)
	}

	if !applySizePolicy(d, opts.Policy, col) {
		log.Warn().Uint32("size", h.Size).Uint32("limit", opts.Policy.MaxTagBytes).Msg("tag rejected")
		return d, &types.TagTooLargeError{Path: opts.Path, Size: h.Size, Limit: opts.Policy.MaxTagBytes}
	}

	body := buf[types.HeaderSize:]
	var missing int64
	if uint64(len(body)) < uint64(h.Size) {
		col.addf(&d.Issues, types.SeverityWarning, types.CodeTruncated, int64(len(buf)),
			"tag declares %d bytes but only %d follow the header", h.Size, len(body))
		missing = int64(h.Size) - int64(len(body))
		col.stats.TruncatedBytes += missing
	} else {
		body = body[:h.Size]
	}

	s := &scanner{
		spec:          specFor(h.Major),
		policy:        opts.Policy,
		col:           col,
		inflateBudget: int64(opts.Policy.MaxTagBytes),
	}
	if h.Flags.Unsynchronisation {
		if s.spec.wholeBodyUnsync {
			body = RemoveUnsynchronization(body)
		} else {
			s.frameUnsync = true
		}
	}

	start := 0
	if h.Flags.ExtendedHeader {
		n, err := extendedHeaderSize(h.Major, body)
		if err != nil {
			col.addf(&d.Issues, types.SeverityError, types.CodeInvalidExtendedHeader, types.HeaderSize,
				"%v, frames not scanned", err)
			col.stats.UnprocessedBytes += int64(len(body))
			checkFooter(d, buf, col)
			return d, nil
		}
		d.Header.ExtendedHeaderSize = n
		start = int(n)
	}

	d.Frames = s.scan(body[start:], int64(types.HeaderSize+start), 0, missing, &d.Issues)
	checkFooter(d, buf, col)

	log.Debug().
		Str("version", d.Header.Version()).
		Uint32("size", h.Size).
		Int("frames", col.stats.Frames).
		Int("embedded", col.stats.EmbeddedFrames).
		Int("issues", col.stats.Issues()).
		Msg("tag dissected")

	return d, nil
}

// checkFooter verifies the v2.4 footer that follows the body when the
// header announces one.
func checkFooter(d *types.Dissection, buf []byte, col *collector) {
	if !d.Header.Flags.Footer {
		return
	}
	at := int64(types.HeaderSize) + int64(d.Header.Size)
	if int64(len(buf)) >= at+types.HeaderSize && string(buf[at:at+3]) == "3DI" {
		return
	}
	col.addf(&d.Issues, types.SeverityWarning, types.CodeMissingFooter, at,
		"header announces a footer but no 3DI footer follows the tag body")
}

// dissector adapts Dissect to the registry.
type dissector struct{}

func (dissector) CanHandle(header []byte) bool {
	return types.IsID3v2(header)
}

func (dissector) Dissect(buf []byte, opts types.Options) (*types.Dissection, error) {
	return Dissect(buf, opts)
}

func init() {
	registry.Register(types.FormatID3v2, dissector{})
}
