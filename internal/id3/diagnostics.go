package id3

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/simonhull/id3dissect/internal/types"
)

// collector accumulates statistics for one dissection pass. Issues are
// stored on the tag or frame they concern; the collector only counts them.
type collector struct {
	stats types.Stats
	log   zerolog.Logger
}

func newCollector(log zerolog.Logger) *collector {
	return &collector{log: log}
}

// add attaches an issue to dst and counts it.
func (c *collector) add(dst *[]types.Issue, is types.Issue) {
	*dst = append(*dst, is)

	switch is.Severity {
	case types.SeverityError:
		c.stats.Errors++
	case types.SeverityWarning:
		c.stats.Warnings++
	default:
		c.stats.Infos++
	}

	c.log.Debug().
		Str("severity", is.Severity.String()).
		Str("code", string(is.Code)).
		Int64("offset", is.Offset).
		Msg(is.Message)
}

// addf builds and attaches an issue.
func (c *collector) addf(dst *[]types.Issue, sev types.Severity, code types.Code, off int64, format string, args ...any) {
	c.add(dst, types.Issue{
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Offset:   off,
	})
}

// frame counts a decoded frame.
func (c *collector) frame(f *types.Frame, depth int) {
	if depth == 0 {
		c.stats.Frames++
	} else {
		c.stats.EmbeddedFrames++
	}

	switch content := f.Content.(type) {
	case types.AttachedPicture:
		c.stats.Images++
		c.stats.ImageBytes += int64(len(content.Data))
	case types.Chapter:
		c.stats.Chapters++
	case types.TableOfContents:
		c.stats.TablesOfContents++
	}
}

// tail accounts for the bytes left after a frame region stops: zero bytes
// are padding, anything else could not be interpreted.
func (c *collector) tail(rest []byte) {
	if allZero(rest) {
		c.stats.PaddingBytes += int64(len(rest))
	} else {
		c.stats.UnprocessedBytes += int64(len(rest))
	}
}

// applySizePolicy classifies the declared tag size and attaches the matching
// tier issue. It reports false when the tag must not be scanned.
func applySizePolicy(d *types.Dissection, p types.Policy, c *collector) bool {
	size := d.Header.Size
	d.SizeClass = p.Classify(size)

	switch d.SizeClass {
	case types.SizeExceeded:
		c.addf(&d.Issues, types.SeverityError, types.CodeSizeExceeded, 6,
			"tag size %d bytes exceeds the %d byte limit, frames not scanned", size, p.MaxTagBytes)
		return false
	case types.SizeVeryLarge:
		c.addf(&d.Issues, types.SeverityWarning, types.CodeTagSize, 6,
			"tag size %d bytes is very large (> %d bytes), likely a podcast with chapter images", size, p.VeryLargeTagBytes)
	case types.SizeLarge:
		c.addf(&d.Issues, types.SeverityWarning, types.CodeTagSize, 6,
			"tag size %d bytes is large (> %d bytes), possibly a podcast with embedded chapter content", size, p.LargeTagBytes)
	}
	return true
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
