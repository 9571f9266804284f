package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/id3dissect"
)

func printDissection(w io.Writer, d *id3dissect.Dissection) {
	fmt.Fprintf(w, "%s\n", d.Path)
	if d.Rejected() {
		for _, issue := range d.Issues {
			fmt.Fprintf(w, "  %s\n", issue)
		}
		return
	}

	h := d.Header
	fmt.Fprintf(w, "ID3v%s (size: %d, class: %s, flags: 0x%02X)\n", h.Version(), h.Size, d.SizeClass, h.Flags.Raw)
	for _, issue := range d.Issues {
		fmt.Fprintf(w, "  ! %s\n", issue)
	}

	d.Walk(func(depth int, f id3dissect.Frame) bool {
		indent := strings.Repeat("  ", depth+1)
		fmt.Fprintf(w, "%s%s (size: %d, offset: %d) %s", indent, f.ID, f.Size, f.Offset, id3dissect.FrameDescription(f.ID))
		if s := summary(f.Content); s != "" {
			fmt.Fprintf(w, ": %s", s)
		}
		fmt.Fprintln(w)
		for _, issue := range f.Issues {
			fmt.Fprintf(w, "%s  ! %s\n", indent, issue)
		}
		return true
	})

	s := d.Stats
	fmt.Fprintf(w, "frames: %d (+%d embedded), pictures: %d (%d bytes), chapters: %d, padding: %d, unprocessed: %d, truncated: %d\n",
		s.Frames, s.EmbeddedFrames, s.Images, s.ImageBytes, s.Chapters, s.PaddingBytes, s.UnprocessedBytes, s.TruncatedBytes)
	fmt.Fprintf(w, "issues: %d error(s), %d warning(s), %d info\n", s.Errors, s.Warnings, s.Infos)
}

// summary renders the decoded content of a frame on one line.
func summary(c id3dissect.Content) string {
	switch v := c.(type) {
	case id3dissect.Text:
		return v.String()
	case id3dissect.URL:
		return v.URL
	case id3dissect.UserText:
		return fmt.Sprintf("%s = %s", v.Description, strings.Join(v.Values, " / "))
	case id3dissect.UserURL:
		return fmt.Sprintf("%s = %s", v.Description, v.URL)
	case id3dissect.Comment:
		return fmt.Sprintf("[%s] %s: %s", v.Language, v.Description, v.Text)
	case id3dissect.AttachedPicture:
		return v.String()
	case id3dissect.UniqueFileID:
		return fmt.Sprintf("%s: %x", v.Owner, v.Identifier)
	case id3dissect.Chapter:
		return fmt.Sprintf("%s %s-%s", v.ElementID,
			id3dissect.FormatTimestamp(v.StartMS), id3dissect.FormatTimestamp(v.EndMS))
	case id3dissect.TableOfContents:
		return fmt.Sprintf("%s top-level=%t ordered=%t children=%s",
			v.ElementID, v.TopLevel, v.Ordered, strings.Join(v.ChildIDs, ","))
	case id3dissect.Unknown:
		return v.String()
	default:
		return ""
	}
}
