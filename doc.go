// Package id3dissect analyzes ID3v2.3 and ID3v2.4 tags structurally.
//
// Where a tag reader maps frames to a handful of metadata fields,
// id3dissect reports what is actually in the tag: the decoded header, every
// frame with its offset, flags and typed content, the sub-frames nested in
// chapter (CHAP) and table of contents (CTOC) frames, and every structural
// anomaly found along the way.
//
// # Quick Start
//
//	d, err := id3dissect.DissectFile("episode.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("ID3v%s, %d bytes, %d frames\n",
//	    d.Header.Version(), d.Header.Size, d.Stats.Frames)
//	fmt.Println("Title:", d.Text("TIT2"))
//
// # Frames
//
// Each Frame carries a Content value whose concrete type depends on the
// frame ID: Text for T*** frames, URL for W*** frames, UserText (TXXX),
// UserURL (WXXX), Comment (COMM, USLT), AttachedPicture (APIC),
// UniqueFileID (UFID), Chapter (CHAP), TableOfContents (CTOC), and Unknown
// for everything else:
//
//	for depth, f := range d.AllFrames() {
//		fmt.Printf("%*s%s %s\n", depth*2, "", f.ID, id3dissect.FrameDescription(f.ID))
//		if pic, ok := f.Content.(id3dissect.AttachedPicture); ok {
//			fmt.Println(pic)
//		}
//	}
//
// # Issues
//
// Anomalies are reported as Issues with a Severity and a stable Code, on
// the tag or on the frame they concern. Only two are fatal: a malformed
// header (UnsupportedFormatError) and a declared size above the hard cap
// (TagTooLargeError). Both are returned as errors together with a non-nil
// Dissection; use IsRejection to tell them apart from I/O failures.
// Everything else leaves the error nil and scanning continues with the
// next frame:
//
//	for issue := range d.AllIssues() {
//		if issue.Severity >= id3dissect.SeverityWarning {
//			log.Println(issue)
//		}
//	}
//
// WithStrict turns any warning or error issue into a returned error.
//
// # Limits
//
// A Policy sets the size tiers (10, 50 and 100 MB by default, decimal), the
// CHAP/CTOC nesting limit (4) and whether attached pictures are sniffed and
// measured. Policies can be passed with WithPolicy or loaded from a TOML
// file with LoadConfig.
//
// # Concurrency
//
// A dissection is a single synchronous pass with no shared mutable state.
// DissectAll and DissectMany dissect many files in parallel.
package id3dissect
