package types

import "iter"

// SizeClass is the tier a tag's declared size falls into.
type SizeClass int

const (
	SizeNormal SizeClass = iota
	SizeLarge
	SizeVeryLarge
	SizeExceeded
)

func (c SizeClass) String() string {
	switch c {
	case SizeNormal:
		return "normal"
	case SizeLarge:
		return "large"
	case SizeVeryLarge:
		return "very large"
	case SizeExceeded:
		return "exceeded"
	default:
		return "unknown"
	}
}

// MarshalText renders the class by name in reports.
func (c SizeClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Stats summarizes a dissection. Frames counts top-level frames only;
// EmbeddedFrames counts CHAP and CTOC sub-frames at any depth. The other
// counts cover every depth.
type Stats struct {
	Frames           int   `json:"frames"`
	EmbeddedFrames   int   `json:"embedded_frames"`
	Errors           int   `json:"errors"`
	Warnings         int   `json:"warnings"`
	Infos            int   `json:"infos"`
	Images           int   `json:"images"`
	ImageBytes       int64 `json:"image_bytes"`
	Chapters         int   `json:"chapters"`
	TablesOfContents int   `json:"tables_of_contents"`
	PaddingBytes     int64 `json:"padding_bytes"`
	UnprocessedBytes int64 `json:"unprocessed_bytes"`
	TruncatedBytes   int64 `json:"truncated_bytes"`
}

// Issues returns the total number of issues of every severity.
func (s Stats) Issues() int {
	return s.Errors + s.Warnings + s.Infos
}

// Dissection is the structured result of analyzing one ID3v2 tag.
//
// Issues holds tag-level issues only; frame-level issues live on the
// frame they concern. Use AllIssues to visit both.
type Dissection struct {
	Path      string    `json:"path,omitempty"`
	Header    TagHeader `json:"header"`
	SizeClass SizeClass `json:"size_class"`
	Frames    []Frame   `json:"frames"`
	Issues    []Issue   `json:"issues,omitempty"`
	Stats     Stats     `json:"stats"`
}

// Rejected reports whether the tag was rejected before frame scanning.
func (d *Dissection) Rejected() bool {
	for _, is := range d.Issues {
		if is.Fatal() {
			return true
		}
	}
	return false
}

// Walk visits every frame depth-first, parents before their sub-frames.
// Top-level frames have depth 0. Returning false from fn stops the walk.
func (d *Dissection) Walk(fn func(depth int, f Frame) bool) {
	walkFrames(d.Frames, 0, fn)
}

func walkFrames(frames []Frame, depth int, fn func(int, Frame) bool) bool {
	for _, f := range frames {
		if !fn(depth, f) {
			return false
		}
		if !walkFrames(f.SubFrames(), depth+1, fn) {
			return false
		}
	}
	return true
}

// AllFrames returns an iterator over every frame and its depth.
//
//	for depth, f := range d.AllFrames() {
//	    fmt.Printf("%*s%s\n", depth*2, "", f.ID)
//	}
func (d *Dissection) AllFrames() iter.Seq2[int, Frame] {
	return func(yield func(int, Frame) bool) {
		d.Walk(yield)
	}
}

// AllIssues returns an iterator over tag-level issues followed by every
// frame's issues in walk order.
func (d *Dissection) AllIssues() iter.Seq[Issue] {
	return func(yield func(Issue) bool) {
		for _, is := range d.Issues {
			if !yield(is) {
				return
			}
		}
		d.Walk(func(_ int, f Frame) bool {
			for _, is := range f.Issues {
				if !yield(is) {
					return false
				}
			}
			return true
		})
	}
}

// Find returns every frame with the given ID at any depth.
func (d *Dissection) Find(id string) []Frame {
	var out []Frame
	for _, f := range d.AllFrames() {
		if f.ID == id {
			out = append(out, f)
		}
	}
	return out
}

// Text returns the first value of the first top-level text frame with the
// given ID.
func (d *Dissection) Text(id string) string {
	return subFrameText(d.Frames, id)
}

// Chapters returns every CHAP frame at any depth, in walk order.
func (d *Dissection) Chapters() []Chapter {
	var out []Chapter
	for _, f := range d.AllFrames() {
		if c, ok := f.Content.(Chapter); ok {
			out = append(out, c)
		}
	}
	return out
}

// Pictures returns every APIC frame at any depth, in walk order.
func (d *Dissection) Pictures() []AttachedPicture {
	var out []AttachedPicture
	for _, f := range d.AllFrames() {
		if p, ok := f.Content.(AttachedPicture); ok {
			out = append(out, p)
		}
	}
	return out
}
