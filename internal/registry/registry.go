// Package registry manages the tag dissectors known to the root package.
package registry

import (
	"github.com/simonhull/id3dissect/internal/types"
)

// Dissector is the interface all tag dissectors implement.
type Dissector interface {
	// CanHandle is a cheap applicability check on the first bytes of a file.
	CanHandle(header []byte) bool

	// Dissect analyzes the tag at the start of buf. The returned
	// Dissection is never nil.
	Dissect(buf []byte, opts types.Options) (*types.Dissection, error)
}

// dissectors maps formats to their dissectors.
var dissectors = make(map[types.Format]Dissector)

// Register registers a dissector for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, d Dissector) {
	dissectors[format] = d
}

// Get returns the dissector for a given format.
// Returns nil if no dissector is registered for the format.
func Get(format types.Format) Dissector {
	return dissectors[format]
}

// Lookup returns the first registered dissector that can handle header,
// together with its format.
func Lookup(header []byte) (types.Format, Dissector) {
	for format, d := range dissectors {
		if d.CanHandle(header) {
			return format, d
		}
	}
	return types.FormatUnknown, nil
}
