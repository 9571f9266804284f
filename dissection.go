package id3dissect

import (
	"github.com/simonhull/id3dissect/internal/types"
)

// Dissection is an alias to types.Dissection.
// Re-exporting from internal/types to maintain public API.
type Dissection = types.Dissection

// TagHeader is an alias to types.TagHeader.
type TagHeader = types.TagHeader

// HeaderFlags is an alias to types.HeaderFlags.
type HeaderFlags = types.HeaderFlags

// Stats is an alias to types.Stats.
type Stats = types.Stats

// SizeClass is an alias to types.SizeClass.
type SizeClass = types.SizeClass

// Re-export all size class constants
const (
	SizeNormal    = types.SizeNormal
	SizeLarge     = types.SizeLarge
	SizeVeryLarge = types.SizeVeryLarge
	SizeExceeded  = types.SizeExceeded
)

// Policy is an alias to types.Policy.
type Policy = types.Policy

// DefaultPolicy returns the standard limits: 10/50/100 MB tiers and a
// nesting depth of 4.
func DefaultPolicy() Policy {
	return types.DefaultPolicy()
}
