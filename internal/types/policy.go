package types

import (
	"errors"
	"fmt"
)

// Default size tiers. Megabytes are decimal (1 MB = 1,000,000 bytes).
const (
	DefaultLargeTagBytes     = 10_000_000
	DefaultVeryLargeTagBytes = 50_000_000
	DefaultMaxTagBytes       = 100_000_000
	DefaultMaxDepth          = 4
)

// ErrInvalidPolicy is wrapped by every Policy validation error.
var ErrInvalidPolicy = errors.New("invalid policy")

// Policy holds the tunable limits applied during a dissection.
type Policy struct {
	// LargeTagBytes and VeryLargeTagBytes are warning tiers; a tag whose
	// declared size is strictly above them gets a TagSize warning.
	LargeTagBytes     uint32 `toml:"large_tag_bytes" json:"large_tag_bytes"`
	VeryLargeTagBytes uint32 `toml:"very_large_tag_bytes" json:"very_large_tag_bytes"`

	// MaxTagBytes is the hard cap. Larger tags are rejected unscanned.
	MaxTagBytes uint32 `toml:"max_tag_bytes" json:"max_tag_bytes"`

	// MaxDepth bounds CHAP/CTOC nesting. Top-level frames are depth 0.
	MaxDepth int `toml:"max_depth" json:"max_depth"`

	// DecodeImages enables MIME sniffing and dimension decoding for APIC.
	DecodeImages bool `toml:"decode_images" json:"decode_images"`
}

// DefaultPolicy returns the standard limits: 10/50/100 MB and depth 4.
func DefaultPolicy() Policy {
	return Policy{
		LargeTagBytes:     DefaultLargeTagBytes,
		VeryLargeTagBytes: DefaultVeryLargeTagBytes,
		MaxTagBytes:       DefaultMaxTagBytes,
		MaxDepth:          DefaultMaxDepth,
		DecodeImages:      true,
	}
}

// Validate checks that the tiers are ordered and the depth is usable.
func (p Policy) Validate() error {
	if p.LargeTagBytes > p.VeryLargeTagBytes || p.VeryLargeTagBytes > p.MaxTagBytes {
		return fmt.Errorf("%w: size tiers must satisfy large (%d) <= very large (%d) <= max (%d)",
			ErrInvalidPolicy, p.LargeTagBytes, p.VeryLargeTagBytes, p.MaxTagBytes)
	}
	if p.MaxDepth < 1 {
		return fmt.Errorf("%w: max depth must be at least 1, got %d", ErrInvalidPolicy, p.MaxDepth)
	}
	return nil
}

// Classify returns the size tier for a declared tag size.
func (p Policy) Classify(size uint32) SizeClass {
	switch {
	case size > p.MaxTagBytes:
		return SizeExceeded
	case size > p.VeryLargeTagBytes:
		return SizeVeryLarge
	case size > p.LargeTagBytes:
		return SizeLarge
	default:
		return SizeNormal
	}
}
