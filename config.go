package id3dissect

import (
	"github.com/simonhull/id3dissect/internal/config"
)

// LoadConfig reads a TOML policy file. Keys that are absent keep their
// DefaultPolicy values; unknown keys and inconsistent tiers are rejected
// with an error wrapping ErrInvalidPolicy.
//
//	large_tag_bytes = 5_000_000
//	max_depth = 2
//	decode_images = false
func LoadConfig(path string) (Policy, error) {
	return config.Load(path)
}
