// Package config loads dissection policies from TOML files.
//
// A policy file only needs the keys it changes; every other limit keeps its
// default:
//
//	max_tag_bytes = 20_000_000
//	max_depth = 2
//	decode_images = false
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/simonhull/id3dissect/internal/types"
)

type fileConfig struct {
	LargeTagBytes     uint32 `toml:"large_tag_bytes"`
	VeryLargeTagBytes uint32 `toml:"very_large_tag_bytes"`
	MaxTagBytes       uint32 `toml:"max_tag_bytes"`
	MaxDepth          int    `toml:"max_depth"`
	DecodeImages      bool   `toml:"decode_images"`
}

// Load reads the policy file at path and overlays it on DefaultPolicy.
func Load(path string) (types.Policy, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return types.Policy{}, fmt.Errorf("load policy: %w", err)
	}
	return apply(meta, raw)
}

// Parse is Load for an in-memory document.
func Parse(data string) (types.Policy, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return types.Policy{}, fmt.Errorf("parse policy: %w", err)
	}
	return apply(meta, raw)
}

func apply(meta toml.MetaData, raw fileConfig) (types.Policy, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return types.Policy{}, fmt.Errorf("%w: unknown key %q", types.ErrInvalidPolicy, undecoded[0].String())
	}

	p := types.DefaultPolicy()
	if meta.IsDefined("large_tag_bytes") {
		p.LargeTagBytes = raw.LargeTagBytes
	}
	if meta.IsDefined("very_large_tag_bytes") {
		p.VeryLargeTagBytes = raw.VeryLargeTagBytes
	}
	if meta.IsDefined("max_tag_bytes") {
		p.MaxTagBytes = raw.MaxTagBytes
	}
	if meta.IsDefined("max_depth") {
		p.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("decode_images") {
		p.DecodeImages = raw.DecodeImages
	}

	if err := p.Validate(); err != nil {
		return types.Policy{}, err
	}
	return p, nil
}
