package id3dissect

import (
	"github.com/rs/zerolog"
)

// Option configures a dissection.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	d, err := id3dissect.DissectFile("episode.mp3",
//	    id3dissect.WithMaxDepth(2),
//	    id3dissect.WithStrict(),
//	)
type Option func(*dissectOptions)

// dissectOptions holds configuration for one dissection.
type dissectOptions struct {
	policy  Policy
	logger  zerolog.Logger
	metrics *Metrics
	strict  bool
}

// defaultOptions returns the default configuration.
func defaultOptions() *dissectOptions {
	return &dissectOptions{
		policy: DefaultPolicy(),
		logger: zerolog.Nop(),
	}
}

func newOptions(opts []Option) *dissectOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPolicy replaces the size tiers, depth limit and image analysis
// setting. The policy is validated when the dissection starts.
//
// Example:
//
//	policy, err := id3dissect.LoadConfig("policy.toml")
//	if err != nil {
//		return err
//	}
//	d, err := id3dissect.DissectFile("song.mp3", id3dissect.WithPolicy(policy))
func WithPolicy(p Policy) Option {
	return func(o *dissectOptions) {
		o.policy = p
	}
}

// WithMaxDepth sets how deeply CHAP and CTOC frames may nest. Top-level
// frames are depth 0; the default is 4.
func WithMaxDepth(depth int) Option {
	return func(o *dissectOptions) {
		o.policy.MaxDepth = depth
	}
}

// WithLogger sets the logger used for rejections (warn) and per-frame
// detail (debug). By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *dissectOptions) {
		o.logger = logger
	}
}

// WithMetrics records every dissection on m.
func WithMetrics(m *Metrics) Option {
	return func(o *dissectOptions) {
		o.metrics = m
	}
}

// WithoutImageAnalysis skips MIME sniffing and dimension decoding for
// attached pictures. Picture bytes are still extracted.
func WithoutImageAnalysis() Option {
	return func(o *dissectOptions) {
		o.policy.DecodeImages = false
	}
}

// WithStrict turns any warning or error issue into a returned *StrictError.
//
// By default, anomalies are reported as issues on the Dissection and the
// error is nil. The Dissection is still returned in strict mode.
//
// Example:
//
//	d, err := id3dissect.DissectFile("song.mp3", id3dissect.WithStrict())
//	if errors.Is(err, id3dissect.ErrStrict) {
//		for issue := range d.AllIssues() {
//			fmt.Println(issue)
//		}
//	}
func WithStrict() Option {
	return func(o *dissectOptions) {
		o.strict = true
	}
}
