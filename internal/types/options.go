package types

import "github.com/rs/zerolog"

// Options carries per-pass settings from the public API to a dissector.
type Options struct {
	Policy Policy
	Logger zerolog.Logger

	// Path is only used in error messages and reports.
	Path string
}

// DefaultOptions returns the default policy with a disabled logger.
func DefaultOptions() Options {
	return Options{
		Policy: DefaultPolicy(),
		Logger: zerolog.Nop(),
	}
}
