package id3dissect

import (
	"github.com/simonhull/id3dissect/internal/types"
)

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exporting from internal/types to maintain public API.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedFormatError = types.UnsupportedFormatError

// TagTooLargeError is an alias to types.TagTooLargeError.
// Re-exporting from internal/types to maintain public API.
type TagTooLargeError = types.TagTooLargeError

// StrictError is an alias to types.StrictError.
// Re-exporting from internal/types to maintain public API.
type StrictError = types.StrictError

var (
	// ErrStrict is wrapped by the error WithStrict returns.
	ErrStrict = types.ErrStrict

	// ErrInvalidPolicy is wrapped by every policy validation error.
	ErrInvalidPolicy = types.ErrInvalidPolicy
)

// IsRejection reports whether err means the tag was rejected before frame
// scanning: a malformed header or a tag above the size cap. The Dissection
// returned alongside such an error is non-nil and carries the fatal issue.
func IsRejection(err error) bool {
	return types.IsRejection(err)
}

// Issue is an alias to types.Issue.
type Issue = types.Issue

// Severity is an alias to types.Severity.
type Severity = types.Severity

// Re-export all severity constants
const (
	SeverityInfo    = types.SeverityInfo
	SeverityWarning = types.SeverityWarning
	SeverityError   = types.SeverityError
)

// Code is an alias to types.Code.
type Code = types.Code

// Re-export all issue codes
const (
	CodeMalformedHeader        = types.CodeMalformedHeader
	CodeSynchsafeViolation     = types.CodeSynchsafeViolation
	CodeSizeExceeded           = types.CodeSizeExceeded
	CodeTruncated              = types.CodeTruncated
	CodeUnknownFrameID         = types.CodeUnknownFrameID
	CodeInvalidTextEncoding    = types.CodeInvalidTextEncoding
	CodeRecursionDepthExceeded = types.CodeRecursionDepthExceeded
	CodeTagSize                = types.CodeTagSize
	CodeInvalidFrameID         = types.CodeInvalidFrameID
	CodeEmptyFrame             = types.CodeEmptyFrame
	CodeMalformedFrame         = types.CodeMalformedFrame
	CodeUnsupportedFrameFlags  = types.CodeUnsupportedFrameFlags
	CodeInvalidExtendedHeader  = types.CodeInvalidExtendedHeader
	CodeMissingFooter          = types.CodeMissingFooter
	CodeMIMEMismatch           = types.CodeMIMEMismatch
)
